// internal/runtimes/resolver.go
package runtimes

import (
	"encoding/json"
	"errors"
)

// Config carries the image override rules applied during resolution.
type Config struct {
	// DefaultImagePrefix is adopted by every image that declares no prefix.
	DefaultImagePrefix string
	// DefaultImageTag is adopted by every image that declares no tag.
	DefaultImageTag string
	// BypassPullForLocalImages enables the local-prefix pull bypass.
	BypassPullForLocalImages bool
	// LocalImagePrefix marks an image as already present locally.
	LocalImagePrefix string
}

// manifestDocument is the raw JSON shape. Both top-level collections are
// optional; absence means empty.
type manifestDocument struct {
	Runtimes    map[string][]RuntimeManifest `json:"runtimes"`
	Blackboxes  []ImageName                  `json:"blackboxes"`
	DefaultKind string                       `json:"defaultKind"`
}

// Resolve parses the raw manifest document, applies the configured overrides
// to every image, enforces the family invariants, and returns the immutable
// Runtimes aggregate. Resolution is all-or-nothing: the first format or
// validation error aborts with no partial result.
func Resolve(raw []byte, cfg Config) (*Runtimes, error) {
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var doc manifestDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		var fe *FormatError
		var ve *ValidationError
		if errors.As(err, &fe) || errors.As(err, &ve) {
			return nil, err
		}
		return nil, formatErrorf("runtimes: malformed manifest document: %v", err)
	}

	families := make(map[string]RuntimeFamily, len(doc.Runtimes))
	for alias, manifests := range doc.Runtimes {
		for i, m := range manifests {
			m.Image = m.Image.withDefaults(cfg.DefaultImagePrefix, cfg.DefaultImageTag)
			manifests[i] = m
		}
		fam := newRuntimeFamily(alias, manifests)
		if err := fam.validateDefaults(); err != nil {
			return nil, err
		}
		families[alias] = fam
	}

	blackboxes := make(map[ImageName]struct{}, len(doc.Blackboxes))
	for _, img := range doc.Blackboxes {
		blackboxes[img.withDefaults(cfg.DefaultImagePrefix, cfg.DefaultImageTag)] = struct{}{}
	}

	resolved := &Runtimes{
		families:                 families,
		blackboxes:               blackboxes,
		defaultKind:              doc.DefaultKind,
		bypassPullForLocalImages: cfg.BypassPullForLocalImages,
		localImagePrefix:         cfg.LocalImagePrefix,
	}

	if doc.DefaultKind != "" {
		if _, ok := resolved.ResolveDefaultRuntime(doc.DefaultKind); !ok {
			return nil, validationErrorf("runtimes: default kind %q is not a known runtime", doc.DefaultKind)
		}
	}

	return resolved, nil
}

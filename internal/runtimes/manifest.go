// internal/runtimes/manifest.go
package runtimes

import (
	"sort"
)

// RuntimeManifest describes one concrete runtime kind within a family: its
// identifying kind string, the container image that backs it, whether it is
// the family default, and any pre-warm pools to keep for it.
type RuntimeManifest struct {
	Kind      string         `json:"kind"`
	Default   bool           `json:"default,omitempty"`
	Image     ImageName      `json:"image"`
	StemCells []StemCellSpec `json:"stemCells,omitempty"`
}

// RuntimeFamily is a named set of manifests considered versions of the same
// language runtime, e.g. alias "nodef" holding nodejs:6 and nodejs:8.
// Manifests are keyed by kind; duplicate kinds collapse and order is
// irrelevant.
type RuntimeFamily struct {
	Alias     string
	Manifests map[string]RuntimeManifest
}

func newRuntimeFamily(alias string, manifests []RuntimeManifest) RuntimeFamily {
	set := make(map[string]RuntimeManifest, len(manifests))
	for _, m := range manifests {
		set[m.Kind] = m
	}
	return RuntimeFamily{Alias: alias, Manifests: set}
}

// validateDefaults enforces the family invariant: at most one manifest may
// carry the default flag.
func (f RuntimeFamily) validateDefaults() error {
	count := 0
	for _, m := range f.Manifests {
		if m.Default {
			count++
		}
	}
	if count > 1 {
		return validationErrorf("runtimes: family %q declares %d default kinds, at most one allowed", f.Alias, count)
	}
	return nil
}

// defaultManifest resolves the family default: the uniquely flagged manifest,
// or the sole member of a single-manifest family. A multi-manifest family
// with no flag has no default.
func (f RuntimeFamily) defaultManifest() (RuntimeManifest, bool) {
	if len(f.Manifests) == 1 {
		for _, m := range f.Manifests {
			return m, true
		}
	}
	var found RuntimeManifest
	var ok bool
	for _, m := range f.Manifests {
		if m.Default {
			if ok {
				return RuntimeManifest{}, false
			}
			found, ok = m, true
		}
	}
	return found, ok
}

// kinds returns the family's kind strings in sorted order.
func (f RuntimeFamily) kinds() []string {
	out := make([]string, 0, len(f.Manifests))
	for kind := range f.Manifests {
		out = append(out, kind)
	}
	sort.Strings(out)
	return out
}

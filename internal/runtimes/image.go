// internal/runtimes/image.go
package runtimes

import (
	"encoding/json"
	"regexp"
	"strings"
)

// DefaultImageTag is used for local references when neither the image nor
// the caller specifies a tag.
const DefaultImageTag = "latest"

// ImageName identifies a container image as [prefix/]name[:tag]. An empty
// prefix or tag means the segment is absent. Values are immutable once built
// and compare by structural equality.
type ImageName struct {
	Name   string `json:"name"`
	Prefix string `json:"prefix,omitempty"`
	Tag    string `json:"tag,omitempty"`
}

var (
	// Name and prefix segments follow registry repository naming.
	segmentPattern = regexp.MustCompile(`^[a-z0-9._-]+$`)
	tagPattern     = regexp.MustCompile(`^[\w.-]+$`)
)

// ParseImageName parses a [prefix/]name[:tag] string. The prefix is
// everything before the last '/' and may span multiple segments; the tag is
// everything after the last ':' of the final segment. A final segment with
// more than one ':' is ambiguous and rejected.
func ParseImageName(s string) (ImageName, error) {
	img := ImageName{Name: s}
	if idx := strings.LastIndex(s, "/"); idx != -1 {
		img.Prefix = s[:idx]
		img.Name = s[idx+1:]
	}
	if idx := strings.LastIndex(img.Name, ":"); idx != -1 {
		img.Tag = img.Name[idx+1:]
		img.Name = img.Name[:idx]
		if img.Tag == "" {
			return ImageName{}, formatErrorf("runtimes: image reference %q has an empty tag", s)
		}
	}
	if err := img.Validate(); err != nil {
		return ImageName{}, err
	}
	return img, nil
}

// Validate checks the image fields against the naming rules.
func (i ImageName) Validate() error {
	if i.Name == "" {
		return formatErrorf("runtimes: image name must not be empty")
	}
	if strings.Contains(i.Name, ":") {
		return formatErrorf("runtimes: image name %q must not contain ':'", i.Name)
	}
	if !segmentPattern.MatchString(i.Name) {
		return formatErrorf("runtimes: invalid image name %q", i.Name)
	}
	if i.Prefix != "" {
		for _, seg := range strings.Split(i.Prefix, "/") {
			if !segmentPattern.MatchString(seg) {
				return formatErrorf("runtimes: invalid image prefix %q", i.Prefix)
			}
		}
	}
	if i.Tag != "" && !tagPattern.MatchString(i.Tag) {
		return formatErrorf("runtimes: invalid image tag %q", i.Tag)
	}
	return nil
}

// PublicImageName renders [prefix/]name[:tag], eliding empty segments.
func (i ImageName) PublicImageName() string {
	var b strings.Builder
	if i.Prefix != "" {
		b.WriteString(i.Prefix)
		b.WriteString("/")
	}
	b.WriteString(i.Name)
	if i.Tag != "" {
		b.WriteString(":")
		b.WriteString(i.Tag)
	}
	return b.String()
}

// LocalImageName renders the fully qualified reference used against a local
// registry: [registry/][localPrefix/]name:tag. The tag is tagOverride when
// non-empty, else the image's own tag, else "latest".
func (i ImageName) LocalImageName(registry, localPrefix, tagOverride string) string {
	tag := tagOverride
	if tag == "" {
		tag = i.Tag
	}
	if tag == "" {
		tag = DefaultImageTag
	}
	var b strings.Builder
	if registry != "" {
		b.WriteString(registry)
		b.WriteString("/")
	}
	if localPrefix != "" {
		b.WriteString(localPrefix)
		b.WriteString("/")
	}
	b.WriteString(i.Name)
	b.WriteString(":")
	b.WriteString(tag)
	return b.String()
}

// withDefaults fills in the configured prefix and tag where the image has
// none. Explicit values always win over defaults.
func (i ImageName) withDefaults(prefix, tag string) ImageName {
	if i.Prefix == "" {
		i.Prefix = prefix
	}
	if i.Tag == "" {
		i.Tag = tag
	}
	return i
}

// UnmarshalJSON decodes and validates the image fields.
func (i *ImageName) UnmarshalJSON(data []byte) error {
	type alias ImageName
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return formatErrorf("runtimes: malformed image: %v", err)
	}
	img := ImageName(a)
	if err := img.Validate(); err != nil {
		return err
	}
	*i = img
	return nil
}

// internal/runtimes/runtimes.go
package runtimes

import (
	"sort"
	"strings"
)

// defaultSuffix marks a family-level reference such as "nodef:default".
const defaultSuffix = ":default"

// Runtimes is the fully resolved, post-override runtime configuration:
// every family, the blackbox image set, and the optional platform default
// kind. It is immutable after Resolve and safe for concurrent readers; all
// query operations are pure lookups.
type Runtimes struct {
	families    map[string]RuntimeFamily
	blackboxes  map[ImageName]struct{}
	defaultKind string

	bypassPullForLocalImages bool
	localImagePrefix         string
}

// StemCellAssignment pairs a manifest with one of its pre-warm pool specs.
type StemCellAssignment struct {
	Manifest RuntimeManifest
	Cell     StemCellSpec
}

// KnownContainerRuntimes returns the union of all kinds across all families,
// sorted.
func (r *Runtimes) KnownContainerRuntimes() []string {
	set := make(map[string]struct{})
	for _, fam := range r.families {
		for kind := range fam.Manifests {
			set[kind] = struct{}{}
		}
	}
	kinds := make([]string, 0, len(set))
	for kind := range set {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Families returns the resolved families sorted by alias.
func (r *Runtimes) Families() []RuntimeFamily {
	out := make([]RuntimeFamily, 0, len(r.families))
	for _, fam := range r.families {
		out = append(out, fam)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Alias < out[j].Alias })
	return out
}

// DefaultKind returns the platform default kind, when the manifest document
// declared one.
func (r *Runtimes) DefaultKind() (string, bool) {
	return r.defaultKind, r.defaultKind != ""
}

// ResolveDefaultRuntime resolves a runtime reference. The reference is either
// a bare kind ("nodejs:8"), matched exactly against every family, or
// "alias:default", resolved to the family's default manifest. An absent or
// ambiguous reference returns false; it is a normal outcome, not an error.
func (r *Runtimes) ResolveDefaultRuntime(ref string) (RuntimeManifest, bool) {
	if alias, ok := strings.CutSuffix(ref, defaultSuffix); ok {
		fam, ok := r.families[alias]
		if !ok {
			return RuntimeManifest{}, false
		}
		return fam.defaultManifest()
	}
	for _, fam := range r.families {
		if m, ok := fam.Manifests[ref]; ok {
			return m, true
		}
	}
	return RuntimeManifest{}, false
}

// BlackboxImages returns the post-override blackbox set, sorted by public
// image name.
func (r *Runtimes) BlackboxImages() []ImageName {
	out := make([]ImageName, 0, len(r.blackboxes))
	for img := range r.blackboxes {
		out = append(out, img)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PublicImageName() < out[j].PublicImageName()
	})
	return out
}

// SkipDockerPull reports whether the image may bypass the registry pull:
// either it is a blackbox image, or local-image bypass is enabled and the
// image carries the configured local prefix.
func (r *Runtimes) SkipDockerPull(img ImageName) bool {
	if _, ok := r.blackboxes[img]; ok {
		return true
	}
	return r.bypassPullForLocalImages &&
		r.localImagePrefix != "" &&
		img.Prefix == r.localImagePrefix
}

// StemCells flattens every (manifest, pool spec) pair across all families,
// ordered by alias then kind, for the pool warmer.
func (r *Runtimes) StemCells() []StemCellAssignment {
	var out []StemCellAssignment
	for _, fam := range r.Families() {
		for _, kind := range fam.kinds() {
			m := fam.Manifests[kind]
			for _, cell := range m.StemCells {
				out = append(out, StemCellAssignment{Manifest: m, Cell: cell})
			}
		}
	}
	return out
}

// internal/runtimes/manifest_test.go
package runtimes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuntimeFamily_SetSemantics(t *testing.T) {
	t.Run("duplicate kinds collapse", func(t *testing.T) {
		fam := newRuntimeFamily("ks", []RuntimeManifest{
			{Kind: "k1", Image: ImageName{Name: "a"}},
			{Kind: "k1", Image: ImageName{Name: "b"}},
			{Kind: "k2", Image: ImageName{Name: "c"}},
		})
		assert.Len(t, fam.Manifests, 2)
		assert.Equal(t, []string{"k1", "k2"}, fam.kinds())
	})
}

func TestRuntimeFamily_ValidateDefaults(t *testing.T) {
	t.Run("no defaults is valid", func(t *testing.T) {
		fam := newRuntimeFamily("ks", []RuntimeManifest{
			{Kind: "k1", Image: ImageName{Name: "a"}},
			{Kind: "k2", Image: ImageName{Name: "b"}},
		})
		assert.NoError(t, fam.validateDefaults())
	})

	t.Run("one default is valid", func(t *testing.T) {
		fam := newRuntimeFamily("ks", []RuntimeManifest{
			{Kind: "k1", Default: true, Image: ImageName{Name: "a"}},
			{Kind: "k2", Image: ImageName{Name: "b"}},
		})
		assert.NoError(t, fam.validateDefaults())
	})

	t.Run("two defaults violate the invariant", func(t *testing.T) {
		fam := newRuntimeFamily("ks", []RuntimeManifest{
			{Kind: "k1", Default: true, Image: ImageName{Name: "a"}},
			{Kind: "k2", Default: true, Image: ImageName{Name: "b"}},
		})
		err := fam.validateDefaults()
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}

func TestRuntimeFamily_DefaultManifest(t *testing.T) {
	t.Run("returns the flagged default", func(t *testing.T) {
		fam := newRuntimeFamily("ks", []RuntimeManifest{
			{Kind: "k1", Image: ImageName{Name: "a"}},
			{Kind: "k2", Default: true, Image: ImageName{Name: "b"}},
		})
		m, ok := fam.defaultManifest()
		require.True(t, ok)
		assert.Equal(t, "k2", m.Kind)
	})

	t.Run("singleton family is its own default", func(t *testing.T) {
		fam := newRuntimeFamily("ks", []RuntimeManifest{
			{Kind: "k1", Image: ImageName{Name: "a"}},
		})
		m, ok := fam.defaultManifest()
		require.True(t, ok)
		assert.Equal(t, "k1", m.Kind)
	})

	t.Run("multiple kinds with no flag have no default", func(t *testing.T) {
		fam := newRuntimeFamily("ks", []RuntimeManifest{
			{Kind: "k1", Image: ImageName{Name: "a"}},
			{Kind: "k2", Image: ImageName{Name: "b"}},
		})
		_, ok := fam.defaultManifest()
		assert.False(t, ok)
	})
}

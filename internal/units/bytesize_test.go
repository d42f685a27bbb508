// internal/units/bytesize_test.go
package units

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseByteSize(t *testing.T) {
	t.Run("parses size with space", func(t *testing.T) {
		size, err := ParseByteSize("128 MB")
		require.NoError(t, err)
		assert.Equal(t, 128*MB, size)
	})

	t.Run("parses size without space", func(t *testing.T) {
		size, err := ParseByteSize("512KB")
		require.NoError(t, err)
		assert.Equal(t, 512*KB, size)
	})

	t.Run("parses lowercase unit", func(t *testing.T) {
		size, err := ParseByteSize("2 gb")
		require.NoError(t, err)
		assert.Equal(t, 2*GB, size)
	})

	t.Run("parses plain bytes", func(t *testing.T) {
		size, err := ParseByteSize("1024 B")
		require.NoError(t, err)
		assert.Equal(t, 1*KB, size)
	})

	t.Run("rejects number without unit", func(t *testing.T) {
		_, err := ParseByteSize("128")
		assert.ErrorIs(t, err, ErrSizeFormat)
	})

	t.Run("rejects negative size", func(t *testing.T) {
		_, err := ParseByteSize("-1 MB")
		assert.ErrorIs(t, err, ErrSizeFormat)
	})

	t.Run("rejects unknown unit", func(t *testing.T) {
		_, err := ParseByteSize("128 XB")
		assert.ErrorIs(t, err, ErrSizeFormat)
	})

	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseByteSize("")
		assert.ErrorIs(t, err, ErrSizeFormat)
	})
}

func TestByteSize_String(t *testing.T) {
	t.Run("renders in largest even unit", func(t *testing.T) {
		assert.Equal(t, "128 MB", (128 * MB).String())
		assert.Equal(t, "2 GB", (2 * GB).String())
		assert.Equal(t, "512 KB", (512 * KB).String())
	})

	t.Run("falls back to bytes", func(t *testing.T) {
		assert.Equal(t, "100 B", (100 * Byte).String())
		assert.Equal(t, "1025 B", (1*KB + 1).String())
	})
}

func TestByteSize_JSON(t *testing.T) {
	t.Run("round trips through JSON", func(t *testing.T) {
		data, err := json.Marshal(256 * MB)
		require.NoError(t, err)
		assert.Equal(t, `"256 MB"`, string(data))

		var size ByteSize
		require.NoError(t, json.Unmarshal(data, &size))
		assert.Equal(t, 256*MB, size)
	})

	t.Run("rejects malformed string", func(t *testing.T) {
		var size ByteSize
		err := json.Unmarshal([]byte(`"128"`), &size)
		assert.ErrorIs(t, err, ErrSizeFormat)
	})

	t.Run("rejects non-string value", func(t *testing.T) {
		var size ByteSize
		err := json.Unmarshal([]byte(`128`), &size)
		assert.ErrorIs(t, err, ErrSizeFormat)
	})
}

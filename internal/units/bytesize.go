// internal/units/bytesize.go
package units

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	gounits "github.com/docker/go-units"
)

// ByteSize is a memory size in bytes, using binary multiples (1 KB = 1024 B).
type ByteSize int64

// Size constants
const (
	Byte ByteSize = 1
	KB            = 1024 * Byte
	MB            = 1024 * KB
	GB            = 1024 * MB
	TB            = 1024 * GB
)

// ErrSizeFormat is the fixed error returned for any malformed size string.
var ErrSizeFormat = errors.New("units: size must be a whole number followed by a unit (B, KB, MB, GB or TB)")

// A size string is a whole number followed by an explicit unit, e.g. "128 MB".
// A bare number ("128") is rejected rather than assumed to mean bytes.
var sizePattern = regexp.MustCompile(`^([0-9]+) ?([bB]|[kKmMgGtT][bB])$`)

// ParseByteSize parses a human size string such as "128 MB" into a ByteSize.
func ParseByteSize(s string) (ByteSize, error) {
	if !sizePattern.MatchString(s) {
		return 0, ErrSizeFormat
	}
	n, err := gounits.RAMInBytes(s)
	if err != nil {
		return 0, ErrSizeFormat
	}
	return ByteSize(n), nil
}

// String renders the size in the largest unit that divides it evenly.
func (b ByteSize) String() string {
	steps := []struct {
		unit ByteSize
		name string
	}{
		{TB, "TB"},
		{GB, "GB"},
		{MB, "MB"},
		{KB, "KB"},
	}
	for _, s := range steps {
		if b >= s.unit && b%s.unit == 0 {
			return fmt.Sprintf("%d %s", b/s.unit, s.name)
		}
	}
	return fmt.Sprintf("%d B", b)
}

// MarshalJSON encodes the size as its human string form.
func (b ByteSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON decodes a human size string.
func (b *ByteSize) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ErrSizeFormat
	}
	parsed, err := ParseByteSize(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

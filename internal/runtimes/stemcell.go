// internal/runtimes/stemcell.go
package runtimes

import (
	"encoding/json"
	"errors"

	"github.com/FairForge/stemcell/internal/units"
)

// StemCellSpec declares a pre-warmed container pool: how many idle containers
// to keep ready for a runtime kind, and at what memory size.
type StemCellSpec struct {
	Count  int            `json:"count"`
	Memory units.ByteSize `json:"memory"`
}

// NewStemCellSpec builds a validated pool spec.
func NewStemCellSpec(count int, memory units.ByteSize) (StemCellSpec, error) {
	s := StemCellSpec{Count: count, Memory: memory}
	if err := s.Validate(); err != nil {
		return StemCellSpec{}, err
	}
	return s, nil
}

// Validate rejects non-positive pool sizes.
func (s StemCellSpec) Validate() error {
	if s.Count <= 0 {
		return validationErrorf("runtimes: stem cell count must be positive, got %d", s.Count)
	}
	if s.Memory <= 0 {
		return validationErrorf("runtimes: stem cell memory must be positive")
	}
	return nil
}

// UnmarshalJSON decodes the spec and re-runs validation, so a count <= 0 in
// the document fails the same way direct construction does.
func (s *StemCellSpec) UnmarshalJSON(data []byte) error {
	type alias StemCellSpec
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		if errors.Is(err, units.ErrSizeFormat) {
			return &FormatError{msg: err.Error()}
		}
		return formatErrorf("runtimes: malformed stem cell spec: %v", err)
	}
	spec := StemCellSpec(a)
	if err := spec.Validate(); err != nil {
		return err
	}
	*s = spec
	return nil
}

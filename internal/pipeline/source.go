package pipeline

import "example.com/training/internal/domain"

// SliceSource serves packages from an in-memory batch.
type SliceSource struct {
	packages []Package
	index    int
}

// NewSliceSource wraps the given packages, preserving their order.
func NewSliceSource(packages []Package) *SliceSource {
	return &SliceSource{packages: packages}
}

// Next returns the following package, or false once the batch is exhausted.
func (s *SliceSource) Next() (Package, bool) {
	if s.index >= len(s.packages) {
		return Package{}, false
	}
	pkg := s.packages[s.index]
	s.index++
	return pkg, true
}

// DefaultPackages is the sample batch reported by the CLI.
func DefaultPackages() []Package {
	return []Package{
		{Code: domain.CodeSwimming, Data: []float64{720, 1, 80, 25, 40}},
		{Code: domain.CodeRunning, Data: []float64{15000, 1, 75}},
		{Code: domain.CodeWalking, Data: []float64{9000, 1, 75, 180}},
	}
}

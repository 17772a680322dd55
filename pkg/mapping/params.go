package mapping

import "fmt"

// Limits on the configurable LUT size. Truth-table computation narrows the
// upper bound to 6 so one 64-bit word holds the table.
const (
	MinLutSize      = 2
	MaxLutSize      = 16
	MaxTruthLutSize = 6
)

// Params holds the mapper configuration.
//
// CutsMax bounds the priority-cut storage per node; the best CutsMax cuts by
// cost survive each merge step. FlowIters is the number of area-flow
// refinement passes run after the initial delay pass. Epsilon is the numeric
// tolerance for required-time comparisons.
type Params struct {
	LutSize       int     `yaml:"lut_size" validate:"required,min=2,max=16"`
	CutsMax       int     `yaml:"cuts_max" validate:"required,min=1,max=32"`
	FlowIters     int     `yaml:"flow_iters" validate:"min=0"`
	ComputeTruth  bool    `yaml:"compute_truth"`
	Preprocess    bool    `yaml:"preprocess"`
	SkipCutFilter bool    `yaml:"skip_cut_filter"`
	Epsilon       float32 `yaml:"-"`
}

// DefaultParams returns the default mapper configuration.
func DefaultParams() Params {
	return Params{
		LutSize:   6,
		CutsMax:   8,
		FlowIters: 1,
		Epsilon:   1e-5,
	}
}

// Check validates the parameter combination.
func (p Params) Check() error {
	if p.LutSize < MinLutSize || p.LutSize > MaxLutSize {
		return fmt.Errorf("lut size %d: %w", p.LutSize, ErrBadLutSize)
	}
	if p.ComputeTruth && p.LutSize > MaxTruthLutSize {
		return fmt.Errorf("lut size %d: %w", p.LutSize, ErrTruthUnsupported)
	}
	if p.CutsMax < 1 {
		return fmt.Errorf("cuts max %d must be positive", p.CutsMax)
	}
	return nil
}

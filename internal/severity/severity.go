// Package severity classifies metric values into discrete alert tiers.
// A tier is a pure function of the value, two cutoffs, and a comparison
// direction; it is derived on every refresh and never persisted.
package severity

// Tier is the three-way severity classification of a readout.
type Tier int

const (
	Good Tier = iota
	Warning
	Danger
)

// String returns the lowercase tier name.
func (t Tier) String() string {
	switch t {
	case Good:
		return "good"
	case Warning:
		return "warning"
	case Danger:
		return "danger"
	default:
		return "unknown"
	}
}

// Direction selects which end of the scale is bad.
type Direction int

const (
	// HigherIsWorse is the standard direction: crossing a cutoff upward
	// escalates (CPU, memory, temperature).
	HigherIsWorse Direction = iota
	// LowerIsWorse inverts the comparison: dropping below a cutoff
	// escalates. Used only for the frame-rate readout.
	LowerIsWorse
)

// Per-metric cutoff pairs. For HigherIsWorse metrics the danger cutoff is
// above the warning cutoff; for the inverted frame-rate pair the danger
// cutoff is the lower bound.
const (
	CPUWarn  = 70.0
	CPUDang  = 85.0
	MemWarn  = 75.0
	MemDang  = 90.0
	TempWarn = 70.0
	TempDang = 80.0

	// Frame rate uses LowerIsWorse: below FPSDang is Danger, below
	// FPSWarn is Warning.
	FPSDang = 30.0
	FPSWarn = 55.0
)

// Classify maps a value onto a Tier given two cutoffs and a direction.
//
// HigherIsWorse: at or above dangerAt is Danger, at or above warnAt is
// Warning. LowerIsWorse: below dangerAt is Danger, below warnAt is Warning.
func Classify(value, warnAt, dangerAt float64, dir Direction) Tier {
	if dir == LowerIsWorse {
		switch {
		case value < dangerAt:
			return Danger
		case value < warnAt:
			return Warning
		default:
			return Good
		}
	}

	switch {
	case value >= dangerAt:
		return Danger
	case value >= warnAt:
		return Warning
	default:
		return Good
	}
}

// ClassifyCPU applies the CPU cutoffs.
func ClassifyCPU(v float64) Tier { return Classify(v, CPUWarn, CPUDang, HigherIsWorse) }

// ClassifyMemory applies the memory cutoffs.
func ClassifyMemory(v float64) Tier { return Classify(v, MemWarn, MemDang, HigherIsWorse) }

// ClassifyTemperature applies the temperature cutoffs.
func ClassifyTemperature(v float64) Tier { return Classify(v, TempWarn, TempDang, HigherIsWorse) }

// ClassifyFPS applies the inverted frame-rate cutoffs.
func ClassifyFPS(v float64) Tier { return Classify(v, FPSWarn, FPSDang, LowerIsWorse) }

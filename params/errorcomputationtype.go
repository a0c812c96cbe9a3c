package params

import "fmt"

// ErrorComputationType selects how the accumulator estimates the
// statistical error of its measurements.
type ErrorComputationType int

const (
	// ErrorNone skips error estimation.
	ErrorNone ErrorComputationType = iota

	// ErrorStandardDeviation estimates the error from the standard
	// deviation of the collected samples.
	ErrorStandardDeviation

	// ErrorJackKnife estimates the error with jack-knife resampling.
	ErrorJackKnife
)

// ParseErrorComputationType converts the input-file spelling of an
// error-computation type.
func ParseErrorComputationType(s string) (ErrorComputationType, error) {
	switch s {
	case "NONE":
		return ErrorNone, nil
	case "STANDARD_DEVIATION":
		return ErrorStandardDeviation, nil
	case "JACK_KNIFE":
		return ErrorJackKnife, nil
	}

	return ErrorNone, fmt.Errorf("params: unknown error-computation-type %q", s)
}

func (t ErrorComputationType) String() string {
	switch t {
	case ErrorNone:
		return "NONE"
	case ErrorStandardDeviation:
		return "STANDARD_DEVIATION"
	case ErrorJackKnife:
		return "JACK_KNIFE"
	}

	return fmt.Sprintf("ErrorComputationType(%d)", int(t))
}

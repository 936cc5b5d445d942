package econometrics

import (
	"fmt"

	"github.com/betoh/informalidad-fiscal/pkg/models"
)

// InsufficientDataError reports that two series overlap on too few points
// for the requested statistic to be meaningful.
type InsufficientDataError struct {
	VariableA  string
	VariableB  string
	SampleSize int
	Required   int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s vs %s: %d overlapping points, need at least %d",
		e.VariableA, e.VariableB, e.SampleSize, e.Required)
}

// NonPositiveValueError reports a level observation on which the log
// transform is undefined.
type NonPositiveValueError struct {
	Variable string
	Period   models.Quarter
	Value    float64
}

func (e *NonPositiveValueError) Error() string {
	return fmt.Sprintf("series %s: non-positive value %g at %s, log transform undefined",
		e.Variable, e.Value, e.Period)
}

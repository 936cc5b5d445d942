package series

import (
	"fmt"
	"strings"

	"github.com/betoh/informalidad-fiscal/pkg/models"
)

// MissingPeriodError reports an interior gap in a quarterly series.
// The loaders treat gaps as data corruption rather than trimming around them.
type MissingPeriodError struct {
	Variable string
	Period   models.Quarter
}

func (e *MissingPeriodError) Error() string {
	return fmt.Sprintf("series %s: missing quarter %s", e.Variable, e.Period)
}

// DuplicatePeriodError reports a quarter observed more than once.
type DuplicatePeriodError struct {
	Variable string
	Period   models.Quarter
}

func (e *DuplicatePeriodError) Error() string {
	return fmt.Sprintf("series %s: duplicate quarter %s", e.Variable, e.Period)
}

// MisalignedDomainError reports that a set of series has no usable common
// period domain after trimming to their overlap.
type MisalignedDomainError struct {
	Variables []string
	Start     models.Quarter
	End       models.Quarter
}

func (e *MisalignedDomainError) Error() string {
	return fmt.Sprintf("series %s: no common period domain (overlap %s..%s)",
		strings.Join(e.Variables, ", "), e.Start, e.End)
}

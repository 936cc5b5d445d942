package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Quarter identifies a single fiscal quarter, e.g. 2010Q1.
type Quarter struct {
	Year int
	Q    int // 1..4
}

// ParseQuarter parses "2010Q1" and the INEGI notation "2010T1".
func ParseQuarter(s string) (Quarter, error) {
	s = strings.TrimSpace(strings.ToUpper(s))

	var sep string
	switch {
	case strings.Contains(s, "Q"):
		sep = "Q"
	case strings.Contains(s, "T"):
		sep = "T"
	default:
		return Quarter{}, fmt.Errorf("invalid quarter %q: missing Q/T separator", s)
	}

	parts := strings.SplitN(s, sep, 2)
	year, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Quarter{}, fmt.Errorf("invalid quarter %q: bad year: %w", s, err)
	}
	q, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Quarter{}, fmt.Errorf("invalid quarter %q: bad quarter number: %w", s, err)
	}

	quarter := Quarter{Year: year, Q: q}
	if !quarter.Valid() {
		return Quarter{}, fmt.Errorf("invalid quarter %q: quarter number must be 1..4", s)
	}
	return quarter, nil
}

// QuarterOf returns the quarter containing the given date.
func QuarterOf(t time.Time) Quarter {
	return Quarter{Year: t.Year(), Q: (int(t.Month())-1)/3 + 1}
}

// Valid reports whether the quarter number is in range.
func (q Quarter) Valid() bool {
	return q.Q >= 1 && q.Q <= 4 && q.Year > 0
}

func (q Quarter) String() string {
	return fmt.Sprintf("%dQ%d", q.Year, q.Q)
}

// Index maps the quarter onto a contiguous integer line, one step per quarter.
func (q Quarter) Index() int {
	return q.Year*4 + q.Q - 1
}

// QuarterFromIndex is the inverse of Index.
func QuarterFromIndex(i int) Quarter {
	return Quarter{Year: i / 4, Q: i%4 + 1}
}

func (q Quarter) Before(other Quarter) bool {
	return q.Index() < other.Index()
}

func (q Quarter) After(other Quarter) bool {
	return q.Index() > other.Index()
}

// AddQuarters returns the quarter n steps away (n may be negative).
func (q Quarter) AddQuarters(n int) Quarter {
	return QuarterFromIndex(q.Index() + n)
}

func (q Quarter) Next() Quarter {
	return q.AddQuarters(1)
}

// EndDate returns the last day of the quarter, matching how the source
// datasets stamp quarterly observations.
func (q Quarter) EndDate() time.Time {
	firstOfNext := time.Date(q.Year, time.Month(q.Q*3)+1, 1, 0, 0, 0, 0, time.UTC)
	return firstOfNext.AddDate(0, 0, -1)
}

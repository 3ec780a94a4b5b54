package date

import (
	"errors"
	"fmt"
)

// ErrInvertedRange reports a partitioning request whose end date precedes its
// inception date. The loop below would silently produce nothing; callers must
// be told instead.
var ErrInvertedRange = errors.New("end date is before inception date")

// Sequence returns the ordered period-end dates covering [inception, end] at
// the given granularity. The first element is EndOf(inception, period)
// clamped to end, each following element is the end of the period starting
// the anchor after the previous one, and the last element is always exactly
// end. Sequence(d, d, p) is [d] for every period.
func Sequence(inception, end Date, period Period) ([]Date, error) {
	if inception.After(end) {
		return nil, fmt.Errorf("invalid range %s..%s: %w", inception, end, ErrInvertedRange)
	}
	var seq []Date
	current := inception
	for !current.After(end) {
		periodEnd := current.EndOf(period)
		if periodEnd.After(end) {
			periodEnd = end
		}
		seq = append(seq, periodEnd)
		if !periodEnd.Before(end) {
			break
		}
		current = periodEnd.Next(period)
	}
	return seq, nil
}

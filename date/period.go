package date

import (
	"fmt"
	"strings"
	"time"
)

// Period is the granularity at which a date range is partitioned.
type Period int

const (
	Daily Period = iota
	Monthly
	Quarterly
	Annually
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Annually:
		return "annually"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// ParsePeriod parses a period name. It accepts the long form used in folder
// naming ("daily") as well as the unit name ("day").
func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(p) {
	case "daily", "day":
		return Daily, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "annually", "annual", "yearly", "year":
		return Annually, nil
	default:
		return Daily, fmt.Errorf("unknown period %q (want daily, monthly, quarterly or annually)", p)
	}
}

// StartOf returns the date of begining of the period containing d.
func (d Date) StartOf(period Period) Date {
	switch period {
	case Daily:
		return d
	case Monthly:
		return New(d.Year(), d.Month(), 1)
	case Quarterly:
		quarter := (d.Month() - 1) / 3
		return New(d.Year(), time.Month(quarter*3+1), 1)
	case Annually:
		return New(d.Year(), time.January, 1)
	default:
		panic("unknown period")
	}
}

// EndOf returns the last calendar day of the period containing d: d itself
// for daily, the month end for monthly (correct for 28/29/30/31-day months),
// Mar 31/Jun 30/Sep 30/Dec 31 for quarterly, and Dec 31 for annually.
func (d Date) EndOf(period Period) Date {
	switch period {
	case Daily:
		return d
	case Monthly:
		return New(d.Year(), d.Month()+1, 0)
	case Quarterly:
		quarter := (d.Month() - 1) / 3          // in [0..3]
		endMonth := time.Month(quarter*3 + 3)   // in [1..12] hence the +3
		return New(d.Year(), endMonth+1, 0)     // last day is next month on the day 0
	case Annually:
		return New(d.Year()+1, time.January, 0)
	default:
		panic("unknown period")
	}
}

// Next returns the anchor date from which the following period's end is
// computed: one day, one calendar month, three calendar months or one
// calendar year after d. Month and year steps clamp the day-of-month to the
// target month's end (see AddMonths).
func (d Date) Next(period Period) Date {
	switch period {
	case Daily:
		return d.Add(1)
	case Monthly:
		return d.AddMonths(1)
	case Quarterly:
		return d.AddMonths(3)
	case Annually:
		return d.AddMonths(12)
	default:
		panic("unknown period")
	}
}

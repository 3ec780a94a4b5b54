package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/perfsplit"
	"github.com/etnz/perfsplit/date"
	"github.com/shopspring/decimal"
)

func TestSplitMarkdown(t *testing.T) {
	s := &perfsplit.Summary{
		Source:    "2023-01-20-source",
		Inception: date.New(2023, time.January, 15),
		End:       date.New(2023, time.January, 20),
		Period:    date.Daily,
		Meta:      perfsplit.PortfolioMeta{Name: "Growth Fund", Currency: "USD"},
		Periods: []perfsplit.PeriodSummary{
			{
				End:             date.New(2023, time.January, 15),
				HoldingRows:     1,
				TransactionRows: 1,
				MarketValue:     decimal.RequireFromString("100.00"),
			},
		},
		HasMarketValue: true,
	}

	md := SplitMarkdown(s)

	for _, want := range []string{
		"Growth Fund",
		"2023-01-20-source",
		"daily",
		"2023-01-15",
		"Market Value",
		"$100.00",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("SplitMarkdown() missing %q in:\n%s", want, md)
		}
	}
	// No transactions column without an Amount column in the source.
	if strings.Contains(md, "Net Amount") {
		t.Errorf("SplitMarkdown() shows a Net Amount column for a summary without one:\n%s", md)
	}
}

func TestPeriodsMarkdown(t *testing.T) {
	seq := []date.Date{
		date.New(2023, time.March, 31),
		date.New(2023, time.June, 30),
		date.New(2023, time.July, 10),
	}
	md := PeriodsMarkdown(date.New(2023, time.January, 1), date.New(2023, time.July, 10), date.Quarterly, seq)

	for _, want := range []string{"quarterly", "2023-03-31", "2023-06-30", "2023-07-10"} {
		if !strings.Contains(md, want) {
			t.Errorf("PeriodsMarkdown() missing %q in:\n%s", want, md)
		}
	}
}

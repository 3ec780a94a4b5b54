package perfsplit

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/perfsplit/date"
	"github.com/shopspring/decimal"
)

// Value columns totalled in the summary. Either may be absent from a dataset,
// in which case the corresponding total is simply not reported.
const (
	marketValueColumn = "Market Value"
	amountColumn      = "Amount"
)

// PeriodSummary is the at-a-glance content of one generated period folder:
// how many cumulative rows it holds and what they total.
type PeriodSummary struct {
	End             date.Date
	HoldingRows     int
	TransactionRows int
	MarketValue     decimal.Decimal // sum of holdings "Market Value", zero if the column is absent
	NetAmount       decimal.Decimal // sum of transactions "Amount", zero if the column is absent
}

// Summary is the per-period overview of a split.
type Summary struct {
	Source    string
	Inception date.Date
	End       date.Date
	Period    date.Period
	Meta      PortfolioMeta
	Periods   []PeriodSummary

	HasMarketValue bool
	HasNetAmount   bool
}

// Summarize computes the per-period summary of a planned or completed split,
// re-deriving each period's cumulative slice from the immutable source
// tables, exactly as the split writes them. Portfolio metadata is read from
// metaDir (typically <base>/<source>/portfolio).
func Summarize(metaDir string, source string, res *Result) (*Summary, error) {
	meta, err := ReadPortfolioMeta(metaDir)
	if err != nil {
		return nil, err
	}

	s := &Summary{
		Source:    source,
		Inception: res.Inception,
		End:       res.End,
		Period:    res.Period,
		Meta:      meta,
	}
	_, hErr := res.Holdings.Column(marketValueColumn)
	s.HasMarketValue = hErr == nil
	_, tErr := res.Transactions.Column(amountColumn)
	s.HasNetAmount = tErr == nil

	for _, periodEnd := range res.Periods {
		bounds := date.Range{From: res.Inception, To: periodEnd}

		holdings, err := res.Holdings.Filter(HoldingsDateColumn, bounds)
		if err != nil {
			return nil, err
		}
		transactions, err := res.Transactions.Filter(TransactionsDateColumn, bounds)
		if err != nil {
			return nil, err
		}

		p := PeriodSummary{
			End:             periodEnd,
			HoldingRows:     len(holdings.Rows),
			TransactionRows: len(transactions.Rows),
		}
		if s.HasMarketValue {
			if p.MarketValue, err = sumColumn(holdings, marketValueColumn); err != nil {
				return nil, fmt.Errorf("period %s: %w", periodEnd, err)
			}
		}
		if s.HasNetAmount {
			if p.NetAmount, err = sumColumn(transactions, amountColumn); err != nil {
				return nil, fmt.Errorf("period %s: %w", periodEnd, err)
			}
		}
		s.Periods = append(s.Periods, p)
	}
	return s, nil
}

// sumColumn totals a numeric column using exact decimal arithmetic. Empty
// cells count as zero; anything else that does not parse is an error.
func sumColumn(t Table, name string) (decimal.Decimal, error) {
	col, err := t.Column(name)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for i, row := range t.Rows {
		cell := strings.TrimSpace(row[col])
		if cell == "" {
			continue
		}
		v, err := decimal.NewFromString(strings.ReplaceAll(cell, ",", ""))
		if err != nil {
			return decimal.Zero, fmt.Errorf("row %d: invalid %s %q: %w", i+1, name, cell, err)
		}
		total = total.Add(v)
	}
	return total, nil
}

// FormatMoney renders a decimal amount in the summary's currency, using the
// currency's own fraction and symbol conventions.
func (s *Summary) FormatMoney(v decimal.Decimal) string {
	// to get a never nil currency we go through the Money constructor
	cur := *money.New(0, s.Meta.Currency).Currency()
	return cur.Formatter().Format(v.Shift(int32(cur.Fraction)).IntPart())
}

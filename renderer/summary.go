// Package renderer produces the markdown views of perfsplit results.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/perfsplit"
	"github.com/etnz/perfsplit/date"
)

// SplitMarkdown renders the per-period summary of a split as a markdown
// document: one table row per generated period folder.
func SplitMarkdown(s *perfsplit.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := fmt.Sprintf("Split of %s (%s)", s.Source, s.Period)
	if s.Meta.Name != "" {
		title = fmt.Sprintf("Split of %s — %s (%s)", s.Meta.Name, s.Source, s.Period)
	}
	doc.H1(title)
	doc.PlainText(fmt.Sprintf("Covering %s to %s, %d period folders, amounts in %s.",
		s.Inception, s.End, len(s.Periods), s.Meta.Currency))

	header := []string{"Period", "Holdings", "Transactions"}
	if s.HasMarketValue {
		header = append(header, "Market Value")
	}
	if s.HasNetAmount {
		header = append(header, "Net Amount")
	}

	var rows [][]string
	for _, p := range s.Periods {
		row := []string{
			p.End.String(),
			fmt.Sprintf("%d", p.HoldingRows),
			fmt.Sprintf("%d", p.TransactionRows),
		}
		if s.HasMarketValue {
			row = append(row, s.FormatMoney(p.MarketValue))
		}
		if s.HasNetAmount {
			row = append(row, s.FormatMoney(p.NetAmount))
		}
		rows = append(rows, row)
	}
	doc.Table(md.TableSet{Header: header, Rows: rows})

	return doc.String()
}

// PeriodsMarkdown renders a bare period sequence, one bullet per folder that
// a split would generate.
func PeriodsMarkdown(inception, end date.Date, period date.Period, seq []date.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Periods from %s to %s (%s)", inception, end, period))
	items := make([]string, 0, len(seq))
	for _, d := range seq {
		items = append(items, d.String())
	}
	doc.BulletList(items...)

	return doc.String()
}

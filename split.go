package perfsplit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/perfsplit/date"
)

// Splitter partitions one dataset folder into per-period folders. The base
// directory is explicit configuration so runs can target any location (and
// tests a temporary one); there is no process-wide path state.
type Splitter struct {
	BaseDir   string      // directory containing the source folder and receiving the period folders
	Source    string      // source folder name, its YYYY-MM-DD prefix is the overall end date
	Inception date.Date   // start of the covered range
	Period    date.Period // partitioning granularity
}

// Result describes a completed (or planned) split.
type Result struct {
	Inception    date.Date
	End          date.Date
	Period       date.Period
	Periods      []date.Date // period-end dates, one generated folder each
	Holdings     Table       // full source holdings, cleaned
	Transactions Table       // full source transactions, cleaned
}

// Plan resolves the end date from the source folder name, loads and cleans
// both tables, and computes the period sequence, without writing anything.
// Every configuration and source-data error surfaces here, before the
// filesystem is touched.
func (s *Splitter) Plan() (*Result, error) {
	end, err := ParseFolderDate(s.Source)
	if err != nil {
		return nil, err
	}
	periods, err := date.Sequence(s.Inception, end, s.Period)
	if err != nil {
		return nil, err
	}
	holdings, err := ReadTable(perfPath(s.BaseDir, s.Source, HoldingsFile), HoldingsDateColumn)
	if err != nil {
		return nil, fmt.Errorf("missing or unreadable holdings: %w", err)
	}
	transactions, err := ReadTable(perfPath(s.BaseDir, s.Source, TransactionsFile), TransactionsDateColumn)
	if err != nil {
		return nil, fmt.Errorf("missing or unreadable transactions: %w", err)
	}
	return &Result{
		Inception:    s.Inception,
		End:          end,
		Period:       s.Period,
		Periods:      periods,
		Holdings:     holdings,
		Transactions: transactions,
	}, nil
}

// Run performs the split: one folder per period end date, each holding the
// cumulative inception-to-date slice of both tables under perf/, then the two
// auxiliary folders replicated verbatim into every generated folder. The
// first error aborts the run; folders already written are left in place.
func (s *Splitter) Run() (*Result, error) {
	res, err := s.Plan()
	if err != nil {
		return nil, err
	}

	for _, periodEnd := range res.Periods {
		if err := s.writePeriod(res, periodEnd); err != nil {
			return nil, err
		}
	}

	// Auxiliary data is replicated after all periods are written, so a run
	// aborted halfway never leaves a period folder with fresh tables but
	// stale context.
	for _, periodEnd := range res.Periods {
		if err := s.replicateAux(periodEnd); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// writePeriod creates the period folder structure (idempotently, existing
// folders are kept) and writes both tables filtered to [inception, periodEnd].
func (s *Splitter) writePeriod(res *Result, periodEnd date.Date) error {
	folder := filepath.Join(s.BaseDir, periodEnd.String())
	for _, sub := range []string{PerfDir, ContextDir, PortfolioDir} {
		if err := os.MkdirAll(filepath.Join(folder, sub), 0o755); err != nil {
			return fmt.Errorf("cannot create period folder %q: %w", periodEnd, err)
		}
	}

	bounds := date.Range{From: res.Inception, To: periodEnd}

	holdings, err := res.Holdings.Filter(HoldingsDateColumn, bounds)
	if err != nil {
		return fmt.Errorf("filtering holdings for period %s: %w", periodEnd, err)
	}
	if err := WriteTable(perfPath(s.BaseDir, periodEnd.String(), HoldingsFile), holdings); err != nil {
		return err
	}

	transactions, err := res.Transactions.Filter(TransactionsDateColumn, bounds)
	if err != nil {
		return fmt.Errorf("filtering transactions for period %s: %w", periodEnd, err)
	}
	return WriteTable(perfPath(s.BaseDir, periodEnd.String(), TransactionsFile), transactions)
}

// replicateAux replaces the period folder's auxiliary subfolders with the
// source's. A source folder named exactly after the final period end would be
// its own replication target; it is skipped rather than deleted from under
// the copy.
func (s *Splitter) replicateAux(periodEnd date.Date) error {
	if s.Source == periodEnd.String() {
		return nil
	}
	for _, sub := range []string{ContextDir, PortfolioDir} {
		src := filepath.Join(s.BaseDir, s.Source, sub)
		if _, err := os.Stat(src); os.IsNotExist(err) {
			continue
		}
		dst := filepath.Join(s.BaseDir, periodEnd.String(), sub)
		if err := replaceDir(src, dst); err != nil {
			return fmt.Errorf("replicating %s to period %s: %w", sub, periodEnd, err)
		}
	}
	return nil
}

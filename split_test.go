package perfsplit

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/etnz/perfsplit/date"
)

// newDataset lays out a source dataset folder in a fresh base dir and returns
// the base dir. Holdings span 01/15..01/20, transactions 01/15..01/19.
func newDataset(t *testing.T, source string) string {
	t.Helper()
	base := t.TempDir()

	holdings := "Portfolio Code,Valuation Date,Market Value\n" +
		"P1,01/15/2023,100.00\n" +
		"P1,01/16/2023,101.00\n" +
		"P1,01/17/2023,102.00\n" +
		"P1,01/18/2023,103.00\n" +
		"P1,01/19/2023,104.00\n" +
		"P1,01/20/2023,105.00\n"
	transactions := "Portfolio Code,Transaction Date,Amount\n" +
		"P1,01/15/2023,1000.00\n" +
		"P1,01/17/2023,-50.00\n" +
		"P1,01/19/2023,25.00\n"

	writeFile(t, filepath.Join(base, source, PerfDir, HoldingsFile), holdings)
	writeFile(t, filepath.Join(base, source, PerfDir, TransactionsFile), transactions)
	writeFile(t, filepath.Join(base, source, ContextDir, "notes.txt"), "context\n")
	writeFile(t, filepath.Join(base, source, ContextDir, "deep", "more.txt"), "nested\n")
	writeFile(t, filepath.Join(base, source, PortfolioDir, "portfolio.json"),
		`{"portfolio": {"name": "Growth Fund", "currency": "EUR"}}`)
	return base
}

func TestSplitterRunDaily(t *testing.T) {
	source := "2023-01-20-source"
	base := newDataset(t, source)

	// A leftover from a previous run must be wiped by the replication.
	writeFile(t, filepath.Join(base, "2023-01-15", ContextDir, "stale.txt"), "old\n")

	s := &Splitter{
		BaseDir:   base,
		Source:    source,
		Inception: date.New(2023, time.January, 15),
		Period:    date.Daily,
	}
	res, err := s.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(res.Periods) != 6 {
		t.Fatalf("Run() produced %d periods, want 6", len(res.Periods))
	}

	// One folder per day, each with the cumulative slice.
	wantHoldingRows := 1
	for _, periodEnd := range res.Periods {
		folder := filepath.Join(base, periodEnd.String())
		holdings, err := ReadTable(filepath.Join(folder, PerfDir, HoldingsFile), HoldingsDateColumn)
		if err != nil {
			t.Fatalf("period %s: %v", periodEnd, err)
		}
		if len(holdings.Rows) != wantHoldingRows {
			t.Errorf("period %s holds %d holding rows, want %d", periodEnd, len(holdings.Rows), wantHoldingRows)
		}
		wantHoldingRows++

		// Auxiliary folders replicated, including nested content.
		for _, aux := range []string{
			filepath.Join(ContextDir, "notes.txt"),
			filepath.Join(ContextDir, "deep", "more.txt"),
			filepath.Join(PortfolioDir, "portfolio.json"),
		} {
			if _, err := os.Stat(filepath.Join(folder, aux)); err != nil {
				t.Errorf("period %s: missing replicated file %s: %v", periodEnd, aux, err)
			}
		}
	}

	if _, err := os.Stat(filepath.Join(base, "2023-01-15", ContextDir, "stale.txt")); !os.IsNotExist(err) {
		t.Error("stale auxiliary file survived the replication")
	}

	// The final folder holds everything.
	transactions, err := ReadTable(filepath.Join(base, "2023-01-20", PerfDir, TransactionsFile), TransactionsDateColumn)
	if err != nil {
		t.Fatal(err)
	}
	if len(transactions.Rows) != 3 {
		t.Errorf("final period holds %d transaction rows, want 3", len(transactions.Rows))
	}
}

func TestSplitterRunQuarterly(t *testing.T) {
	source := "2023-07-10-extract"
	base := newDataset(t, source)

	s := &Splitter{
		BaseDir:   base,
		Source:    source,
		Inception: date.New(2023, time.January, 1),
		Period:    date.Quarterly,
	}
	res, err := s.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := []string{"2023-03-31", "2023-06-30", "2023-07-10"}
	if len(res.Periods) != len(want) {
		t.Fatalf("Run() produced %d periods, want %d", len(res.Periods), len(want))
	}
	for i, periodEnd := range res.Periods {
		if periodEnd.String() != want[i] {
			t.Errorf("period %d = %s, want %s", i, periodEnd, want[i])
		}
		if _, err := os.Stat(filepath.Join(base, want[i], PerfDir, HoldingsFile)); err != nil {
			t.Errorf("missing period folder content %s: %v", want[i], err)
		}
	}
}

func TestSplitterRunAnnually(t *testing.T) {
	source := "2024-06-15"
	base := newDataset(t, source)

	s := &Splitter{
		BaseDir:   base,
		Source:    source,
		Inception: date.New(2023, time.June, 15),
		Period:    date.Annually,
	}
	res, err := s.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := []string{"2023-12-31", "2024-06-15"}
	for i, periodEnd := range res.Periods {
		if periodEnd.String() != want[i] {
			t.Errorf("period %d = %s, want %s", i, periodEnd, want[i])
		}
	}

	// The source folder is named exactly after the final period: it must not
	// be deleted from under its own replication.
	if _, err := os.Stat(filepath.Join(base, source, ContextDir, "notes.txt")); err != nil {
		t.Errorf("source auxiliary data was destroyed: %v", err)
	}
}

func TestSplitterInvertedRange(t *testing.T) {
	source := "2023-01-01-source"
	base := newDataset(t, source)

	s := &Splitter{
		BaseDir:   base,
		Source:    source,
		Inception: date.New(2023, time.July, 10),
		Period:    date.Monthly,
	}
	_, err := s.Run()
	if !errors.Is(err, date.ErrInvertedRange) {
		t.Fatalf("Run() error = %v, want ErrInvertedRange", err)
	}
}

func TestSplitterMissingTable(t *testing.T) {
	source := "2023-01-20-source"
	base := newDataset(t, source)
	if err := os.Remove(filepath.Join(base, source, PerfDir, HoldingsFile)); err != nil {
		t.Fatal(err)
	}

	s := &Splitter{
		BaseDir:   base,
		Source:    source,
		Inception: date.New(2023, time.January, 15),
		Period:    date.Daily,
	}
	_, err := s.Run()
	if err == nil {
		t.Fatal("Run() without a holdings table, want error")
	}
	// Nothing may have been written.
	if _, statErr := os.Stat(filepath.Join(base, "2023-01-15")); !os.IsNotExist(statErr) {
		t.Error("a period folder was created despite the missing source table")
	}
}

func TestSplitterIdempotentFolders(t *testing.T) {
	source := "2023-01-20-source"
	base := newDataset(t, source)

	s := &Splitter{
		BaseDir:   base,
		Source:    source,
		Inception: date.New(2023, time.January, 15),
		Period:    date.Daily,
	}
	if _, err := s.Run(); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	// A second run over pre-existing folders overwrites the tables in place.
	if _, err := s.Run(); err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
}

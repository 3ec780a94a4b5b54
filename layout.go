package perfsplit

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/etnz/perfsplit/date"
)

// The on-disk convention: a base directory holds one folder per dataset,
// each dataset folder holds a "perf" subfolder with the two tables, plus two
// auxiliary subfolders replicated verbatim into every generated period
// folder. Generated period folders are named after their period-end date in
// ISO form.
const (
	PerfDir      = "perf"
	ContextDir   = "context_data"
	PortfolioDir = "portfolio"

	HoldingsFile     = "Holdings.csv"
	TransactionsFile = "Transactions.csv"

	// Date columns of the two tables.
	HoldingsDateColumn     = "Valuation Date"
	TransactionsDateColumn = "Transaction Date"
)

var folderDateRE = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})`)

// ParseFolderDate extracts the date a dataset folder is named after: its
// YYYY-MM-DD prefix. The source folder's date is the overall end date of the
// partitioning run.
func ParseFolderDate(name string) (date.Date, error) {
	m := folderDateRE.FindStringSubmatch(name)
	if m == nil {
		return date.Date{}, fmt.Errorf("folder name %q does not start with a YYYY-MM-DD date", name)
	}
	return date.Parse(m[1])
}

// perfPath returns the path of a table inside a dataset folder.
func perfPath(baseDir, folder, file string) string {
	return filepath.Join(baseDir, folder, PerfDir, file)
}

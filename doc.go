// Package perfsplit partitions a portfolio performance dataset into calendar
// period folders. A dataset folder (named after its end date) holds holdings
// and transactions tables plus two auxiliary reference folders; perfsplit
// generates one folder per period between an inception date and the dataset's
// end date, each holding the cumulative inception-to-date slice of both
// tables and a verbatim copy of the auxiliary data.
//
// The core functionalities include:
//   - Period Arithmetic: calendar boundary computation at a daily, monthly,
//     quarterly or annual granularity, with correct month-end and leap-year
//     handling (see the date subpackage).
//   - Record Filtering: inclusive date-range filtering of tabular record
//     sets, preserving row order and every non-date field unchanged.
//   - Partitioning: the Splitter driver, sequencing periods, writing the
//     filtered tables and replicating auxiliary folders destructively.
//   - Summaries: per-period row counts and exact decimal totals for
//     reporting.
//
// This package serves as the foundational logic for the `psp` command-line
// tool; it performs a single linear pass with no concurrency and no state
// beyond the flat files it reads and writes.
package perfsplit

package perfsplit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/PaesslerAG/jsonpath"
)

// PortfolioMeta is display metadata found in the portfolio reference folder.
// It only affects reporting (names and currency formatting), never the split
// itself, so a dataset without it gets defaults.
type PortfolioMeta struct {
	Name     string
	Currency string
}

// DefaultCurrency is used when the portfolio reference data does not state one.
const DefaultCurrency = "USD"

// metaFile is the optional metadata file inside the portfolio reference folder.
const metaFile = "portfolio.json"

// ReadPortfolioMeta reads portfolio.json from the given portfolio reference
// folder. A missing file or missing fields yield defaults; a file that exists
// but cannot be parsed is an error.
func ReadPortfolioMeta(dir string) (PortfolioMeta, error) {
	meta := PortfolioMeta{Currency: DefaultCurrency}

	data, err := os.ReadFile(filepath.Join(dir, metaFile))
	if errors.Is(err, fs.ErrNotExist) {
		return meta, nil
	}
	if err != nil {
		return meta, fmt.Errorf("cannot read portfolio metadata: %w", err)
	}

	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return meta, fmt.Errorf("cannot parse portfolio metadata %q: %w", metaFile, err)
	}

	if name, ok := jstring(jobj, "$.portfolio.name"); ok {
		meta.Name = name
	}
	if cur, ok := jstring(jobj, "$.portfolio.currency"); ok {
		meta.Currency = cur
	}
	return meta, nil
}

// jstring extracts a string value at the given jsonpath.
func jstring(jobj any, path string) (string, bool) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", false
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	str, ok := jval.(string)
	return str, ok && str != ""
}

package symbols

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Built-in aliases; rows from the symbol-map CSV merge over these so new
// aliases need no code change.
var defaultAliases = map[string]string{
	"bitcoin":  "BTCUSDT",
	"btc":      "BTCUSDT",
	"ethereum": "ETHUSDT",
	"eth":      "ETHUSDT",
}

// Table maps human-friendly asset names to canonical exchange symbols.
type Table struct {
	aliases map[string]string
	csvPath string
}

// Load builds the alias table, merging rows from the CSV at csvPath over the
// built-in defaults. A missing file is not an error; the defaults apply.
func Load(csvPath string) (*Table, error) {
	aliases := make(map[string]string, len(defaultAliases))
	for alias, symbol := range defaultAliases {
		aliases[alias] = symbol
	}

	t := &Table{aliases: aliases, csvPath: csvPath}
	if csvPath == "" {
		return t, nil
	}

	raw, err := os.ReadFile(csvPath)
	if errors.Is(err, fs.ErrNotExist) {
		return t, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read symbol map %s: %w", csvPath, err)
	}

	records, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse symbol map %s: %w", csvPath, err)
	}
	for i, record := range records {
		if len(record) < 2 {
			continue
		}
		alias := strings.ToLower(strings.TrimSpace(record[0]))
		symbol := strings.ToUpper(strings.TrimSpace(record[1]))
		if i == 0 && alias == "alias" {
			continue
		}
		if alias == "" || symbol == "" {
			continue
		}
		t.aliases[alias] = symbol
	}
	return t, nil
}

// Normalize maps an asset name or symbol to its canonical exchange form.
// Unknown inputs pass through uppercased; the function is total over any
// string.
func (t *Table) Normalize(name string) string {
	trimmed := strings.TrimSpace(name)
	if symbol, ok := t.aliases[strings.ToLower(trimmed)]; ok {
		return symbol
	}
	return strings.ToUpper(trimmed)
}

// RawCSV returns the symbol-map file contents verbatim for the resource
// endpoint.
func (t *Table) RawCSV() (string, error) {
	raw, err := os.ReadFile(t.csvPath)
	if err != nil {
		return "", fmt.Errorf("read symbol map %s: %w", t.csvPath, err)
	}
	return string(raw), nil
}

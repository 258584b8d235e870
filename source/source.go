// Package source loads the raw MCC/MNC rows from whichever input file is
// present in the working directory.
package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

/* ──────────── conventional file names (checked in this order) ──────────── */

const (
	CSVFile    = "countries.csv"
	XLSXFile   = "countries.xlsx"
	SQLiteFile = "countries.db"
)

var candidates = []string{CSVFile, XLSXFile, SQLiteFile}

var ErrNoInput = errors.New("no input file")

// Find returns the first conventional input file that exists in dir.
func Find(dir string) (string, error) {
	for _, name := range candidates {
		p := filepath.Join(dir, name)
		st, err := os.Stat(p)
		if err == nil && !st.IsDir() {
			return p, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: looked for %s in %s", ErrNoInput, strings.Join(candidates, ", "), dir)
}

// Read loads every row of path, picking the decoder by file extension.
func Read(ctx context.Context, path string) ([][]string, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSVFile(ctx, path)
	case ".xlsx":
		rows, err = ReadXLSX(ctx, path)
	case ".db", ".sqlite", ".sqlite3":
		rows, err = ReadSQLite(ctx, path)
	default:
		return nil, fmt.Errorf("%s: unsupported input type", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}

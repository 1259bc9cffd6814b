// Package ingest reads MoneyForward CSV exports and normalizes them
// into the consolidated ledger's fixed column set.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"

	"github.com/clshinji/mf-data-viewer/internal/log"
)

// RawBatch is one source file's rows in source column order, tagged
// with the period token from the filename. It only lives during
// normalization.
type RawBatch struct {
	File      string
	PeriodTag string
	Header    []string
	Rows      [][]string
}

// Result is the consolidated, schema-stable table produced from one
// normalization run, plus the per-file warnings it accumulated.
type Result struct {
	Columns  []string
	Rows     [][]string
	Warnings []Warning
}

// Normalizer reads source batches. The exports are Shift-JIS encoded;
// everything downstream of this package is UTF-8.
type Normalizer struct {
	logger *log.Logger
}

func NewNormalizer(logger *log.Logger) *Normalizer {
	return &Normalizer{logger: logger.WithComponent("ingest")}
}

// ReadBatch reads and decodes a single export file. Failures return a
// *BatchReadError so the caller can skip the file and continue.
func (n *Normalizer) ReadBatch(path string) (*RawBatch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &BatchReadError{File: path, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(japanese.ShiftJIS.NewDecoder().Reader(f))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &BatchReadError{File: path, Err: err}
	}
	if len(records) == 0 {
		return nil, &BatchReadError{File: path, Err: errors.New("empty file")}
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	if err := checkHeader(header); err != nil {
		return nil, &BatchReadError{File: path, Err: err}
	}

	return &RawBatch{
		File:      path,
		PeriodTag: PeriodTagFromFilename(path),
		Header:    header,
		Rows:      records[1:],
	}, nil
}

// checkHeader rejects files that do not look like an export in the
// expected encoding. The Shift-JIS decoder substitutes U+FFFD for
// bytes it cannot map instead of failing, so a wrong-encoding file
// shows up here as a header without the mandatory columns.
func checkHeader(header []string) error {
	hasDate, hasAmount := false, false
	for _, name := range header {
		if strings.ContainsRune(name, utf8.RuneError) {
			return errors.New("undecodable header")
		}
		switch name {
		case ColDate:
			hasDate = true
		case ColAmount:
			hasAmount = true
		}
	}
	if !hasDate || !hasAmount {
		return fmt.Errorf("unrecognized header: missing %s or %s column", ColDate, ColAmount)
	}
	return nil
}

// NormalizeDir reads every *.csv under dir in lexicographic filename
// order and concatenates the batches onto the schema fixed by the
// first readable one. exclude names a file to skip, used to keep the
// canonical ledger out of its own source set when both share a
// directory.
//
// File-level failures become warnings and never abort the run.
// Returns ErrSourceMissing when the directory is absent or holds no
// CSVs, ErrNoReadableFiles when every file was skipped.
func (n *Normalizer) NormalizeDir(dir, exclude string) (*Result, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("source directory %s: %w", dir, ErrSourceMissing)
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("list source directory %s: %w", dir, err)
	}
	if exclude != "" {
		filtered := paths[:0]
		for _, p := range paths {
			if filepath.Clean(p) != filepath.Clean(exclude) {
				filtered = append(filtered, p)
			}
		}
		paths = filtered
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("source directory %s: %w", dir, ErrSourceMissing)
	}
	sort.Strings(paths)

	var (
		schema     Schema
		haveSchema bool
		result     Result
	)
	for _, path := range paths {
		batch, err := n.ReadBatch(path)
		if err != nil {
			n.logger.Warn("skipping unreadable source file", "file", path, "error", err)
			result.Warnings = append(result.Warnings, Warning{
				File:    path,
				Message: err.Error(),
			})
			continue
		}
		if !haveSchema {
			schema = newSchema(batch.Header)
			haveSchema = true
			n.logger.Debug("schema fixed by first batch", "file", path, "columns", len(schema.Columns))
		}
		rows := schema.Reindex(batch)
		result.Rows = append(result.Rows, rows...)
		n.logger.Debug("normalized batch", "file", path, "rows", len(rows), "period_tag", batch.PeriodTag)
	}

	if !haveSchema {
		return nil, fmt.Errorf("source directory %s: %w", dir, ErrNoReadableFiles)
	}
	result.Columns = schema.Columns
	return &result, nil
}

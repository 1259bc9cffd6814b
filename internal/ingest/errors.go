package ingest

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceMissing means the source directory is absent or holds
	// no CSV files. A previously built ledger stays usable.
	ErrSourceMissing = errors.New("no source CSV files found")

	// ErrNoReadableFiles means every source file failed to read.
	ErrNoReadableFiles = errors.New("no readable source CSV files")
)

// BatchReadError is a per-file decode or parse failure. It is
// recoverable: the file is skipped and the run continues.
type BatchReadError struct {
	File string
	Err  error
}

func (e *BatchReadError) Error() string {
	return fmt.Sprintf("read batch %s: %v", e.File, e.Err)
}

func (e *BatchReadError) Unwrap() error {
	return e.Err
}

// Warning surfaces a skipped file to the caller without failing the
// run.
type Warning struct {
	RunID   string `json:"run_id"`
	File    string `json:"file"`
	Message string `json:"message"`
}

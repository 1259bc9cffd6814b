package ingest

import (
	"path/filepath"
	"regexp"

	"github.com/clshinji/mf-data-viewer/internal/core"
)

// Source column names as MoneyForward writes them. These are fixed by
// the export format and used verbatim as ledger column keys.
const (
	ColPeriodTag   = "period_tag"
	ColAccounted   = "計算対象"
	ColDate        = "日付"
	ColDescription = "内容"
	ColAmount      = "金額（円）"
	ColMajor       = "大項目"
	ColMinor       = "中項目"
	ColTransfer    = "振替"
)

// AccountedSentinel is the flag value marking a row as counted.
const AccountedSentinel = "1"

var periodTagPattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}_\d{4}-\d{2}-\d{2}`)

// PeriodTagFromFilename extracts the YYYY-MM-DD_YYYY-MM-DD token from
// the base filename, or core.PeriodUnknown when absent.
func PeriodTagFromFilename(path string) string {
	if tag := periodTagPattern.FindString(filepath.Base(path)); tag != "" {
		return tag
	}
	return core.PeriodUnknown
}

// Schema is the fixed column set of the consolidated ledger. It is
// defined once by the first successfully read batch, with period_tag
// forced to be the first column, and never changes afterwards: later
// batches are reindexed onto it, so a column that only appears in a
// later batch is dropped. This is a deliberate policy, not a bug.
type Schema struct {
	Columns []string
}

// newSchema derives the ledger schema from the first batch's header.
func newSchema(header []string) Schema {
	columns := make([]string, 0, len(header)+1)
	columns = append(columns, ColPeriodTag)
	columns = append(columns, header...)
	return Schema{Columns: columns}
}

// Reindex maps a batch's rows onto the schema's exact column set.
// period_tag is filled from the batch tag, columns the batch lacks
// become empty cells, and columns the schema lacks are dropped.
func (s Schema) Reindex(batch *RawBatch) [][]string {
	index := make(map[string]int, len(batch.Header))
	for i, name := range batch.Header {
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	out := make([][]string, 0, len(batch.Rows))
	for _, row := range batch.Rows {
		cells := make([]string, len(s.Columns))
		for c, name := range s.Columns {
			if name == ColPeriodTag {
				cells[c] = batch.PeriodTag
				continue
			}
			if i, ok := index[name]; ok && i < len(row) {
				cells[c] = row[i]
			}
		}
		out = append(out, cells)
	}
	return out
}

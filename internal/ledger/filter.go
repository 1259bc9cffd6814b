package ledger

import (
	"github.com/clshinji/mf-data-viewer/internal/core"
	"github.com/clshinji/mf-data-viewer/internal/ingest"
	"github.com/clshinji/mf-data-viewer/internal/log"
)

// ApplyBusinessRules converts raw ledger rows to typed transactions,
// applying the unconditional accounting filter before any user
// filter: only rows flagged as counted and not marked as transfers
// survive. Rows whose date or amount fail to parse are dropped — a
// deterministic per-row policy, not an error. Input order is
// preserved.
func ApplyBusinessRules(l *Ledger, logger *log.Logger) []core.Transaction {
	var (
		idxPeriod    = l.columnIndex(ingest.ColPeriodTag)
		idxAccounted = l.columnIndex(ingest.ColAccounted)
		idxTransfer  = l.columnIndex(ingest.ColTransfer)
		idxDate      = l.columnIndex(ingest.ColDate)
		idxDesc      = l.columnIndex(ingest.ColDescription)
		idxAmount    = l.columnIndex(ingest.ColAmount)
		idxMajor     = l.columnIndex(ingest.ColMajor)
		idxMinor     = l.columnIndex(ingest.ColMinor)
	)

	txs := make([]core.Transaction, 0, len(l.Rows))
	dropped := 0
	for _, row := range l.Rows {
		accounted := l.cell(row, idxAccounted) == ingest.AccountedSentinel
		transfer := l.cell(row, idxTransfer) == "1"
		if !accounted || transfer {
			continue
		}

		date, err := core.ParseDate(l.cell(row, idxDate))
		if err != nil {
			dropped++
			continue
		}
		amount, err := core.ParseAmount(l.cell(row, idxAmount))
		if err != nil {
			dropped++
			continue
		}

		txs = append(txs, core.Transaction{
			PeriodTag:   l.cell(row, idxPeriod),
			Date:        date,
			Description: l.cell(row, idxDesc),
			Amount:      amount,
			Major:       l.cell(row, idxMajor),
			Minor:       l.cell(row, idxMinor),
			Accounted:   accounted,
			Transfer:    transfer,
		})
	}

	if logger != nil && dropped > 0 {
		logger.Debug("dropped rows with uncoercible date or amount", "count", dropped)
	}
	return txs
}

package pipeline

import (
	"log/slog"

	"github.com/couchcryptid/volcano-map-service/internal/domain"
)

// Transform parses raw rows into a Dataset. Rows without finite coordinates
// are skipped and logged at debug level; they never fail the load.
func Transform(rows []domain.RawRow, logger *slog.Logger) *domain.Dataset {
	return domain.BuildDataset(rows, func(i int, row domain.RawRow) {
		logger.Debug("skipping row without coordinates",
			"row", i,
			"name", row.Get(domain.ColumnName...),
		)
	})
}

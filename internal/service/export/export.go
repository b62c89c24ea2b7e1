// Package export builds journey report rows and appends them to the
// configured spreadsheet for the agronomy team.
package export

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/agrilync/farmtrack/internal/catalog"
	"github.com/agrilync/farmtrack/internal/domain/models"
	"github.com/agrilync/farmtrack/internal/repository/farmstore"
	sheetsrepo "github.com/agrilync/farmtrack/internal/repository/sheets"
)

const (
	reportWriteRange = "JourneyReport!A:I"
	dateFormat       = "2006-01-02"
)

// Service assembles and exports the journey report.
type Service struct {
	store  farmstore.FarmStore
	sheets sheetsrepo.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a journey report exporter.
func NewService(store farmstore.FarmStore, sheets sheetsrepo.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		sheets: sheets,
		logger: logger,
		now:    time.Now,
	}
}

// ExportJourneyReport writes one row per (farm, stage) with status, activity
// count, and last activity date.
func (s *Service) ExportJourneyReport(ctx context.Context) error {
	farms, err := s.store.ListFarms(ctx)
	if err != nil {
		return fmt.Errorf("load farms for report: %w", err)
	}

	exportedAt := s.now().UTC().Format(dateFormat)
	rows := make([][]interface{}, 0, len(farms)*8)

	for _, farm := range farms {
		category := farm.Category()
		for _, stage := range catalog.StageSequence(category) {
			record := farm.StageDetails[stage]
			rows = append(rows, []interface{}{
				exportedAt,
				farm.Name,
				farm.Farmer.ID,
				string(category),
				string(farm.CurrentStage),
				string(stage),
				string(statusOrPending(record)),
				len(record.Activities),
				lastActivityDate(record),
			})
		}
	}

	if len(rows) == 0 {
		s.logger.Info("journey report skipped, no farms")
		return nil
	}

	if err := s.sheets.AppendRows(ctx, reportWriteRange, rows); err != nil {
		return fmt.Errorf("export journey report: %w", err)
	}

	s.logger.Info("journey report exported", zap.Int("farms", len(farms)), zap.Int("rows", len(rows)))
	return nil
}

func statusOrPending(record models.StageRecord) models.StageStatus {
	if record.Status == "" {
		return models.StatusPending
	}
	return record.Status
}

func lastActivityDate(record models.StageRecord) string {
	if len(record.Activities) == 0 {
		return ""
	}
	return record.Activities[len(record.Activities)-1].Date
}

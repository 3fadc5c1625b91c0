package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/riskibarqy/pool-league/internal/domain/scoring"
)

var leaderboardHeader = []any{
	"Player", "Total Points", "Tournaments", "Games", "PPG", "PPT", "PPS", "Record", "Win %",
}

// ExportService renders leaderboards as an xlsx workbook with one sheet per mode.
type ExportService struct {
	stats *StatsService
}

func NewExportService(stats *StatsService) *ExportService {
	return &ExportService{stats: stats}
}

func (s *ExportService) WriteLeaderboard(ctx context.Context, seasonID *int64, w io.Writer) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExportService.WriteLeaderboard")
	defer span.End()

	f := excelize.NewFile()
	defer f.Close()

	first := f.GetSheetName(f.GetActiveSheetIndex())
	for i, mode := range []scoring.Mode{scoring.ModeSingles, scoring.ModeDoubles} {
		rows, err := s.stats.Leaderboard(ctx, StatsQuery{Mode: mode, SeasonID: seasonID})
		if err != nil {
			return err
		}

		sheet := sheetName(mode)
		if i == 0 {
			if err := f.SetSheetName(first, sheet); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %s: %w", sheet, err)
		}

		if err := writeLeaderboardSheet(f, sheet, rows); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeLeaderboardSheet(f *excelize.File, sheet string, rows []LeaderboardRow) error {
	header := append([]any(nil), leaderboardHeader...)
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}

	for idx, row := range rows {
		axis, err := excelize.CoordinatesToCellName(1, idx+2)
		if err != nil {
			return err
		}
		cells := []any{
			row.PlayerName,
			row.TotalPoints,
			row.Tournaments,
			row.Games,
			row.PPG,
			row.PPT,
			row.PPS,
			row.Record.Record,
			row.Record.WinPercentage,
		}
		if err := f.SetSheetRow(sheet, axis, &cells); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, idx+2, err)
		}
	}
	return nil
}

func sheetName(mode scoring.Mode) string {
	if mode == scoring.ModeDoubles {
		return "Doubles"
	}
	return "Singles"
}

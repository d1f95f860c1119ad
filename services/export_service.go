package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/Dosada05/prediction-pool/models"
	"github.com/Dosada05/prediction-pool/storage"
)

const exportContentType = "text/csv"

type ExportService interface {
	ExportLeaderboard(ctx context.Context) (*storage.UploadResult, error)
}

type exportService struct {
	leaderboard LeaderboardService
	uploader    storage.FileUploader
	now         func() time.Time
	logger      *slog.Logger
}

// NewExportService returns a service that uploads leaderboard CSVs. With a nil
// uploader every export fails with ErrExportDisabled.
func NewExportService(leaderboard LeaderboardService, uploader storage.FileUploader, logger *slog.Logger) ExportService {
	return &exportService{leaderboard: leaderboard, uploader: uploader, now: time.Now, logger: logger}
}

func (s *exportService) ExportLeaderboard(ctx context.Context) (*storage.UploadResult, error) {
	if s.uploader == nil {
		return nil, ErrExportDisabled
	}

	entries, err := s.leaderboard.Get(ctx)
	if err != nil {
		return nil, err
	}
	data, err := leaderboardCSV(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to encode leaderboard: %w", err)
	}

	key := fmt.Sprintf("exports/leaderboard-%s.csv", s.now().UTC().Format("20060102T150405Z"))
	result, err := s.uploader.Upload(ctx, key, exportContentType, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to upload leaderboard export: %w", err)
	}

	s.logger.InfoContext(ctx, "leaderboard exported", slog.String("key", result.Key), slog.Int("rows", len(entries)))
	return result, nil
}

func leaderboardCSV(entries []models.LeaderboardEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"position", "username", "name", "points", "exact_scores", "marquee_points", "trend"}); err != nil {
		return nil, err
	}
	for _, e := range entries {
		record := []string{
			strconv.Itoa(e.Position),
			e.ParticipantID,
			e.Name,
			strconv.Itoa(e.Points),
			strconv.Itoa(e.ExactScores),
			strconv.Itoa(e.MarqueePoints),
			string(e.Trend),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// Package service contains the aggregation layer.
//
// This file implements the matter-start tally aggregator.
package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/laa-civil/bulkclaim/internal/claims"
	"github.com/laa-civil/bulkclaim/internal/domain"
)

// MatterStartTallyRow is one tally group: a distinct description/category
// pair and how many matter starts fell into it. Counts are never zero.
type MatterStartTallyRow struct {
	Description string
	Category    string
	Count       int
}

// MatterStartsService builds the matter starts tab view for a submission.
type MatterStartsService interface {
	// BuildTally fetches every matter start for the submission and groups
	// them into counted rows.
	BuildTally(ctx context.Context, submissionID uuid.UUID) ([]MatterStartTallyRow, error)
}

type matterStartsService struct {
	client claims.Client
	logger *slog.Logger
}

// NewMatterStartsService creates a new MatterStartsService.
func NewMatterStartsService(client claims.Client, logger *slog.Logger) MatterStartsService {
	return &matterStartsService{
		client: client,
		logger: logger,
	}
}

func (s *matterStartsService) BuildTally(ctx context.Context, submissionID uuid.UUID) ([]MatterStartTallyRow, error) {
	const op = "matterstarts.build_tally"

	starts, err := s.client.GetMatterStarts(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	rows := TallyMatterStarts(starts)

	s.logger.Debug("matter starts tallied",
		"op", op,
		"submission_id", submissionID,
		"records", len(starts),
		"groups", len(rows),
	)

	return rows, nil
}

// TallyMatterStarts groups matter starts by exact description/category
// match (case-sensitive) and counts occurrences. Group order is first-seen
// order of each distinct pair in the input.
func TallyMatterStarts(starts []domain.MatterStart) []MatterStartTallyRow {
	type key struct {
		description string
		category    string
	}

	rows := make([]MatterStartTallyRow, 0, len(starts))
	index := make(map[key]int)

	for _, start := range starts {
		k := key{description: start.Description, category: start.CategoryCode}
		if i, seen := index[k]; seen {
			rows[i].Count++
			continue
		}
		index[k] = len(rows)
		rows = append(rows, MatterStartTallyRow{
			Description: start.Description,
			Category:    start.CategoryCode,
			Count:       1,
		})
	}

	return rows
}

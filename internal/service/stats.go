package service

import (
	"context"
	"time"

	"github.com/bibliotek/lending-service/internal/model"
	"github.com/bibliotek/lending-service/pkg/kafka"
)

const defaultEventsLimit = 50

func (s *Service) GetStats(ctx context.Context) (model.Stats, error) {
	return s.repo.GetStats(ctx, time.Now().UTC())
}

func (s *Service) ListEvents(ctx context.Context, limit int) ([]model.BorrowEvent, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultEventsLimit
	}
	return s.repo.ListEvents(ctx, limit)
}

// RecordEvent persists a consumed audit event.
func (s *Service) RecordEvent(ctx context.Context, ev kafka.BorrowEvent) error {
	return s.repo.RecordEvent(ctx, ev)
}

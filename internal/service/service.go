package service

import (
	"go.uber.org/zap"

	"github.com/bibliotek/lending-service/internal/repository"
	"github.com/bibliotek/lending-service/pkg/kafka"
)

// EventLog publishes borrow lifecycle events to the audit feed.
type EventLog interface {
	Log(ev kafka.BorrowEvent) error
}

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	events EventLog
}

func NewService(repo repository.Repository, events EventLog, log *zap.Logger) *Service {
	return &Service{
		log:    log,
		repo:   repo,
		events: events,
	}
}

func (s *Service) logEvent(ev kafka.BorrowEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Log(ev); err != nil {
		s.log.Warn("event log", zap.Error(err))
	}
}

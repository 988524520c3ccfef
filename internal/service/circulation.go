package service

import (
	"context"
	"time"

	"github.com/bibliotek/lending-service/internal/errs"
	"github.com/bibliotek/lending-service/internal/model"
	"github.com/bibliotek/lending-service/pkg/kafka"
)

// borrowPeriod is the fixed lending window.
const borrowPeriod = 14 * 24 * time.Hour

func (s *Service) BorrowBook(ctx context.Context, username, bookUid string) (model.Borrow, error) {
	user, err := s.repo.GetUser(ctx, username)
	if err != nil {
		return model.Borrow{}, err
	}
	book, err := s.repo.GetBook(ctx, bookUid)
	if err != nil {
		return model.Borrow{}, err
	}
	if book.AvailableCopies <= 0 {
		return model.Borrow{}, errs.ErrNotAvailable
	}
	active, err := s.repo.HasActiveBorrow(ctx, user.ID, book.ID)
	if err != nil {
		return model.Borrow{}, err
	}
	if active {
		return model.Borrow{}, errs.ErrAlreadyBorrowed
	}

	now := time.Now().UTC()
	borrow, err := s.repo.CreateBorrow(ctx, user.ID, book.ID, now, now.Add(borrowPeriod))
	if err != nil {
		return model.Borrow{}, err
	}
	borrow.BookUid = book.BookUid
	borrow.Title = book.Title
	borrow.Author = book.Author

	s.logEvent(kafka.BorrowEvent{
		Timestamp: now,
		Username:  username,
		BorrowUid: borrow.BorrowUid,
		BookUid:   book.BookUid,
		EventType: kafka.EventBorrowed,
	})
	return borrow, nil
}

func (s *Service) ReturnBook(ctx context.Context, actor model.Actor, borrowUid string) (model.Borrow, error) {
	borrow, err := s.repo.GetBorrow(ctx, borrowUid)
	if err != nil {
		return model.Borrow{}, err
	}
	if !actor.IsAdmin {
		user, err := s.repo.GetUser(ctx, actor.Username)
		if err != nil {
			return model.Borrow{}, err
		}
		if borrow.UserID != user.ID {
			return model.Borrow{}, errs.ErrForbidden
		}
	}

	now := time.Now().UTC()
	returned, err := s.repo.ReturnBorrow(ctx, borrow.ID, now)
	if err != nil {
		return model.Borrow{}, err
	}
	returned.BookUid = borrow.BookUid
	returned.Title = borrow.Title
	returned.Author = borrow.Author

	s.logEvent(kafka.BorrowEvent{
		Timestamp: now,
		Username:  actor.Username,
		BorrowUid: returned.BorrowUid,
		BookUid:   borrow.BookUid,
		EventType: kafka.EventReturned,
	})
	return returned, nil
}

func (s *Service) ListBorrows(ctx context.Context, username string) ([]model.Borrow, error) {
	user, err := s.repo.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.repo.ListBorrows(ctx, user.ID)
}

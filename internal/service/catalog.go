package service

import (
	"context"
	"strings"

	"github.com/bibliotek/lending-service/internal/errs"
	"github.com/bibliotek/lending-service/internal/model"
)

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	if req.TotalCopies < 0 || strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Author) == "" {
		return model.Book{}, errs.ErrValidation
	}
	return s.repo.CreateBook(ctx, req)
}

func (s *Service) UpdateBook(ctx context.Context, bookUid string, req model.UpdateBookRequest) (model.Book, error) {
	if req.TotalCopies < 0 || strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Author) == "" {
		return model.Book{}, errs.ErrValidation
	}
	return s.repo.UpdateBook(ctx, bookUid, req)
}

func (s *Service) DeleteBook(ctx context.Context, bookUid string) error {
	book, err := s.repo.GetBook(ctx, bookUid)
	if err != nil {
		return err
	}
	active, err := s.repo.ActiveBorrowsForBook(ctx, book.ID)
	if err != nil {
		return err
	}
	if active > 0 {
		return errs.ErrConflict
	}
	return s.repo.DeleteBook(ctx, bookUid)
}

func (s *Service) GetBook(ctx context.Context, bookUid string) (model.Book, error) {
	return s.repo.GetBook(ctx, bookUid)
}

func (s *Service) ListBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, error) {
	return s.repo.ListBooks(ctx, filter)
}

func (s *Service) ListCategories(ctx context.Context) ([]string, error) {
	return s.repo.ListCategories(ctx)
}

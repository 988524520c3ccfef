package service

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/bibliotek/lending-service/internal/errs"
	"github.com/bibliotek/lending-service/internal/model"
)

const (
	seedAdminUsername = "admin"
	// placeholder credential, rotate after first deploy
	seedAdminPassword = "admin123"
)

var seedBooks = []model.CreateBookRequest{
	{Title: "Đắc Nhân Tâm", Author: "Dale Carnegie", Category: strPtr("Kỹ năng sống"), TotalCopies: 5},
	{Title: "Sapiens", Author: "Yuval Noah Harari", Category: strPtr("Lịch sử"), TotalCopies: 3},
	{Title: "Nhà Giả Kim", Author: "Paulo Coelho", Category: strPtr("Văn học"), TotalCopies: 4},
	{Title: "Tuổi Trẻ Đáng Giá Bao Nhiêu", Author: "Rosie Nguyễn", Category: strPtr("Kỹ năng sống"), TotalCopies: 3},
}

// Seed provisions the admin account and sample catalog. Idempotent: it only
// creates what is missing, so reruns are no-ops.
func (s *Service) Seed(ctx context.Context) error {
	if _, err := s.repo.GetUser(ctx, seedAdminUsername); err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			return errors.Wrap(err, "seed admin lookup")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return errors.Wrap(err, "seed admin hash")
		}
		if _, err := s.repo.CreateUser(ctx, seedAdminUsername, string(hash), true); err != nil && !errors.Is(err, errs.ErrConflict) {
			return errors.Wrap(err, "seed admin create")
		}
	}

	books, err := s.repo.ListBooks(ctx, model.BookFilter{})
	if err != nil {
		return errors.Wrap(err, "seed list books")
	}
	if len(books.Items) > 0 {
		return nil
	}
	for _, b := range seedBooks {
		if _, err := s.repo.CreateBook(ctx, b); err != nil {
			return errors.Wrapf(err, "seed book %q", b.Title)
		}
	}
	return nil
}

func strPtr(s string) *string {
	return &s
}

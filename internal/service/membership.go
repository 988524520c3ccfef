package service

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/bibliotek/lending-service/internal/errs"
	"github.com/bibliotek/lending-service/internal/model"
)

func (s *Service) RegisterUser(ctx context.Context, req model.UserCreateRequest) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, errors.Wrap(err, "hash password")
	}
	return s.repo.CreateUser(ctx, req.Username, string(hash), false)
}

// Authenticate reports the same error for an unknown username and a wrong
// password.
func (s *Service) Authenticate(ctx context.Context, req model.AuthRequest) (model.User, error) {
	user, err := s.repo.GetUser(ctx, req.Username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.User{}, errs.ErrBadCredentials
		}
		return model.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return model.User{}, errs.ErrBadCredentials
	}
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, username string) (model.User, error) {
	return s.repo.GetUser(ctx, username)
}

func (s *Service) GetUserByID(ctx context.Context, id int) (model.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

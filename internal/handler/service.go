package handler

import (
	"context"

	"github.com/bibliotek/lending-service/internal/model"
	"github.com/bibliotek/lending-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LendingService interface {
	RegisterUser(ctx context.Context, req model.UserCreateRequest) (model.User, error)
	Authenticate(ctx context.Context, req model.AuthRequest) (model.User, error)
	GetUser(ctx context.Context, username string) (model.User, error)
	GetUserByID(ctx context.Context, id int) (model.User, error)

	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, bookUid string, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, bookUid string) error
	GetBook(ctx context.Context, bookUid string) (model.Book, error)
	ListBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, error)
	ListCategories(ctx context.Context) ([]string, error)

	BorrowBook(ctx context.Context, username, bookUid string) (model.Borrow, error)
	ReturnBook(ctx context.Context, actor model.Actor, borrowUid string) (model.Borrow, error)
	ListBorrows(ctx context.Context, username string) ([]model.Borrow, error)

	GetStats(ctx context.Context) (model.Stats, error)
	ListEvents(ctx context.Context, limit int) ([]model.BorrowEvent, error)
}

var _ LendingService = (*service.Service)(nil)

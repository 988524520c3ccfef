package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/bibliotek/lending-service/internal/model"
	"github.com/bibliotek/lending-service/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, bookUid string, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, bookUid string) error
	GetBook(ctx context.Context, bookUid string) (model.Book, error)
	ListBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, error)
	ListCategories(ctx context.Context) ([]string, error)

	CreateUser(ctx context.Context, username, passwordHash string, isAdmin bool) (model.User, error)
	GetUser(ctx context.Context, username string) (model.User, error)
	GetUserByID(ctx context.Context, id int) (model.User, error)

	CreateBorrow(ctx context.Context, userID, bookID int, borrowDate, dueDate time.Time) (model.Borrow, error)
	ReturnBorrow(ctx context.Context, borrowID int, returnDate time.Time) (model.Borrow, error)
	GetBorrow(ctx context.Context, borrowUid string) (model.Borrow, error)
	ListBorrows(ctx context.Context, userID int) ([]model.Borrow, error)
	HasActiveBorrow(ctx context.Context, userID, bookID int) (bool, error)
	ActiveBorrowsForBook(ctx context.Context, bookID int) (int, error)

	GetStats(ctx context.Context, now time.Time) (model.Stats, error)

	RecordEvent(ctx context.Context, ev kafka.BorrowEvent) error
	ListEvents(ctx context.Context, limit int) ([]model.BorrowEvent, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName        = `users`
	booksTableName        = `books`
	borrowsTableName      = `borrows`
	borrowEventsTableName = `borrow_events`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

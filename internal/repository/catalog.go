package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bibliotek/lending-service/internal/errs"
	"github.com/bibliotek/lending-service/internal/model"
)

var bookColumns = []string{"id", "book_uid", "title", "author", "category", "total_copies", "available_copies"}

func (r *repository) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	q, args, err := qb.Insert(booksTableName).
		Columns("book_uid", "title", "author", "category", "total_copies", "available_copies").
		Values(uuid.New(), req.Title, req.Author, req.Category, req.TotalCopies, req.TotalCopies).
		Suffix("returning id, book_uid, title, author, category, total_copies, available_copies").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", q), zap.Any("args", args))
		return model.Book{}, err
	}
	return book, nil
}

// UpdateBook shifts available_copies by the total_copies delta; the predicate
// refuses a shrink that would drive available_copies below zero.
func (r *repository) UpdateBook(ctx context.Context, bookUid string, req model.UpdateBookRequest) (model.Book, error) {
	q := `
	update books
	set title = $2, author = $3, category = $4,
	    available_copies = available_copies + ($5 - total_copies),
	    total_copies = $5
	where book_uid = $1 and available_copies + ($5 - total_copies) >= 0
	returning id, book_uid, title, author, category, total_copies, available_copies`

	var book model.Book
	err := r.db.GetContext(ctx, &book, q, bookUid, req.Title, req.Author, req.Category, req.TotalCopies)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// no row matched: either the uid is gone or the shrink was refused
			var exists bool
			if err := r.db.QueryRowContext(ctx,
				`select exists(select 1 from books where book_uid = $1)`, bookUid).Scan(&exists); err != nil {
				return model.Book{}, err
			}
			if !exists {
				return model.Book{}, errs.ErrNotFound
			}
			return model.Book{}, errs.ErrValidation
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) DeleteBook(ctx context.Context, bookUid string) error {
	q, args, err := qb.Delete(booksTableName).
		Where(sq.Eq{"book_uid": bookUid}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) GetBook(ctx context.Context, bookUid string) (model.Book, error) {
	q, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"book_uid": bookUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, error) {
	q := qb.Select(bookColumns...).
		From(booksTableName).
		OrderBy("id")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(sq.Or{sq.ILike{"title": pattern}, sq.ILike{"author": pattern}})
	}
	if filter.Category != "" {
		q = q.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Page != 0 && filter.Size != 0 {
		q = q.Limit(uint64(filter.Size)).Offset(uint64((filter.Page - 1) * filter.Size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return model.ListBooks{}, err
	}

	return model.ListBooks{
		Paging: model.Paging{
			Page:          filter.Page,
			PageSize:      filter.Size,
			TotalElements: len(books),
		},
		Items: books,
	}, nil
}

func (r *repository) ListCategories(ctx context.Context) ([]string, error) {
	q := `select distinct category from books where category is not null order by category`
	var categories []string
	if err := r.db.SelectContext(ctx, &categories, q); err != nil {
		return nil, err
	}
	return categories, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bibliotek/lending-service/internal/errs"
	"github.com/bibliotek/lending-service/internal/model"
)

// CreateBorrow decrements the copy count and records the borrow in one
// transaction. The conditional update keeps available_copies off zero's
// floor under concurrent borrows; the partial unique index on
// (user_id, book_id) rejects a second active borrow of the same book.
func (r *repository) CreateBorrow(ctx context.Context, userID, bookID int, borrowDate, dueDate time.Time) (model.Borrow, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Borrow{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx,
		`update books set available_copies = available_copies - 1 where id = $1 and available_copies > 0`, bookID)
	if err != nil {
		return model.Borrow{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return model.Borrow{}, err
	}
	if n == 0 {
		return model.Borrow{}, errs.ErrNotAvailable
	}

	const q = `
	insert into borrows (borrow_uid, user_id, book_id, borrow_date, due_date, status)
	values ($1, $2, $3, $4, $5, $6)
	returning id, borrow_uid, user_id, book_id, borrow_date, due_date, status`

	var borrow model.Borrow
	if err := tx.QueryRowxContext(ctx, q,
		uuid.New(), userID, bookID, borrowDate, dueDate, model.StatusBorrowed).StructScan(&borrow); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Borrow{}, errs.ErrAlreadyBorrowed
		}
		r.log.Error("CreateBorrow", zap.Int("userID", userID), zap.Int("bookID", bookID), zap.Error(err))
		return model.Borrow{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Borrow{}, fmt.Errorf("tx commit: %w", err)
	}
	return borrow, nil
}

// ReturnBorrow flips BORROWED to RETURNED and gives the copy back in one
// transaction. A borrow already returned matches no row and yields ErrConflict.
func (r *repository) ReturnBorrow(ctx context.Context, borrowID int, returnDate time.Time) (model.Borrow, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Borrow{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	const q = `
	update borrows set status = $3, return_date = $2
	where id = $1 and status = $4
	returning id, borrow_uid, user_id, book_id, borrow_date, due_date, return_date, status`

	var borrow model.Borrow
	if err := tx.QueryRowxContext(ctx, q,
		borrowID, returnDate, model.StatusReturned, model.StatusBorrowed).StructScan(&borrow); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Borrow{}, errs.ErrConflict
		}
		return model.Borrow{}, err
	}

	if _, err := tx.ExecContext(ctx,
		`update books set available_copies = available_copies + 1 where id = $1`, borrow.BookID); err != nil {
		return model.Borrow{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Borrow{}, fmt.Errorf("tx commit: %w", err)
	}
	return borrow, nil
}

func (r *repository) GetBorrow(ctx context.Context, borrowUid string) (model.Borrow, error) {
	const q = `
	select br.id, br.borrow_uid, br.user_id, br.book_id, b.book_uid, b.title, b.author,
	       br.borrow_date, br.due_date, br.return_date, br.status
	from borrows br
	join books b on b.id = br.book_id
	where br.borrow_uid = $1`

	var borrow model.Borrow
	if err := r.db.GetContext(ctx, &borrow, q, borrowUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Borrow{}, errs.ErrNotFound
		}
		return model.Borrow{}, err
	}
	return borrow, nil
}

func (r *repository) ListBorrows(ctx context.Context, userID int) ([]model.Borrow, error) {
	const q = `
	select br.id, br.borrow_uid, br.user_id, br.book_id, b.book_uid, b.title, b.author,
	       br.borrow_date, br.due_date, br.return_date, br.status
	from borrows br
	join books b on b.id = br.book_id
	where br.user_id = $1
	order by br.borrow_date desc, br.id desc`

	var borrows []model.Borrow
	if err := r.db.SelectContext(ctx, &borrows, q, userID); err != nil {
		return nil, err
	}
	return borrows, nil
}

func (r *repository) HasActiveBorrow(ctx context.Context, userID, bookID int) (bool, error) {
	const q = `select exists(select 1 from borrows where user_id = $1 and book_id = $2 and status = $3)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, userID, bookID, model.StatusBorrowed).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *repository) ActiveBorrowsForBook(ctx context.Context, bookID int) (int, error) {
	const q = `select count(*) from borrows where book_id = $1 and status = $2`
	var count int
	if err := r.db.QueryRowContext(ctx, q, bookID, model.StatusBorrowed).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

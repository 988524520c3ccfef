package repository

import (
	"context"
	"time"

	"github.com/bibliotek/lending-service/internal/model"
)

const topLimit = 5

func (r *repository) GetStats(ctx context.Context, now time.Time) (model.Stats, error) {
	const qCounts = `
	select (select count(*) from books)                                                   as total_books,
	       (select count(*) from users)                                                   as total_users,
	       (select count(*) from borrows where status = 'BORROWED')                       as active_borrows,
	       (select count(*) from borrows where status = 'BORROWED' and due_date < $1)     as overdue`

	var stats model.Stats
	if err := r.db.GetContext(ctx, &stats, qCounts, now); err != nil {
		return model.Stats{}, err
	}

	// ties break stable by id
	const qMostBorrowed = `
	select b.title, count(br.id) as count
	from books b
	join borrows br on br.book_id = b.id
	group by b.id, b.title
	order by count desc, b.id
	limit $1`

	stats.MostBorrowed = []model.BookCount{}
	if err := r.db.SelectContext(ctx, &stats.MostBorrowed, qMostBorrowed, topLimit); err != nil {
		return model.Stats{}, err
	}

	const qActiveUsers = `
	select u.username, count(br.id) as count
	from users u
	join borrows br on br.user_id = u.id
	group by u.id, u.username
	order by count desc, u.id
	limit $1`

	stats.ActiveUsers = []model.UserCount{}
	if err := r.db.SelectContext(ctx, &stats.ActiveUsers, qActiveUsers, topLimit); err != nil {
		return model.Stats{}, err
	}

	return stats, nil
}

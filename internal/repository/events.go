package repository

import (
	"context"

	"github.com/bibliotek/lending-service/internal/model"
	"github.com/bibliotek/lending-service/pkg/kafka"
)

func (r *repository) RecordEvent(ctx context.Context, ev kafka.BorrowEvent) error {
	q := `insert into borrow_events (timestamp, username, borrow_uid, book_uid, event_type)
	values (:timestamp, :username, :borrow_uid, :book_uid, :event_type)`
	args := map[string]interface{}{
		"timestamp":  ev.Timestamp,
		"username":   ev.Username,
		"borrow_uid": ev.BorrowUid,
		"book_uid":   ev.BookUid,
		"event_type": ev.EventType,
	}
	_, err := r.db.NamedExecContext(ctx, q, args)
	return err
}

func (r *repository) ListEvents(ctx context.Context, limit int) ([]model.BorrowEvent, error) {
	const q = `
	select id, timestamp, username, borrow_uid, book_uid, event_type
	from borrow_events
	order by timestamp desc, id desc
	limit $1`

	var events []model.BorrowEvent
	if err := r.db.SelectContext(ctx, &events, q, limit); err != nil {
		return nil, err
	}
	return events, nil
}

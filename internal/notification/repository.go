package notification

import (
	"context"
	"database/sql"
	"errors"
)

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListByUser(ctx context.Context, userID uint) ([]Notification, error)
	ListByOrder(ctx context.Context, userID, orderID uint) ([]Notification, error)
	LatestForOrder(ctx context.Context, userID, orderID uint) (*Notification, error)
	MarkRead(ctx context.Context, id uint) (Notification, error)
	Delete(ctx context.Context, id, userID uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n *Notification) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO notifications (user_id, order_id, message)
		 VALUES ($1, $2, $3)
		 RETURNING id, read, created_at`,
		n.UserID, n.OrderID, n.Message,
	).Scan(&n.ID, &n.Read, &n.CreatedAt)
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]Notification, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, order_id, message, read, created_at
		 FROM notifications
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collect(rows)
}

func (r *repository) ListByOrder(ctx context.Context, userID, orderID uint) ([]Notification, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, order_id, message, read, created_at
		 FROM notifications
		 WHERE user_id = $1 AND order_id = $2
		 ORDER BY created_at DESC`,
		userID, orderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collect(rows)
}

func (r *repository) LatestForOrder(ctx context.Context, userID, orderID uint) (*Notification, error) {
	var n Notification
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, order_id, message, read, created_at
		 FROM notifications
		 WHERE user_id = $1 AND order_id = $2
		 ORDER BY created_at DESC
		 LIMIT 1`,
		userID, orderID,
	).Scan(&n.ID, &n.UserID, &n.OrderID, &n.Message, &n.Read, &n.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *repository) MarkRead(ctx context.Context, id uint) (Notification, error) {
	var n Notification
	err := r.db.QueryRowContext(ctx,
		`UPDATE notifications SET read = TRUE WHERE id = $1
		 RETURNING id, user_id, order_id, message, read, created_at`,
		id,
	).Scan(&n.ID, &n.UserID, &n.OrderID, &n.Message, &n.Read, &n.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return Notification{}, ErrNotFound
	}
	return n, err
}

func (r *repository) Delete(ctx context.Context, id, userID uint) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM notifications WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func collect(rows *sql.Rows) ([]Notification, error) {
	notes := []Notification{}
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.OrderID, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"lumiere-studio/internal/booking"
	"lumiere-studio/internal/config"
)

type PostgresStore struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPostgresStore(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*PostgresStore, error) {
	const operation = "storage.NewPostgresStore"

	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
	)

	var db *sqlx.DB
	var err error

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = 2 * time.Minute
	retryPolicy.MaxInterval = 15 * time.Second

	logger.Info("Connecting to PostgreSQL...")

	err = backoff.RetryNotify(
		func() error {
			db, err = sqlx.ConnectContext(ctx, "postgres", connStr)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			if err = db.PingContext(ctx); err != nil {
				return fmt.Errorf("ping: %w", err)
			}
			return nil
		},
		retryPolicy,
		func(err error, duration time.Duration) {
			logger.Warn("PostgreSQL connection failed, retrying...",
				zap.Error(err),
				zap.Duration("next_attempt_in", duration))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect after retries: %w", operation, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	logger.Info("Successfully connected to PostgreSQL")
	return &PostgresStore{db: db, logger: logger}, nil
}

// DB exposes the underlying handle for migrations.
func (s *PostgresStore) DB() *sql.DB {
	return s.db.DB
}

func (s *PostgresStore) SaveBooking(ctx context.Context, b *booking.Booking) error {
	const query = `
        INSERT INTO bookings (
            id, customer_name, phone, region, car_model,
            visit_date, visit_time, method, txid,
            base_price, deposit, usdt_rate, usdt_amount,
            status, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
    `

	_, err := s.db.ExecContext(ctx, query,
		b.ID,
		b.CustomerName,
		b.Phone,
		b.Region,
		b.CarModel,
		b.VisitDate,
		b.VisitTime,
		b.Method,
		b.TxID,
		b.BasePrice,
		b.Deposit,
		b.USDTRate,
		b.USDTAmount,
		b.Status,
		b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetBooking(ctx context.Context, id string) (*booking.Booking, error) {
	const query = `
        SELECT id, customer_name, phone, region, car_model,
               visit_date, visit_time, method, txid,
               base_price, deposit, usdt_rate, usdt_amount,
               status, created_at
        FROM bookings
        WHERE id = $1
    `

	var b booking.Booking
	if err := s.db.GetContext(ctx, &b, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &b, nil
}

func (s *PostgresStore) ListBookings(ctx context.Context, limit int) ([]booking.Booking, error) {
	const query = `
        SELECT id, customer_name, phone, region, car_model,
               visit_date, visit_time, method, txid,
               base_price, deposit, usdt_rate, usdt_amount,
               status, created_at
        FROM bookings
        ORDER BY created_at DESC
        LIMIT $1
    `

	var bookings []booking.Booking
	if err := s.db.SelectContext(ctx, &bookings, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (s *PostgresStore) UpdateStatus(ctx context.Context, id string, status booking.Status) error {
	const query = `UPDATE bookings SET status = $2 WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

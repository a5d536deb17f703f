package sink

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"orderbot/pkg/config"
)

// PostgresSink appends submissions as rows of the orders table.
type PostgresSink struct {
	db *sql.DB
}

// NewPostgresFactory opens the connection pool lazily on first use and
// pings it on every call, so an outage that begins after startup still
// surfaces as a per-submission failure.
func NewPostgresFactory(cfg config.DatabaseConfig) Factory {
	var (
		once    sync.Once
		db      *sql.DB
		openErr error
	)

	return func(ctx context.Context) (RowSink, error) {
		once.Do(func() {
			db, openErr = openDB(cfg)
		})
		if openErr != nil {
			return nil, openErr
		}

		if err := db.PingContext(ctx); err != nil {
			return nil, fmt.Errorf("postgres: database unreachable: %w", err)
		}

		return &PostgresSink{db: db}, nil
	}
}

func openDB(cfg config.DatabaseConfig) (*sql.DB, error) {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "require"
	}

	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, sslMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to open connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logrus.Errorf("Error closing database connection: %v", closeErr)
		}
		return nil, fmt.Errorf("postgres: failed to connect: %w", err)
	}

	if err := createTableIfNotExists(db); err != nil {
		return nil, err
	}

	logrus.Info("Successfully connected to the database")
	return db, nil
}

// createTableIfNotExists creates the 'orders' table if it doesn't already exist.
func createTableIfNotExists(db *sql.DB) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		submitted_at TEXT,
		name TEXT,
		niche TEXT,
		task TEXT,
		user_id TEXT,
		username TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("postgres: failed to create orders table: %w", err)
	}
	return nil
}

// AppendRow inserts one submission row. The row carries the six fields
// in their fixed order: timestamp, name, niche, task, user_id, username.
func (s *PostgresSink) AppendRow(ctx context.Context, row []string) error {
	if len(row) != 6 {
		return fmt.Errorf("postgres: expected 6 columns, got %d", len(row))
	}

	insertSQL := `
        INSERT INTO orders (submitted_at, name, niche, task, user_id, username)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id;
        `
	var insertedID int64

	err := s.db.QueryRowContext(ctx, insertSQL,
		row[0], row[1], row[2], row[3], row[4], row[5],
	).Scan(&insertedID)
	if err != nil {
		return fmt.Errorf("postgres: insert failed: %w", err)
	}

	logrus.Infof("Inserted order with ID: %d", insertedID)
	return nil
}

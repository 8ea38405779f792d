package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meatfest/lead-service/internal/domain"
)

// Schema for the submissions table. Every field is stored as text, matching
// the flat string record the endpoint produces (empty string for unset
// optionals). Rows are insert-only.
const Schema = `
CREATE TABLE IF NOT EXISTS %s (
	id             text PRIMARY KEY,
	created_at     text NOT NULL,
	kind           text NOT NULL,
	name           text NOT NULL,
	email          text NOT NULL,
	phone          text NOT NULL DEFAULT '',
	event_date     text NOT NULL DEFAULT '',
	event_location text NOT NULL DEFAULT '',
	event_type     text NOT NULL DEFAULT '',
	headcount      text NOT NULL DEFAULT '',
	message        text NOT NULL DEFAULT ''
)`

type Repository struct {
	pool  *pgxpool.Pool
	table string
}

func New(pool *pgxpool.Pool, table string) *Repository {
	if table == "" {
		table = "submissions"
	}
	return &Repository{pool: pool, table: table}
}

// Save assigns a fresh id and UTC timestamp, then inserts exactly one row.
// Submitting the same payload twice creates two distinct rows: there is no
// deduplication here.
func (r *Repository) Save(ctx context.Context, sub *domain.Submission) error {
	sub.ID = uuid.NewString()
	sub.CreatedAt = time.Now().UTC()

	sql := fmt.Sprintf(`
		INSERT INTO %s (id, created_at, kind, name, email, phone, event_date, event_location, event_type, headcount, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, pgx.Identifier{r.table}.Sanitize())

	_, err := r.pool.Exec(ctx, sql,
		sub.ID,
		sub.CreatedAt.Format(time.RFC3339),
		string(sub.Kind),
		sub.Name,
		sub.Email,
		sub.Phone,
		sub.EventDate,
		sub.EventLocation,
		sub.EventType,
		sub.Headcount,
		sub.Message,
	)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

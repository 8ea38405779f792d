//go:build integration
// +build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meatfest/lead-service/internal/domain"
	"github.com/meatfest/lead-service/internal/infrastructure/postgres"
)

func setupRepo(t *testing.T) (*postgres.Repository, *pgxpool.Pool) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("Skipping integration test: TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)

	_, err = pool.Exec(context.Background(), fmt.Sprintf(postgres.Schema, "submissions"))
	require.NoError(t, err)
	_, err = pool.Exec(context.Background(), "TRUNCATE TABLE submissions")
	require.NoError(t, err)

	return postgres.New(pool, "submissions"), pool
}

func TestSave_InsertsOneRow(t *testing.T) {
	repo, pool := setupRepo(t)
	ctx := context.Background()

	before := time.Now().UTC()
	sub := &domain.Submission{
		Kind:    domain.KindRequest,
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "need catering for 50",
	}
	require.NoError(t, repo.Save(ctx, sub))

	assert.NotEmpty(t, sub.ID)
	assert.False(t, sub.CreatedAt.Before(before.Truncate(time.Second)))

	var kind, name, email, phone, created string
	err := pool.QueryRow(ctx,
		"SELECT kind, name, email, phone, created_at FROM submissions WHERE id = $1", sub.ID,
	).Scan(&kind, &name, &email, &phone, &created)
	require.NoError(t, err)
	assert.Equal(t, "request", kind)
	assert.Equal(t, "Jane Doe", name)
	assert.Equal(t, "jane@example.com", email)
	assert.Equal(t, "", phone)

	parsed, err := time.Parse(time.RFC3339, created)
	require.NoError(t, err)
	assert.WithinDuration(t, sub.CreatedAt, parsed, time.Second)
}

func TestSave_NoDeduplication(t *testing.T) {
	repo, pool := setupRepo(t)
	ctx := context.Background()

	sub1 := &domain.Submission{Kind: domain.KindContact, Name: "Jane", Email: "jane@example.com"}
	sub2 := &domain.Submission{Kind: domain.KindContact, Name: "Jane", Email: "jane@example.com"}
	require.NoError(t, repo.Save(ctx, sub1))
	require.NoError(t, repo.Save(ctx, sub2))
	assert.NotEqual(t, sub1.ID, sub2.ID)

	var count int
	require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM submissions").Scan(&count))
	assert.Equal(t, 2, count)
}

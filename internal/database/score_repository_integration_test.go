package database

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/chatkarma/chatkarma/internal/domain"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	// Skip container setup if running in short mode
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start postgres container: %v\n", err)
		os.Exit(1)
	}

	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to terminate postgres container: %v\n", err)
		}
	}()

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get connection string: %v\n", err)
		os.Exit(1)
	}

	testPool, err = Connect(ctx, connStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to test database: %v\n", err)
		os.Exit(1)
	}
	defer testPool.Close()

	os.Exit(m.Run())
}

// setupRepo returns a fresh repository and registers cleanup to drop the
// lazily created schema so every test exercises the bootstrap path.
func setupRepo(t *testing.T) *ScoreRepo {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	t.Helper()

	t.Cleanup(func() {
		_, err := testPool.Exec(context.Background(), "DROP TABLE IF EXISTS scores")
		require.NoError(t, err)
	})

	return NewScoreRepo(testPool)
}

func TestScoreRepo_CreatesSchemaOnFirstUse(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	var exists bool
	err := testPool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'scores')").Scan(&exists)
	require.NoError(t, err)
	require.False(t, exists)

	total, err := repo.ApplyDelta(ctx, "something", domain.Plus)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	err = testPool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'scores')").Scan(&exists)
	require.NoError(t, err)
	assert.True(t, exists)

	// second call must not trip over the existing schema
	total, err = repo.ApplyDelta(ctx, "something", domain.Plus)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestScoreRepo_CaseInsensitiveMerge(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.ApplyDelta(ctx, "Coffee", domain.Plus)
	require.NoError(t, err)
	total, err := repo.ApplyDelta(ctx, "coffee", domain.Plus)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	records, err := repo.TopScores(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Coffee", records[0].Item)
	assert.Equal(t, 2, records[0].Score)
}

func TestScoreRepo_MinusCreatesNegativeRecord(t *testing.T) {
	repo := setupRepo(t)

	total, err := repo.ApplyDelta(context.Background(), "mondays", domain.Minus)
	require.NoError(t, err)
	assert.Equal(t, -1, total)
}

func TestScoreRepo_TopScoresOrdering(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	for range 3 {
		_, err := repo.ApplyDelta(ctx, "alice", domain.Plus)
		require.NoError(t, err)
	}
	for range 2 {
		_, err := repo.ApplyDelta(ctx, "bob", domain.Plus)
		require.NoError(t, err)
	}
	for range 2 {
		_, err := repo.ApplyDelta(ctx, "carol", domain.Plus)
		require.NoError(t, err)
	}

	records, err := repo.TopScores(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, domain.ScoreRecord{Item: "alice", Score: 3}, records[0])
	assert.Equal(t, domain.ScoreRecord{Item: "bob", Score: 2}, records[1])
	assert.Equal(t, domain.ScoreRecord{Item: "carol", Score: 2}, records[2])
}

func TestScoreRepo_TopScoresLimit(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	for _, item := range []string{"a", "b", "c"} {
		_, err := repo.ApplyDelta(ctx, item, domain.Plus)
		require.NoError(t, err)
	}

	records, err := repo.TopScores(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestScoreRepo_ConcurrentDeltasNoLostUpdates(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	const workers = 8
	const perWorker = 5

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			op := domain.Plus
			if w%2 == 1 {
				op = domain.Minus
			}
			for range perWorker {
				_, err := repo.ApplyDelta(ctx, "contested", op)
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()

	// equal numbers of plus and minus workers cancel out
	records, err := repo.TopScores(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 0, records[0].Score)
}

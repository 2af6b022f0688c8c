//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both the pool and a pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BackdateCodes moves every code of the meetup into the past, as if it had been issued
// age ago. Used to drive expiry without waiting on the clock.
func BackdateCodes(t *testing.T, db DBLike, meetupID uuid.UUID, age time.Duration) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		UPDATE verification_codes
		SET created_at = created_at - $2::interval,
		    expires_at = expires_at - $2::interval
		WHERE meetup_id = $1`,
		meetupID, fmt.Sprintf("%d seconds", int64(age.Seconds())))
	require.NoError(t, err)
}

func MeetupStatus(t *testing.T, db DBLike, meetupID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM meetups WHERE id = $1", meetupID).Scan(&status)
	require.NoError(t, err)
	return status
}

func FailedAttempts(t *testing.T, db DBLike, meetupID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT failed_attempts FROM meetups WHERE id = $1", meetupID).Scan(&n)
	require.NoError(t, err)
	return n
}

// CaptureRequest returns the outbox status and attempt count, or ok=false when the
// transaction was never enqueued.
func CaptureRequest(t *testing.T, db DBLike, transactionID uuid.UUID) (status string, attempts int, ok bool) {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM capture_requests WHERE transaction_id = $1", transactionID).Scan(&n)
	require.NoError(t, err)
	if n == 0 {
		return "", 0, false
	}

	err = db.QueryRow(context.Background(),
		"SELECT status, attempts FROM capture_requests WHERE transaction_id = $1", transactionID).Scan(&status, &attempts)
	require.NoError(t, err)
	return status, attempts, true
}

func ConsumedCodes(t *testing.T, db DBLike, meetupID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM verification_codes WHERE meetup_id = $1 AND consumed_at IS NOT NULL", meetupID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every application table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}

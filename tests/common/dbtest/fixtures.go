//go:build unit || integration

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestAccount(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	accountID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO accounts (id, email, name, role) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		accountID, email, strings.Split(email, "@")[0], role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM accounts WHERE email = $1", email).Scan(&accountID))
	}

	return accountID
}

func CreateTestResource(t *testing.T, db DBLike, name string, capacity int) uuid.UUID {
	t.Helper()

	resourceID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO resources (id, name, capacity) VALUES ($1, $2, $3)", resourceID, name, capacity)
	require.NoError(t, err)
	return resourceID
}

// CreateTestBooking inserts a booking directly and associates requester with it
// when requester is not uuid.Nil.
func CreateTestBooking(t *testing.T, db DBLike, resourceID, requester uuid.UUID, start, end civil.Date, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO bookings (id, resource_id, full_name, telephone, email, start_date, end_date, price, status)
		VALUES ($1, $2, 'Fixture Person', '0770000000', 'fixture@example.com', $3::date, $4::date, 1000.00, $5)`,
		bookingID, resourceID, start.String(), end.String(), status)
	require.NoError(t, err)

	if requester != uuid.Nil {
		_, err = db.Exec(ctx, "INSERT INTO booking_associations (booking_id, account_id) VALUES ($1, $2)", bookingID, requester)
		require.NoError(t, err)
	}
	return bookingID
}

func CountRows(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table in the public schema.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
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
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}

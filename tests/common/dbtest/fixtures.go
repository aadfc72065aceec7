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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestRatePlan(t *testing.T, db DBLike, professionalID uuid.UUID, baseRate string) uuid.UUID {
	t.Helper()

	planID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO rate_plans (id, professional_id, name, animal_type, base_rate,
		                        additional_pet_rate, holiday_rate, applies_after_pets, granularity)
		VALUES ($1, $2, 'Dog Walking', 'DOG', $3::numeric, 5.00, 30.00, 1, '1_HOUR')`,
		planID, professionalID, baseRate)
	require.NoError(t, err)

	return planID
}

func CreateTestBooking(t *testing.T, db DBLike, clientID, professionalID, ratePlanID uuid.UUID, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO bookings (id, client_id, professional_id, rate_plan_id, status)
		VALUES ($1, $2, $3, $4, $5)`,
		bookingID, clientID, professionalID, ratePlanID, status)
	require.NoError(t, err)

	return bookingID
}

func CreateTestPet(t *testing.T, db DBLike, clientID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	petID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO pets (id, client_id, name, species, breed)
		VALUES ($1, $2, $3, 'Dog', 'Shiba Inu')`,
		petID, clientID, name)
	require.NoError(t, err)

	return petID
}

func AttachBookingPet(t *testing.T, db DBLike, bookingID, petID uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO booking_pets (booking_id, pet_id) VALUES ($1, $2)
		ON CONFLICT (booking_id, pet_id) DO NOTHING`,
		bookingID, petID)
	require.NoError(t, err)
}

func CreateTestOccurrence(t *testing.T, db DBLike, bookingID uuid.UUID, start, end time.Time, status string) uuid.UUID {
	t.Helper()

	occID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO occurrences (id, booking_id, start_at, end_at, status,
		                         granularity, created_by, last_modified_by)
		VALUES ($1, $2, $3, $4, $5, '1_HOUR', 'CLIENT', 'CLIENT')`,
		occID, bookingID, start, end, status)
	require.NoError(t, err)

	return occID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}

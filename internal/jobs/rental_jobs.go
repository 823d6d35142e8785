package jobs

import (
	"context"
	"math"
	"time"

	"movierental-backend/internal/logger"
)

// ReportOverdueRentals logs every open rental that has been out longer than
// the configured overdue threshold, with the fee it has accrued so far.
func (jr *JobRunner) ReportOverdueRentals() {
	jr.runWithRecovery("ReportOverdueRentals", func() {
		ctx := context.Background()
		now := jr.clock.Now()
		cutoff := now.AddDate(0, 0, -jr.config.Scheduler.OverdueAfterDays)

		query := `
			SELECT id, customer_id, customer_name, movie_title, movie_daily_rental_rate, date_out
			FROM rentals
			WHERE date_returned IS NULL
			  AND date_out < $1
			ORDER BY date_out
		`

		rows, err := jr.db.QueryContext(ctx, query, cutoff)
		if err != nil {
			logger.Error("Failed to query overdue rentals", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				id         int32
				customerID int32
				customer   string
				title      string
				rate       float64
				dateOut    time.Time
			)
			if err := rows.Scan(&id, &customerID, &customer, &title, &rate, &dateOut); err != nil {
				logger.Error("Failed to scan overdue rental", "error", err)
				continue
			}
			count++

			days := math.Floor(now.Sub(dateOut).Hours() / 24)
			logger.Warn("Rental overdue",
				"rental_id", id,
				"customer_id", customerID,
				"customer", customer,
				"movie", title,
				"days_out", int(days),
				"accrued_fee", days*rate)
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue rentals", "error", err)
			return
		}

		logger.Info("Overdue rental report finished", "overdue_count", count)
	})
}

// ReportDailyActivity logs how many checkouts and returns happened in the
// last 24 hours, as a cheap health signal for the rental desk.
func (jr *JobRunner) ReportDailyActivity() {
	jr.runWithRecovery("ReportDailyActivity", func() {
		ctx := context.Background()
		since := jr.clock.Now().Add(-24 * time.Hour)

		query := `
			SELECT
				(SELECT COUNT(*) FROM rentals WHERE date_out >= $1),
				(SELECT COUNT(*) FROM rentals WHERE date_returned >= $1)
		`

		var checkouts, returns int64
		if err := jr.db.QueryRowContext(ctx, query, since).Scan(&checkouts, &returns); err != nil {
			logger.Error("Failed to query daily activity", "error", err)
			return
		}

		logger.Info("Daily rental activity",
			"since", since.Format(time.RFC3339),
			"checkouts", checkouts,
			"returns", returns)
	})
}

package database

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
)

// GetSubscriptions returns all subscriptions for one school, newest first.
func GetSubscriptions(db *sql.DB, schoolID string) ([]models.Subscription, error) {
	query := `SELECT s.id, s.school_id, s.plan, COALESCE(s.price, 0), s.status,
	                 s.started_at, s.expires_at, s.created_at
	          FROM subscriptions s
	          WHERE s.school_id = $1
	          ORDER BY s.created_at DESC`

	rows, err := db.Query(query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []models.Subscription
	for rows.Next() {
		var s models.Subscription
		var status string
		err := rows.Scan(&s.ID, &s.SchoolID, &s.Plan, &s.Price, &status,
			&s.StartedAt, &s.ExpiresAt, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		s.Status = models.SubscriptionStatus(status)
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

// CreateSubscription inserts a pending subscription.
func CreateSubscription(db *sql.DB, s *models.Subscription) error {
	query := `INSERT INTO subscriptions (school_id, plan, price, status, expires_at)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at`
	err := db.QueryRow(query, s.SchoolID, s.Plan, s.Price, string(s.Status), s.ExpiresAt).
		Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert subscription: %w", err)
	}
	return nil
}

// TransitionSubscription moves a subscription to a new status after
// validating the transition table. Activation stamps started_at.
func TransitionSubscription(db *sql.DB, schoolID, subscriptionID string, to models.SubscriptionStatus) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var current string
	err = tx.QueryRow(
		`SELECT status FROM subscriptions WHERE id = $1 AND school_id = $2 FOR UPDATE`,
		subscriptionID, schoolID,
	).Scan(&current)
	if err != nil {
		return err
	}

	from := models.SubscriptionStatus(current)
	if !models.CanTransitionSubscription(from, to) {
		return &models.InvalidTransitionError{Entity: "subscription", From: string(from), To: string(to)}
	}

	if to == models.SubscriptionActive {
		_, err = tx.Exec(`UPDATE subscriptions SET status = $1, started_at = NOW() WHERE id = $2`, string(to), subscriptionID)
	} else {
		_, err = tx.Exec(`UPDATE subscriptions SET status = $1 WHERE id = $2`, string(to), subscriptionID)
	}
	if err != nil {
		return fmt.Errorf("failed to update subscription status: %w", err)
	}

	return tx.Commit()
}

// ExpireDueSubscriptions moves every active subscription past its expiry
// date to expired. Used by the background sweep.
func ExpireDueSubscriptions(db *sql.DB) (int64, error) {
	result, err := db.Exec(
		`UPDATE subscriptions SET status = $1
		 WHERE status = $2 AND expires_at IS NOT NULL AND expires_at < NOW()`,
		string(models.SubscriptionExpired), string(models.SubscriptionActive),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to expire subscriptions: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Printf("Expired %d subscription(s)", n)
	}
	return n, nil
}

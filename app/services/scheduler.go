package services

import (
	"database/sql"
	"log"
	"time"
)

// StartScheduler starts the background task scheduler. The only recurring
// job is the subscription expiry sweep; invoice overdue is a read-time
// predicate and is deliberately never swept into a stored status.
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger once a day at 01:00
			if now.Hour() == 1 && now.Minute() == 0 {
				log.Println("Running scheduled tasks [01:00]...")

				if _, err := ExpireSubscriptions(db); err != nil {
					log.Printf("Error expiring subscriptions: %v", err)
				}
			}
		}
	}()
}

package services

import (
	"database/sql"

	"github.com/DigiPoint-niger/scolatek-sub000/app/database"
)

// ExpireSubscriptions runs the platform-wide expiry sweep and returns the
// number of subscriptions moved to expired.
func ExpireSubscriptions(db *sql.DB) (int64, error) {
	return database.ExpireDueSubscriptions(db)
}

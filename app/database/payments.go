package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
)

// PaymentFilter narrows a payment listing. Zero values mean "no filter".
type PaymentFilter struct {
	StudentID string
	Status    models.PaymentStatus
	Type      models.PaymentType
	Since     *time.Time
}

// GetPayments returns payments for one school, newest first.
func GetPayments(db *sql.DB, schoolID string, filter PaymentFilter) ([]models.Payment, error) {
	query := `SELECT p.id, p.school_id, p.student_id, COALESCE(p.amount, 0), p.status, p.type,
	                 COALESCE(p.method, ''), p.transaction_ref, p.created_at, p.paid_at
	          FROM payments p
	          WHERE p.school_id = $1 AND p.deleted_at IS NULL`

	args := []interface{}{schoolID}
	argIndex := 2

	if filter.StudentID != "" {
		query += fmt.Sprintf(" AND p.student_id = $%d", argIndex)
		args = append(args, filter.StudentID)
		argIndex++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND p.status = $%d", argIndex)
		args = append(args, string(filter.Status))
		argIndex++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND p.type = $%d", argIndex)
		args = append(args, string(filter.Type))
		argIndex++
	}
	if filter.Since != nil {
		query += fmt.Sprintf(" AND COALESCE(p.paid_at, p.created_at) >= $%d", argIndex)
		args = append(args, *filter.Since)
		argIndex++
	}

	query += " ORDER BY p.created_at DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		var status, pType string
		err := rows.Scan(&p.ID, &p.SchoolID, &p.StudentID, &p.Amount, &status, &pType,
			&p.Method, &p.TransactionRef, &p.CreatedAt, &p.PaidAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		p.Status = models.PaymentStatus(status)
		p.Type = models.PaymentType(pType)
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// GetPaymentByID returns one payment, scoped to the school.
func GetPaymentByID(db *sql.DB, schoolID, paymentID string) (*models.Payment, error) {
	query := `SELECT p.id, p.school_id, p.student_id, COALESCE(p.amount, 0), p.status, p.type,
	                 COALESCE(p.method, ''), p.transaction_ref, p.created_at, p.paid_at
	          FROM payments p
	          WHERE p.id = $1 AND p.school_id = $2 AND p.deleted_at IS NULL`

	var p models.Payment
	var status, pType string
	err := db.QueryRow(query, paymentID, schoolID).Scan(
		&p.ID, &p.SchoolID, &p.StudentID, &p.Amount, &status, &pType,
		&p.Method, &p.TransactionRef, &p.CreatedAt, &p.PaidAt,
	)
	if err != nil {
		return nil, err
	}
	p.Status = models.PaymentStatus(status)
	p.Type = models.PaymentType(pType)
	return &p, nil
}

// CreatePayment inserts a pending payment.
func CreatePayment(db *sql.DB, p *models.Payment) error {
	p.ID = uuid.New().String()
	query := `INSERT INTO payments (id, school_id, student_id, amount, status, type, method, transaction_ref)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING created_at`
	err := db.QueryRow(query,
		p.ID, p.SchoolID, p.StudentID, p.Amount, string(p.Status), string(p.Type), p.Method, p.TransactionRef,
	).Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

// TransitionPayment moves a payment to a new status after validating the
// transition table. Moving to paid sets paid_at; leaving paid is impossible
// so paid_at is otherwise cleared only on the failed -> pending retry path.
func TransitionPayment(db *sql.DB, schoolID, paymentID string, to models.PaymentStatus) (*models.Payment, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var current string
	err = tx.QueryRow(
		`SELECT status FROM payments WHERE id = $1 AND school_id = $2 AND deleted_at IS NULL FOR UPDATE`,
		paymentID, schoolID,
	).Scan(&current)
	if err != nil {
		return nil, err
	}

	from := models.PaymentStatus(current)
	if !models.CanTransitionPayment(from, to) {
		return nil, &models.InvalidTransitionError{Entity: "payment", From: string(from), To: string(to)}
	}

	// paid_at is set exactly when the payment reaches paid
	if to == models.PaymentPaid {
		_, err = tx.Exec(`UPDATE payments SET status = $1, paid_at = NOW() WHERE id = $2`, string(to), paymentID)
	} else {
		_, err = tx.Exec(`UPDATE payments SET status = $1, paid_at = NULL WHERE id = $2`, string(to), paymentID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit payment transition: %w", err)
	}
	return GetPaymentByID(db, schoolID, paymentID)
}

package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
)

// ErrPaymentNotPaid is returned when a receipt is requested for a payment
// that has not reached the paid state.
var ErrPaymentNotPaid = errors.New("payment is not paid")

// ErrReceiptExists is returned when the payment already has a receipt.
var ErrReceiptExists = errors.New("payment already has a receipt")

// GetReceipts returns receipts for one school, newest number first.
func GetReceipts(db *sql.DB, schoolID string) ([]models.Receipt, error) {
	query := `SELECT r.id, r.school_id, r.receipt_number, r.payment_id,
	                 COALESCE(r.amount, 0), r.paid_at, r.created_at
	          FROM receipts r
	          WHERE r.school_id = $1
	          ORDER BY r.receipt_number DESC`

	rows, err := db.Query(query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch receipts: %w", err)
	}
	defer rows.Close()

	var receipts []models.Receipt
	for rows.Next() {
		var r models.Receipt
		err := rows.Scan(&r.ID, &r.SchoolID, &r.ReceiptNumber, &r.PaymentID,
			&r.Amount, &r.PaidAt, &r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan receipt: %w", err)
		}
		receipts = append(receipts, r)
	}
	return receipts, rows.Err()
}

// CreateReceiptForPayment issues the next sequential receipt for a paid
// payment. The payment row and the per-school counter are locked in one
// transaction so numbers stay gapless and unique, and a payment can never
// end up with two receipts.
func CreateReceiptForPayment(db *sql.DB, schoolID, paymentID string) (*models.Receipt, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var amount int64
	var status string
	var paidAt sql.NullTime
	err = tx.QueryRow(
		`SELECT COALESCE(amount, 0), status, paid_at
		 FROM payments
		 WHERE id = $1 AND school_id = $2 AND deleted_at IS NULL
		 FOR UPDATE`,
		paymentID, schoolID,
	).Scan(&amount, &status, &paidAt)
	if err != nil {
		return nil, err
	}

	if models.PaymentStatus(status) != models.PaymentPaid || !paidAt.Valid {
		return nil, ErrPaymentNotPaid
	}

	var existing int
	err = tx.QueryRow(`SELECT COUNT(*) FROM receipts WHERE payment_id = $1`, paymentID).Scan(&existing)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing receipt: %w", err)
	}
	if existing > 0 {
		return nil, ErrReceiptExists
	}

	var number int64
	err = tx.QueryRow(
		`UPDATE receipt_counters SET last_number = last_number + 1
		 WHERE school_id = $1
		 RETURNING last_number`,
		schoolID,
	).Scan(&number)
	if err == sql.ErrNoRows {
		err = tx.QueryRow(
			`INSERT INTO receipt_counters (school_id, last_number) VALUES ($1, 1) RETURNING last_number`,
			schoolID,
		).Scan(&number)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to advance receipt counter: %w", err)
	}

	receipt := &models.Receipt{
		ID:            uuid.New().String(),
		SchoolID:      schoolID,
		ReceiptNumber: number,
		PaymentID:     paymentID,
		Amount:        amount,
		PaidAt:        paidAt.Time,
	}
	err = tx.QueryRow(
		`INSERT INTO receipts (id, school_id, receipt_number, payment_id, amount, paid_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		receipt.ID, schoolID, number, paymentID, amount, paidAt.Time,
	).Scan(&receipt.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert receipt: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit receipt: %w", err)
	}
	return receipt, nil
}

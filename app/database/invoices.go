package database

import (
	"database/sql"
	"fmt"

	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
)

// InvoiceFilter narrows an invoice listing. Zero values mean "no filter".
type InvoiceFilter struct {
	StudentID string
	Status    models.InvoiceStatus
}

// GetInvoices returns invoices for one school, newest first.
func GetInvoices(db *sql.DB, schoolID string, filter InvoiceFilter) ([]models.Invoice, error) {
	query := `SELECT i.id, i.school_id, i.student_id, COALESCE(i.amount, 0), i.status,
	                 i.due_date, i.created_at, i.sent_at, i.paid_at
	          FROM invoices i
	          WHERE i.school_id = $1 AND i.deleted_at IS NULL`

	args := []interface{}{schoolID}
	argIndex := 2

	if filter.StudentID != "" {
		query += fmt.Sprintf(" AND i.student_id = $%d", argIndex)
		args = append(args, filter.StudentID)
		argIndex++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND i.status = $%d", argIndex)
		args = append(args, string(filter.Status))
		argIndex++
	}

	query += " ORDER BY i.created_at DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoices: %w", err)
	}
	defer rows.Close()

	var invoices []models.Invoice
	for rows.Next() {
		var inv models.Invoice
		var status string
		err := rows.Scan(&inv.ID, &inv.SchoolID, &inv.StudentID, &inv.Amount, &status,
			&inv.DueDate, &inv.CreatedAt, &inv.SentAt, &inv.PaidAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		inv.Status = models.InvoiceStatus(status)
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

// GetInvoiceByID returns one invoice, scoped to the school.
func GetInvoiceByID(db *sql.DB, schoolID, invoiceID string) (*models.Invoice, error) {
	query := `SELECT i.id, i.school_id, i.student_id, COALESCE(i.amount, 0), i.status,
	                 i.due_date, i.created_at, i.sent_at, i.paid_at
	          FROM invoices i
	          WHERE i.id = $1 AND i.school_id = $2 AND i.deleted_at IS NULL`

	var inv models.Invoice
	var status string
	err := db.QueryRow(query, invoiceID, schoolID).Scan(
		&inv.ID, &inv.SchoolID, &inv.StudentID, &inv.Amount, &status,
		&inv.DueDate, &inv.CreatedAt, &inv.SentAt, &inv.PaidAt,
	)
	if err != nil {
		return nil, err
	}
	inv.Status = models.InvoiceStatus(status)
	return &inv, nil
}

// CreateInvoice inserts a draft invoice.
func CreateInvoice(db *sql.DB, inv *models.Invoice) error {
	query := `INSERT INTO invoices (school_id, student_id, amount, status, due_date)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at`
	err := db.QueryRow(query,
		inv.SchoolID, inv.StudentID, inv.Amount, string(inv.Status), inv.DueDate,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert invoice: %w", err)
	}
	return nil
}

// TransitionInvoice moves an invoice to a new status after validating the
// transition table, stamping sent_at/paid_at on the matching transitions.
func TransitionInvoice(db *sql.DB, schoolID, invoiceID string, to models.InvoiceStatus) (*models.Invoice, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var current string
	err = tx.QueryRow(
		`SELECT status FROM invoices WHERE id = $1 AND school_id = $2 AND deleted_at IS NULL FOR UPDATE`,
		invoiceID, schoolID,
	).Scan(&current)
	if err != nil {
		return nil, err
	}

	from := models.InvoiceStatus(current)
	if !models.CanTransitionInvoice(from, to) {
		return nil, &models.InvalidTransitionError{Entity: "invoice", From: string(from), To: string(to)}
	}

	switch to {
	case models.InvoiceSent:
		_, err = tx.Exec(`UPDATE invoices SET status = $1, sent_at = NOW() WHERE id = $2`, string(to), invoiceID)
	case models.InvoicePaid:
		_, err = tx.Exec(`UPDATE invoices SET status = $1, paid_at = NOW() WHERE id = $2`, string(to), invoiceID)
	default:
		_, err = tx.Exec(`UPDATE invoices SET status = $1 WHERE id = $2`, string(to), invoiceID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update invoice status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit invoice transition: %w", err)
	}
	return GetInvoiceByID(db, schoolID, invoiceID)
}

package database

import (
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
)

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// GetUserByEmail returns an active user by email, roles included.
func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	query := `SELECT u.id, u.school_id, u.email, u.password, u.first_name, u.last_name,
	                 COALESCE(u.phone, ''), u.is_active, u.created_at, u.updated_at
	          FROM users u
	          WHERE u.email = $1 AND u.is_active = true AND u.deleted_at IS NULL`

	var u models.User
	err := db.QueryRow(query, email).Scan(
		&u.ID, &u.SchoolID, &u.Email, &u.Password, &u.FirstName, &u.LastName,
		&u.Phone, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	roles, err := GetUserRoles(db, u.ID)
	if err != nil {
		return nil, err
	}
	u.Roles = roles
	return &u, nil
}

// GetUserByID returns an active user by id, roles included.
func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	query := `SELECT u.id, u.school_id, u.email, u.password, u.first_name, u.last_name,
	                 COALESCE(u.phone, ''), u.is_active, u.created_at, u.updated_at
	          FROM users u
	          WHERE u.id = $1 AND u.is_active = true AND u.deleted_at IS NULL`

	var u models.User
	err := db.QueryRow(query, userID).Scan(
		&u.ID, &u.SchoolID, &u.Email, &u.Password, &u.FirstName, &u.LastName,
		&u.Phone, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	roles, err := GetUserRoles(db, u.ID)
	if err != nil {
		return nil, err
	}
	u.Roles = roles
	return &u, nil
}

// GetUserRoles returns the roles attached to a user.
func GetUserRoles(db *sql.DB, userID string) ([]*models.Role, error) {
	query := `SELECT r.id, r.name, COALESCE(r.description, ''), r.created_at
	          FROM roles r
	          JOIN user_roles ur ON r.id = ur.role_id
	          WHERE ur.user_id = $1
	          ORDER BY r.name`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user roles: %w", err)
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		r := &models.Role{}
		if err := rows.Scan(&r.ID, &r.Name, &r.Description, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, r)
	}
	return roles, rows.Err()
}

// CreateUser inserts a user with a hashed password and assigns the named role.
func CreateUser(db *sql.DB, user *models.User, roleName string) error {
	hashed, err := hashPassword(user.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO users (school_id, email, password, first_name, last_name, phone, is_active)
	          VALUES ($1, $2, $3, $4, $5, $6, true)
	          RETURNING id, created_at, updated_at`
	err = tx.QueryRow(query,
		user.SchoolID, user.Email, hashed, user.FirstName, user.LastName, user.Phone,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	var roleID string
	err = tx.QueryRow(`SELECT id FROM roles WHERE name = $1`, roleName).Scan(&roleID)
	if err == sql.ErrNoRows {
		err = tx.QueryRow(`INSERT INTO roles (name) VALUES ($1) RETURNING id`, roleName).Scan(&roleID)
	}
	if err != nil {
		return fmt.Errorf("failed to resolve role %q: %w", roleName, err)
	}

	if _, err := tx.Exec(`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`, user.ID, roleID); err != nil {
		return fmt.Errorf("failed to assign role: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit user: %w", err)
	}
	user.IsActive = true
	user.Password = ""
	return nil
}

// UpdateUserPassword replaces a user's password hash.
func UpdateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	_, err := db.Exec(`UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`, hashedPassword, userID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

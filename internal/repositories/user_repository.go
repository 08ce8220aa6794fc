package repositories

import (
	"database/sql"
	"log"
	"time"

	"jewelcms/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(email string) (*models.AdminUser, error) {
	const query = `
		SELECT id, email, first_name, last_name, password_hash, role, created_at, last_login_at
		FROM admin_users
		WHERE lower(email) = lower($1)
	`
	var u models.AdminUser
	err := r.db.QueryRow(query, email).Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.LastLoginAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(id string) (*models.AdminUser, error) {
	const query = `
		SELECT id, email, first_name, last_name, password_hash, role, created_at, last_login_at
		FROM admin_users
		WHERE id = $1
	`
	var u models.AdminUser
	err := r.db.QueryRow(query, id).Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.LastLoginAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) TouchLastLogin(id string) error {
	_, err := r.db.Exec(`UPDATE admin_users SET last_login_at=$1 WHERE id=$2`, time.Now(), id)
	return err
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"online_tuition/internal/model"

	"github.com/jackc/pgx/v5"
)

type adminRepository struct {
	db DBTX
}

// NewAdminRepository creates a PostgreSQL backed AdminRepository
func NewAdminRepository(db DBTX) AdminRepository {
	return &adminRepository{db: db}
}

// Create inserts a new admin
func (r *adminRepository) Create(ctx context.Context, a *model.Admin) error {
	sql := `INSERT INTO admins (id, email, password_hash, is_admin, created_at)
            VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.Exec(ctx, sql, a.ID, a.Email, a.PasswordHash, a.IsAdmin, a.CreatedAt); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

// FindByEmail retrieves an admin by email
func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	a := &model.Admin{}
	sql := `SELECT id, email, password_hash, is_admin, created_at FROM admins
            WHERE email = $1 ORDER BY created_at LIMIT 1`
	err := r.db.QueryRow(ctx, sql, email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.IsAdmin, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find admin by email: %w", err)
	}
	return a, nil
}

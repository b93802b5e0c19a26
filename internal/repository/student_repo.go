package repository

import (
	"context"
	"errors"
	"fmt"

	"online_tuition/internal/model"

	"github.com/jackc/pgx/v5"
)

type studentRepository struct {
	db DBTX
}

// NewStudentRepository creates a PostgreSQL backed StudentRepository
func NewStudentRepository(db DBTX) StudentRepository {
	return &studentRepository{db: db}
}

// Create inserts a new student. Emails are not unique.
func (r *studentRepository) Create(ctx context.Context, s *model.Student) error {
	sql := `INSERT INTO students (id, name, email, phone, password_hash, created_at)
            VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.db.Exec(ctx, sql, s.ID, s.Name, s.Email, s.Phone, s.PasswordHash, s.CreatedAt); err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

// FindByEmail returns the earliest student registered with email
func (r *studentRepository) FindByEmail(ctx context.Context, email string) (*model.Student, error) {
	s := &model.Student{}
	sql := `SELECT id, name, email, phone, password_hash, created_at FROM students
            WHERE email = $1 ORDER BY created_at LIMIT 1`
	err := r.db.QueryRow(ctx, sql, email).Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.PasswordHash, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find student by email: %w", err)
	}
	return s, nil
}

// FindAll lists students in signup order
func (r *studentRepository) FindAll(ctx context.Context) ([]model.Student, error) {
	sql := `SELECT id, name, email, phone, password_hash, created_at FROM students ORDER BY created_at`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	students := make([]model.Student, 0)
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.PasswordHash, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan student row: %w", err)
		}
		students = append(students, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}
	return students, nil
}

package repository

import (
	"context"

	"online_tuition/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// StudentRepository defines operations for student accounts.
// FindByEmail returns nil, nil when no student matches.
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	FindByEmail(ctx context.Context, email string) (*model.Student, error)
	FindAll(ctx context.Context) ([]model.Student, error)
}

// AdminRepository defines operations for admin accounts.
// FindByEmail returns nil, nil when no admin matches.
type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
}

// TimetableRepository defines operations for timetable entries
type TimetableRepository interface {
	Create(ctx context.Context, entry *model.TimetableEntry) error
	FindAll(ctx context.Context) ([]model.TimetableEntry, error)
}

// DBTX is the subset of *pgxpool.Pool used by the PostgreSQL repositories
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

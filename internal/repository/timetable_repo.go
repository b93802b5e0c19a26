package repository

import (
	"context"
	"fmt"

	"online_tuition/internal/model"
)

type timetableRepository struct {
	db DBTX
}

// NewTimetableRepository creates a PostgreSQL backed TimetableRepository
func NewTimetableRepository(db DBTX) TimetableRepository {
	return &timetableRepository{db: db}
}

// Create inserts a new timetable entry
func (r *timetableRepository) Create(ctx context.Context, e *model.TimetableEntry) error {
	sql := `INSERT INTO timetable (id, student_name, subject, class_day, class_time, link, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, sql, e.ID, e.StudentName, e.Subject, e.ClassDay, e.ClassTime, e.Link, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create timetable entry: %w", err)
	}
	return nil
}

// FindAll lists every entry in insertion order
func (r *timetableRepository) FindAll(ctx context.Context) ([]model.TimetableEntry, error) {
	sql := `SELECT id, student_name, subject, class_day, class_time, link, created_at
            FROM timetable ORDER BY created_at`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query timetable: %w", err)
	}
	defer rows.Close()

	entries := make([]model.TimetableEntry, 0)
	for rows.Next() {
		var e model.TimetableEntry
		if err := rows.Scan(&e.ID, &e.StudentName, &e.Subject, &e.ClassDay, &e.ClassTime, &e.Link, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan timetable row: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating timetable rows: %w", err)
	}
	return entries, nil
}

package service

import (
	"context"
	"sync"

	"online_tuition/internal/model"
)

// memStudents and memAdmins keep records in insertion order and count lookups.
type memStudents struct {
	mu      sync.Mutex
	records []model.Student
	lookups int
	err     error
}

func (m *memStudents) Create(_ context.Context, s *model.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, *s)
	return nil
}

func (m *memStudents) FindByEmail(_ context.Context, email string) (*model.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups++
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.records {
		if m.records[i].Email == email {
			s := m.records[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (m *memStudents) FindAll(_ context.Context) ([]model.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]model.Student(nil), m.records...), nil
}

type memAdmins struct {
	mu      sync.Mutex
	records []model.Admin
	lookups int
	err     error
}

func (m *memAdmins) Create(_ context.Context, a *model.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, *a)
	return nil
}

func (m *memAdmins) FindByEmail(_ context.Context, email string) (*model.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups++
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.records {
		if m.records[i].Email == email {
			a := m.records[i]
			return &a, nil
		}
	}
	return nil, nil
}

type memTimetable struct {
	records []model.TimetableEntry
	err     error
}

func (m *memTimetable) Create(_ context.Context, e *model.TimetableEntry) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, *e)
	return nil
}

func (m *memTimetable) FindAll(_ context.Context) ([]model.TimetableEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

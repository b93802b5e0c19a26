package service

import (
	"context"
	"time"

	"online_tuition/internal/model"
	"online_tuition/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TimetableService defines operations for the class timetable
type TimetableService interface {
	CreateEntry(ctx context.Context, req model.CreateTimetableRequest) (*model.TimetableEntry, error)
	ListEntries(ctx context.Context) ([]model.TimetableEntry, error)
}

type timetableService struct {
	repo repository.TimetableRepository
	log  zerolog.Logger
}

// NewTimetableService creates a new TimetableService
func NewTimetableService(repo repository.TimetableRepository, log zerolog.Logger) TimetableService {
	return &timetableService{repo: repo, log: log.With().Str("component", "timetable").Logger()}
}

func (s *timetableService) CreateEntry(ctx context.Context, req model.CreateTimetableRequest) (*model.TimetableEntry, error) {
	entry := &model.TimetableEntry{
		ID:          uuid.NewString(),
		StudentName: req.StudentName,
		Subject:     req.Subject,
		ClassDay:    req.ClassDay,
		ClassTime:   req.ClassTime,
		Link:        req.Link,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.log.Error().Err(err).Msg("failed to insert timetable entry")
		return nil, storageError("create timetable entry", err)
	}
	return entry, nil
}

func (s *timetableService) ListEntries(ctx context.Context) ([]model.TimetableEntry, error) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list timetable")
		return nil, storageError("list timetable", err)
	}
	if entries == nil {
		entries = []model.TimetableEntry{}
	}
	return entries, nil
}

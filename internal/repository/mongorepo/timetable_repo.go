package mongorepo

import (
	"context"
	"fmt"

	"online_tuition/internal/model"
	"online_tuition/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type timetableRepository struct {
	coll *mongo.Collection
}

// NewTimetableRepository creates a MongoDB backed TimetableRepository
func NewTimetableRepository(db *mongo.Database) repository.TimetableRepository {
	return &timetableRepository{coll: db.Collection(TimetableCollection)}
}

func (r *timetableRepository) Create(ctx context.Context, e *model.TimetableEntry) error {
	if _, err := r.coll.InsertOne(ctx, e); err != nil {
		return fmt.Errorf("failed to insert timetable entry: %w", err)
	}
	return nil
}

func (r *timetableRepository) FindAll(ctx context.Context) ([]model.TimetableEntry, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(oldestFirst))
	if err != nil {
		return nil, fmt.Errorf("failed to query timetable: %w", err)
	}

	entries := make([]model.TimetableEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode timetable: %w", err)
	}
	return entries, nil
}

// Package mongorepo implements the repository interfaces over a MongoDB database.
// Student and admin accounts live in separate collections, so one email may exist in both.
package mongorepo

import (
	"context"
	"errors"
	"fmt"

	"online_tuition/internal/model"
	"online_tuition/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	StudentsCollection  = "students"
	AdminsCollection    = "admins"
	TimetableCollection = "timetables"
)

// oldestFirst makes findOne deterministic when an email was registered more than once
var oldestFirst = bson.D{{Key: "createdAt", Value: 1}}

type studentRepository struct {
	coll *mongo.Collection
}

// NewStudentRepository creates a MongoDB backed StudentRepository
func NewStudentRepository(db *mongo.Database) repository.StudentRepository {
	return &studentRepository{coll: db.Collection(StudentsCollection)}
}

func (r *studentRepository) Create(ctx context.Context, s *model.Student) error {
	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to insert student: %w", err)
	}
	return nil
}

func (r *studentRepository) FindByEmail(ctx context.Context, email string) (*model.Student, error) {
	var s model.Student
	opts := options.FindOne().SetSort(oldestFirst)
	err := r.coll.FindOne(ctx, bson.M{"email": email}, opts).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find student by email: %w", err)
	}
	return &s, nil
}

func (r *studentRepository) FindAll(ctx context.Context) ([]model.Student, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(oldestFirst))
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}

	students := make([]model.Student, 0)
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("failed to decode students: %w", err)
	}
	return students, nil
}

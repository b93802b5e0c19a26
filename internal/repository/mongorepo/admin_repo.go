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

type adminRepository struct {
	coll *mongo.Collection
}

// NewAdminRepository creates a MongoDB backed AdminRepository
func NewAdminRepository(db *mongo.Database) repository.AdminRepository {
	return &adminRepository{coll: db.Collection(AdminsCollection)}
}

func (r *adminRepository) Create(ctx context.Context, a *model.Admin) error {
	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("failed to insert admin: %w", err)
	}
	return nil
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var a model.Admin
	opts := options.FindOne().SetSort(oldestFirst)
	err := r.coll.FindOne(ctx, bson.M{"email": email}, opts).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find admin by email: %w", err)
	}
	return &a, nil
}

// Package repositories implements Mongo persistence for the admin,
// product, and settings documents.
package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/turboost/store/app/models"
)

var (
	// ErrAdminExists is returned when registration runs after an admin
	// document already exists.
	ErrAdminExists = errors.New("an administrator already exists")

	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("document not found")
)

// AdminRepository handles the admins collection.
type AdminRepository struct {
	col *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{col: db.Collection("admins")}
}

// EnsureIndexes creates the unique username index. The index, not the
// registration-time existence check, is what actually guarantees the
// single-admin rule under concurrent registrations.
func (r *AdminRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("admins: create index: %w", err)
	}
	return nil
}

// Exists reports whether any admin document is present.
func (r *AdminRepository) Exists(ctx context.Context) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("admins: count: %w", err)
	}
	return count > 0, nil
}

// Create inserts the admin account. A duplicate username insert maps to
// ErrAdminExists.
func (r *AdminRepository) Create(ctx context.Context, admin models.Admin) error {
	if _, err := r.col.InsertOne(ctx, admin); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrAdminExists
		}
		return fmt.Errorf("admins: insert: %w", err)
	}
	return nil
}

// FindByUsername returns the admin with the given username, or ErrNotFound.
func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (models.Admin, error) {
	var admin models.Admin
	err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Admin{}, ErrNotFound
		}
		return models.Admin{}, fmt.Errorf("admins: find %q: %w", username, err)
	}
	return admin, nil
}

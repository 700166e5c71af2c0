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

// SettingsRepository handles the singleton store configuration document.
type SettingsRepository struct {
	col *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{col: db.Collection("settings")}
}

// Get returns the store configuration. A missing document reads as an
// empty config, not an error.
func (r *SettingsRepository) Get(ctx context.Context) (models.StoreConfig, error) {
	var cfg models.StoreConfig
	err := r.col.FindOne(ctx, bson.M{"_id": models.SettingsDocID}).Decode(&cfg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.StoreConfig{}, nil
		}
		return nil, fmt.Errorf("settings: find: %w", err)
	}
	delete(cfg, "_id")
	return cfg, nil
}

// Merge $sets the given fields into the config document, creating it on
// first save. Existing fields not mentioned are left alone.
func (r *SettingsRepository) Merge(ctx context.Context, fields bson.M) error {
	if len(fields) == 0 {
		return nil
	}

	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": models.SettingsDocID},
		bson.M{"$set": fields},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("settings: merge: %w", err)
	}
	return nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/turboost/store/app/models"
)

// ErrInvalidID is returned for product IDs that are not valid ObjectID hex.
var ErrInvalidID = errors.New("invalid product id")

// ProductRepository handles the products collection.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection("products")}
}

// All returns every product in the catalogue.
func (r *ProductRepository) All(ctx context.Context) ([]models.Product, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("products: find: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("products: decode: %w", err)
	}
	return products, nil
}

// Create inserts the normalized form document and returns the new ID.
func (r *ProductRepository) Create(ctx context.Context, doc bson.M) (string, error) {
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("products: insert: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("products: unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// Update merges doc into the product via $set. Fields absent from doc
// keep their stored values, which is what preserves media URLs when no
// replacement file was uploaded.
func (r *ProductRepository) Update(ctx context.Context, id string, doc bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": doc})
	if err != nil {
		return fmt.Errorf("products: update %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the product.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("products: delete %s: %w", id, err)
	}
	return nil
}

// Package models defines the documents persisted in Mongo and the
// normalization rules for the admin product form.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Admin is the single administrator account. Created once through
// registration and never updated afterwards; uniqueness of the username
// is backed by an index (see repositories.AdminRepository.EnsureIndexes).
type Admin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Username     string             `bson:"username"      json:"username"`
	PasswordHash string             `bson:"password_hash" json:"-"`
}

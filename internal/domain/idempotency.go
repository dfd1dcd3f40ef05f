// Package domain defines the core persistence models for the application.
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Idempotency represents a recorded result of a previously processed request,
// keyed by (user_id, scope, key) where scope is the request path. It enables
// safe retries for POST operations by returning the originally produced
// response without re-executing side effects.
//
// Documents expire through a TTL index on expires_at; GetIdempotency also
// filters on it so a record is never replayed past its window even before the
// TTL monitor removes it.
type Idempotency struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Scope     string             `bson:"scope"`
	Key       string             `bson:"key"`
	RecordID  string             `bson:"record_id"`
	Status    int                `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
	ExpiresAt time.Time          `bson:"expires_at"`
}

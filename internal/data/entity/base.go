package entity

import "time"

// Base carries the fields shared by every stored document. IDs are UUID
// strings stored as the Mongo _id.
type Base struct {
	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultTitle is used when a creation request carries no title.
const DefaultTitle = "Silent block"

// Block represents a scheduled silent time interval for a user.
type Block struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	UserEmail string             `bson:"user_email" json:"user_email"`
	Title     string             `bson:"title" json:"title"`
	StartTime time.Time          `bson:"start_time" json:"start_time"`
	EndTime   *time.Time         `bson:"end_time" json:"end_time"`
	Notified  bool               `bson:"notified" json:"notified"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// CollectionName specifies the Mongo collection for the Block entity.
func (Block) CollectionName() string {
	return "blocks"
}

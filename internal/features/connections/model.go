package connections

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Connection status values. A connection edge is created in pending state by
// the requester and becomes accepted (or is deleted on decline/remove).
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
)

// Connection represents an edge in the connection graph between two users
type Connection struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RequesterID primitive.ObjectID `bson:"requesterId" json:"requesterId"`
	RecipientID primitive.ObjectID `bson:"recipientId" json:"recipientId"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	RespondedAt *time.Time         `bson:"respondedAt" json:"respondedAt"`
}

// ConnectionListQuery for GET /connections
type ConnectionListQuery struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=20" binding:"min=1,max=50"`
}

// ConnectionUserResponse is one entry in a connection or request list
type ConnectionUserResponse struct {
	ConnectionID primitive.ObjectID `json:"connectionId"`
	UserID       primitive.ObjectID `json:"userId"`
	Name         string             `json:"name"`
	Headline     string             `json:"headline"`
	Location     string             `json:"location"`
	Industry     string             `json:"industry"`
	Status       string             `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// ConnectActionResponse after sending a request
type ConnectActionResponse struct {
	ConnectionID primitive.ObjectID `json:"connectionId"`
	Status       string             `json:"status"`
}

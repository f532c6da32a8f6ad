package jobs

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostedByType is a closed set of poster kinds. Handlers validate against it
// at the boundary so nothing downstream branches on raw strings.
type PostedByType string

const (
	PostedByUser    PostedByType = "user"
	PostedByCompany PostedByType = "company"
)

// Valid reports whether the value is a member of the closed set
func (t PostedByType) Valid() bool {
	switch t {
	case PostedByUser, PostedByCompany:
		return true
	}
	return false
}

// Job represents a job board posting
type Job struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostedByID   primitive.ObjectID `bson:"postedById" json:"postedById"`
	PostedByType PostedByType       `bson:"postedByType" json:"postedByType"`
	Title        string             `bson:"title" json:"title"`
	Company      string             `bson:"company" json:"company"`
	Location     string             `bson:"location" json:"location"`
	Description  string             `bson:"description" json:"description"`
	Tags         []string           `bson:"tags" json:"tags"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateJobRequest for POST /jobs
type CreateJobRequest struct {
	Title        string   `json:"title" binding:"required,min=3,max=120"`
	Company      string   `json:"company" binding:"required,min=2,max=80"`
	Location     string   `json:"location" binding:"omitempty,max=80"`
	Description  string   `json:"description" binding:"required,min=10,max=5000"`
	Tags         []string `json:"tags" binding:"omitempty,max=10,dive,min=2,max=30"`
	PostedByType string   `json:"postedByType" binding:"omitempty"`
}

// JobListQuery for GET /jobs
type JobListQuery struct {
	Q        string `form:"q" binding:"omitempty,max=100"`
	Location string `form:"location" binding:"omitempty,max=80"`
	Tag      string `form:"tag" binding:"omitempty,max=30"`
	Page     int    `form:"page,default=1" binding:"min=1"`
	Limit    int    `form:"limit,default=20" binding:"min=1,max=50"`
}

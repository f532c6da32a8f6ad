package jobs

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles database interactions for job postings
type Repository struct {
	collection *mongo.Collection
}

// NewRepository creates the repository and ensures indexes
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("jobs")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "tags", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "postedById", Value: 1}, {Key: "createdAt", Value: -1}},
		},
	})

	return &Repository{collection: collection}
}

// Create inserts a new job posting
func (r *Repository) Create(ctx context.Context, job *Job) error {
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now
	if job.Tags == nil {
		job.Tags = []string{}
	}

	result, err := r.collection.InsertOne(ctx, job)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		job.ID = oid
	}
	return nil
}

// GetByID returns a job by id, or nil
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (*Job, error) {
	var job Job
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

// List returns job postings matching the query filters, newest first
func (r *Repository) List(ctx context.Context, query *JobListQuery, offset, limit int) ([]Job, int64, error) {
	filter := bson.M{}

	if query.Q != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query.Q), Options: "i"}
		filter["$or"] = []bson.M{
			{"title": pattern},
			{"company": pattern},
			{"description": pattern},
		}
	}
	if query.Location != "" {
		filter["location"] = primitive.Regex{Pattern: regexp.QuoteMeta(query.Location), Options: "i"}
	}
	if query.Tag != "" {
		filter["tags"] = query.Tag
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var result []Job
	if err := cursor.All(ctx, &result); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

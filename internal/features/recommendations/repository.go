package recommendations

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hamzarauf/linkora/internal/features/auth"
	"github.com/hamzarauf/linkora/internal/features/connections"
)

// poolLimit caps how many candidates one request scores. Scoring is linear
// in pool size, so this bounds request latency on large user bases.
const poolLimit = 500

// Repository assembles the candidate pool for a requester
type Repository struct {
	users       *mongo.Collection
	connections *connections.Repository
}

// NewRepository creates the repository over the users collection and the
// connections graph
func NewRepository(db *mongo.Database, connRepo *connections.Repository) *Repository {
	return &Repository{
		users:       db.Collection("users"),
		connections: connRepo,
	}
}

// CandidatePool returns scoreable candidates for the requester: every user
// except the requester and anyone already linked by a connection edge in any
// state. Candidates come back sorted by id ascending so downstream scoring
// sees a stable order.
func (r *Repository) CandidatePool(ctx context.Context, requesterID primitive.ObjectID) ([]Candidate, error) {
	excluded, err := r.connections.ExcludedUserIDs(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	excluded = append(excluded, requesterID)

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(poolLimit)

	cursor, err := r.users.Find(ctx, bson.M{"_id": bson.M{"$nin": excluded}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []auth.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return []Candidate{}, nil
	}

	candidateIDs := make([]primitive.ObjectID, len(users))
	for i := range users {
		candidateIDs[i] = users[i].ID
	}

	mutualCounts, err := r.connections.MutualConnectionCounts(ctx, requesterID, candidateIDs)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, len(users))
	for i := range users {
		candidates[i] = Candidate{
			User:              &users[i],
			MutualConnections: mutualCounts[users[i].ID],
		}
	}
	return candidates, nil
}

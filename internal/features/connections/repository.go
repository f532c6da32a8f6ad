package connections

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles database interactions for the connection graph
type Repository struct {
	collection *mongo.Collection
}

// NewRepository creates the repository and ensures indexes
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("connections")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			// One edge per user pair, regardless of direction the pair is
			// stored once keyed (requesterId, recipientId)
			Keys: bson.D{
				{Key: "requesterId", Value: 1},
				{Key: "recipientId", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "recipientId", Value: 1},
				{Key: "status", Value: 1},
				{Key: "createdAt", Value: -1},
			},
		},
		{
			Keys: bson.D{
				{Key: "requesterId", Value: 1},
				{Key: "status", Value: 1},
				{Key: "createdAt", Value: -1},
			},
		},
	})

	return &Repository{collection: collection}
}

// CreateRequest creates a pending connection request. Idempotent: an
// existing edge between the pair (either direction, any status) is returned
// as-is.
func (r *Repository) CreateRequest(ctx context.Context, requesterID, recipientID primitive.ObjectID) (*Connection, error) {
	existing, err := r.GetEdge(ctx, requesterID, recipientID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	conn := &Connection{
		ID:          primitive.NewObjectID(),
		RequesterID: requesterID,
		RecipientID: recipientID,
		Status:      StatusPending,
		CreatedAt:   time.Now(),
	}

	_, err = r.collection.InsertOne(ctx, conn)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return r.GetEdge(ctx, requesterID, recipientID)
		}
		return nil, err
	}

	return conn, nil
}

// GetEdge returns the connection edge between two users in either
// direction, or nil
func (r *Repository) GetEdge(ctx context.Context, a, b primitive.ObjectID) (*Connection, error) {
	filter := bson.M{"$or": []bson.M{
		{"requesterId": a, "recipientId": b},
		{"requesterId": b, "recipientId": a},
	}}

	var conn Connection
	err := r.collection.FindOne(ctx, filter).Decode(&conn)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &conn, nil
}

// GetByID returns a connection by id, or nil
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (*Connection, error) {
	var conn Connection
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&conn)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &conn, nil
}

// Accept marks a pending request as accepted. Only the recipient may accept.
func (r *Repository) Accept(ctx context.Context, id, recipientID primitive.ObjectID) (bool, error) {
	now := time.Now()
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "recipientId": recipientID, "status": StatusPending},
		bson.M{"$set": bson.M{"status": StatusAccepted, "respondedAt": now}})
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

// Decline deletes a pending request. Only the recipient may decline.
func (r *Repository) Decline(ctx context.Context, id, recipientID primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx,
		bson.M{"_id": id, "recipientId": recipientID, "status": StatusPending})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// RemoveEdge deletes the edge between two users regardless of status.
// Idempotent: removing a missing edge is not an error.
func (r *Repository) RemoveEdge(ctx context.Context, a, b primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"$or": []bson.M{
		{"requesterId": a, "recipientId": b},
		{"requesterId": b, "recipientId": a},
	}})
	return err
}

// ListAccepted returns accepted connections involving the user, newest first
func (r *Repository) ListAccepted(ctx context.Context, userID primitive.ObjectID, offset, limit int) ([]Connection, int64, error) {
	filter := bson.M{
		"status": StatusAccepted,
		"$or": []bson.M{
			{"requesterId": userID},
			{"recipientId": userID},
		},
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var conns []Connection
	if err := cursor.All(ctx, &conns); err != nil {
		return nil, 0, err
	}
	return conns, total, nil
}

// ListIncomingPending returns pending requests addressed to the user
func (r *Repository) ListIncomingPending(ctx context.Context, userID primitive.ObjectID, offset, limit int) ([]Connection, int64, error) {
	filter := bson.M{"recipientId": userID, "status": StatusPending}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var conns []Connection
	if err := cursor.All(ctx, &conns); err != nil {
		return nil, 0, err
	}
	return conns, total, nil
}

// ExcludedUserIDs returns every user id connected to userID by any edge,
// pending or accepted, in either direction. The recommendation candidate
// pool excludes these together with the requester itself.
func (r *Repository) ExcludedUserIDs(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error) {
	filter := bson.M{"$or": []bson.M{
		{"requesterId": userID},
		{"recipientId": userID},
	}}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var edges []Connection
	if err := cursor.All(ctx, &edges); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(edges))
	for _, edge := range edges {
		if edge.RequesterID == userID {
			ids = append(ids, edge.RecipientID)
		} else {
			ids = append(ids, edge.RequesterID)
		}
	}
	return ids, nil
}

// AcceptedPeerIDs returns the ids of users with an accepted connection to
// userID
func (r *Repository) AcceptedPeerIDs(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error) {
	filter := bson.M{
		"status": StatusAccepted,
		"$or": []bson.M{
			{"requesterId": userID},
			{"recipientId": userID},
		},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var edges []Connection
	if err := cursor.All(ctx, &edges); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(edges))
	for _, edge := range edges {
		if edge.RequesterID == userID {
			ids = append(ids, edge.RecipientID)
		} else {
			ids = append(ids, edge.RequesterID)
		}
	}
	return ids, nil
}

// MutualConnectionCounts returns, for each candidate, how many accepted
// connections it shares with the requester
func (r *Repository) MutualConnectionCounts(ctx context.Context, requesterID primitive.ObjectID, candidateIDs []primitive.ObjectID) (map[primitive.ObjectID]int, error) {
	counts := make(map[primitive.ObjectID]int, len(candidateIDs))
	if len(candidateIDs) == 0 {
		return counts, nil
	}

	requesterPeers, err := r.AcceptedPeerIDs(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if len(requesterPeers) == 0 {
		return counts, nil
	}

	peerSet := make(map[primitive.ObjectID]bool, len(requesterPeers))
	for _, id := range requesterPeers {
		peerSet[id] = true
	}

	// All accepted edges touching any candidate, resolved against the
	// requester's peer set.
	filter := bson.M{
		"status": StatusAccepted,
		"$or": []bson.M{
			{"requesterId": bson.M{"$in": candidateIDs}},
			{"recipientId": bson.M{"$in": candidateIDs}},
		},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var edges []Connection
	if err := cursor.All(ctx, &edges); err != nil {
		return nil, err
	}

	candidateSet := make(map[primitive.ObjectID]bool, len(candidateIDs))
	for _, id := range candidateIDs {
		candidateSet[id] = true
	}

	for _, edge := range edges {
		candidate, peer := edge.RequesterID, edge.RecipientID
		if !candidateSet[candidate] {
			candidate, peer = peer, candidate
		}
		if candidateSet[candidate] && peerSet[peer] {
			counts[candidate]++
		}
	}

	return counts, nil
}

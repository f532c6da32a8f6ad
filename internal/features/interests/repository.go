package interests

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository aggregates interest tags over the users collection
type Repository struct {
	userCollection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		userCollection: db.Collection("users"),
	}
}

// UpdateUserInterests replaces the interest tags for a user
func (r *Repository) UpdateUserInterests(ctx context.Context, userID primitive.ObjectID, tags []string) error {
	_, err := r.userCollection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{
			"interests": tags,
			"updatedAt": time.Now(),
		}})
	return err
}

// GetPopularTags returns the most common interest tags across all users
func (r *Repository) GetPopularTags(ctx context.Context, limit int) ([]TagCountResult, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"interests.0": bson.M{"$exists": true}}}},
		{{Key: "$unwind", Value: "$interests"}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$interests",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.userCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tags []TagCountResult
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// GetTagsForUsers returns the interest tags of the given users (used to
// personalize suggestions from a user's connections)
func (r *Repository) GetTagsForUsers(ctx context.Context, userIDs []primitive.ObjectID) ([]string, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": bson.M{"$in": userIDs}}}},
		{{Key: "$unwind", Value: "$interests"}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$interests",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}

	cursor, err := r.userCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []TagCountResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	tags := make([]string, 0, len(results))
	for _, result := range results {
		tags = append(tags, result.Name)
	}
	return tags, nil
}

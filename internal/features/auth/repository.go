package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/hamzarauf/linkora/pkg/errors"

	"github.com/hamzarauf/linkora/internal/pkg/validator"
)

// Repository handles database interactions for users
type Repository struct {
	collection *mongo.Collection
}

// NewRepository initializes the repository and creates necessary indexes
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("users")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "googleId", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"googleId": bson.M{"$type": "string"}}),
		},
		{
			Keys: bson.D{{Key: "lastActiveAt", Value: -1}},
		},
	})

	return &Repository{collection: collection}
}

// CreateUser inserts a new user
func (r *Repository) CreateUser(ctx context.Context, user *User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.LastActiveAt = now
	if user.Interests == nil {
		user.Interests = []string{}
	}
	if user.Goals == nil {
		user.Goals = []string{}
	}
	if user.Strengths == nil {
		user.Strengths = []string{}
	}

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("create user: %w", apperrors.ErrDuplicate)
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}

	return nil
}

// GetUserByID finds a user by hex id
func (r *Repository) GetUserByID(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}
	return r.GetUserByObjectID(ctx, oid)
}

// GetUserByObjectID finds a user by object id
func (r *Repository) GetUserByObjectID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	var user User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail finds a user by email
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByGoogleID finds a user by their Google ID
func (r *Repository) GetUserByGoogleID(ctx context.Context, googleID string) (*User, error) {
	var user User
	err := r.collection.FindOne(ctx, bson.M{"googleId": googleID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies a partial profile update
func (r *Repository) UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *UpdateProfileRequest) error {
	set := bson.M{"updatedAt": time.Now()}

	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Headline != nil {
		set["headline"] = *req.Headline
	}
	if req.Bio != nil {
		set["bio"] = *req.Bio
	}
	if req.Location != nil {
		set["location"] = *req.Location
	}
	if req.Industry != nil {
		set["industry"] = *req.Industry
	}
	if req.ExperienceYears != nil {
		set["experienceYears"] = *req.ExperienceYears
	}
	if req.LinkedinURL != nil {
		set["linkedinUrl"] = *req.LinkedinURL
	}
	if req.Goals != nil {
		set["goals"] = validator.NormalizeTags(req.Goals)
	}
	if req.Strengths != nil {
		set["strengths"] = validator.NormalizeTags(req.Strengths)
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": set})
	return err
}

// TouchLastActive records user activity. Failures are intentionally ignored
// by callers; activity tracking must never break a request.
func (r *Repository) TouchLastActive(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"lastActiveAt": time.Now()}})
	return err
}

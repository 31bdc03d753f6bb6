package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/identity-service/internal/core/domain"
)

const collectionUsers = "users"

// UserRepository implements ports.UserRepository using MongoDB. The user ID
// is stored as the document _id.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

type userDocument struct {
	ID              string    `bson:"_id"`
	DisplayName     string    `bson:"display_name"`
	Email           string    `bson:"email"`
	NormalizedEmail string    `bson:"normalized_email"`
	Username        string    `bson:"username"`
	Roles           []string  `bson:"roles"`
	CreatedAt       time.Time `bson:"created_at"`
}

func toDocument(u *domain.User) userDocument {
	return userDocument{
		ID:              u.ID,
		DisplayName:     u.DisplayName,
		Email:           u.Email,
		NormalizedEmail: domain.NormalizeEmail(u.Email),
		Username:        u.Username,
		Roles:           domain.NormalizeRoles(u.Roles),
		CreatedAt:       u.CreatedAt.UTC(),
	}
}

func (d userDocument) toDomain() *domain.User {
	return &domain.User{
		ID:          d.ID,
		DisplayName: d.DisplayName,
		Email:       d.Email,
		Username:    d.Username,
		Roles:       domain.NormalizeRoles(d.Roles),
		CreatedAt:   d.CreatedAt.UTC(),
	}
}

// Create inserts a new user. Duplicate _id, email or username yields
// domain.ErrUserExists.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, toDocument(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByEmail matches case-insensitively on the normalized email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"normalized_email": domain.NormalizeEmail(email)})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDocument
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

// GetRoles reads the current role set of user from the store.
func (r *UserRepository) GetRoles(ctx context.Context, user *domain.User) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc struct {
		Roles []string `bson:"roles"`
	}
	opts := options.FindOne().SetProjection(bson.M{"roles": 1})
	if err := r.col.FindOne(ctx, bson.M{"_id": user.ID}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get roles: %w", err)
	}
	return domain.NormalizeRoles(doc.Roles), nil
}

// AddRole grants role with $addToSet, so repeated grants are no-ops.
func (r *UserRepository) AddRole(ctx context.Context, userID, role string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"roles": role}},
	)
	if err != nil {
		return fmt.Errorf("add role: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// EnsureIndexes creates the unique indexes the find-or-create flow relies on.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "normalized_email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_normalized_email"),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_username"),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

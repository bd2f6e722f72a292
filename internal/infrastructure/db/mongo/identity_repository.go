package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/slooze/commodities-admin/internal/core/domain"
)

const (
	identityCollection = "identities"
	queryTimeout       = 5 * time.Second
)

// IdentityRepository reads credentials from the identities collection.
// Documents store a bcrypt password hash next to the public profile.
type IdentityRepository struct {
	coll *mongo.Collection
}

func NewIdentityRepository(db *mongo.Database) *IdentityRepository {
	return &IdentityRepository{coll: db.Collection(identityCollection)}
}

type identityDoc struct {
	ID           string `bson:"_id"`
	Email        string `bson:"email"`
	Name         string `bson:"name"`
	Role         string `bson:"role"`
	PasswordHash string `bson:"password_hash"`
}

// FindByEmail matches the email exactly.
func (r *IdentityRepository) FindByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var doc identityDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("find identity: %w", err)
	}

	role := domain.Role(doc.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("find identity %s: unknown role %q", doc.ID, doc.Role)
	}
	return &domain.Credential{
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		Identity: domain.Identity{
			ID:    doc.ID,
			Email: doc.Email,
			Name:  doc.Name,
			Role:  role,
		},
	}, nil
}

// Seed inserts creds whose email is not stored yet. Existing documents are
// left untouched, so seeding is safe on every start.
func (r *IdentityRepository) Seed(ctx context.Context, creds []domain.Credential) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	inserted := 0
	for _, c := range creds {
		doc := identityDoc{
			ID:           c.Identity.ID,
			Email:        c.Email,
			Name:         c.Identity.Name,
			Role:         string(c.Identity.Role),
			PasswordHash: c.PasswordHash,
		}
		res, err := r.coll.UpdateOne(ctx,
			bson.M{"email": c.Email},
			bson.M{"$setOnInsert": doc},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return inserted, fmt.Errorf("seed identity %s: %w", c.Email, err)
		}
		if res.UpsertedCount > 0 {
			inserted++
		}
	}
	return inserted, nil
}

// EnsureIndexes creates the unique email index.
func (r *IdentityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

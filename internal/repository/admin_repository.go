package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/clothyvs/dashboard-backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// AdminCollection is the collection holding admin accounts.
	AdminCollection = "admins"

	// AdminEmailIndex is the unique index that keeps one account per email.
	// The name matches the server default for {email: 1}, which is what the
	// storefront's own schema creates, so both sides agree on one index.
	AdminEmailIndex = "email_1"
)

var (
	// ErrAdminNotFound is returned when no admin matches the lookup.
	ErrAdminNotFound = errors.New("admin not found")

	// ErrDuplicateEmail is returned when an insert violates the unique email index.
	ErrDuplicateEmail = errors.New("admin email already exists")
)

// AdminRepository is the admin account store used by provisioning.
type AdminRepository interface {
	// FindByEmail returns the account with exactly this email or ErrAdminNotFound.
	FindByEmail(ctx context.Context, email string) (*model.AdminAccount, error)

	// Create inserts a as a new document and sets its ID.
	Create(ctx context.Context, a *model.AdminAccount) error
}

// MongoAdminRepository handles admin data access on MongoDB.
type MongoAdminRepository struct {
	coll *mongo.Collection
}

// NewMongoAdminRepository creates a new MongoAdminRepository on db.
func NewMongoAdminRepository(db *mongo.Database) *MongoAdminRepository {
	return &MongoAdminRepository{coll: db.Collection(AdminCollection)}
}

// FindByEmail retrieves an admin by their unique email.
func (r *MongoAdminRepository) FindByEmail(ctx context.Context, email string) (*model.AdminAccount, error) {
	a := &model.AdminAccount{}
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find admin by email: %w", err)
	}
	return a, nil
}

// Create inserts a new admin.
func (r *MongoAdminRepository) Create(ctx context.Context, a *model.AdminAccount) error {
	if a.AccessList == nil {
		a.AccessList = []string{}
	}

	res, err := r.coll.InsertOne(ctx, a)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = id
	}
	return nil
}

// EnsureIndexes creates the unique email index unless a unique index on
// {email: 1} already exists under any name.
func (r *MongoAdminRepository) EnsureIndexes(ctx context.Context) error {
	ok, err := r.HasUniqueEmailIndex(ctx)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	_, err = r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName(AdminEmailIndex).SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create %s index: %w", AdminEmailIndex, err)
	}
	return nil
}

// HasUniqueEmailIndex reports whether the collection already enforces
// one document per email.
func (r *MongoAdminRepository) HasUniqueEmailIndex(ctx context.Context) (bool, error) {
	cur, err := r.coll.Indexes().List(ctx)
	if err != nil {
		return false, fmt.Errorf("list admin indexes: %w", err)
	}
	defer cur.Close(ctx)

	var specs []emailIndexSpec
	if err := cur.All(ctx, &specs); err != nil {
		return false, fmt.Errorf("decode admin indexes: %w", err)
	}
	return hasUniqueEmailIndex(specs), nil
}

type emailIndexSpec struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique bool   `bson:"unique"`
}

func hasUniqueEmailIndex(specs []emailIndexSpec) bool {
	for _, s := range specs {
		if s.Unique && len(s.Key) == 1 && s.Key[0].Key == "email" {
			return true
		}
	}
	return false
}

// Count returns the number of admin documents matching email. Used by
// tooling that verifies the one-account-per-email invariant.
func (r *MongoAdminRepository) Count(ctx context.Context, email string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return n, nil
}

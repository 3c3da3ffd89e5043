package database

import (
	"context"
	"fmt"

	"github.com/clothyvs/dashboard-backend/internal/config"
	"github.com/clothyvs/dashboard-backend/internal/repository"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewMongoClient creates and validates a MongoDB client connection.
// The caller owns the client and must Disconnect it.
func NewMongoClient(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetConnectTimeout(cfg.MongoConnectTimeout).
		SetServerSelectionTimeout(cfg.MongoConnectTimeout)

	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("parse mongo URI: %w", err)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	log.Info().
		Str("database", cfg.MongoDatabase).
		Msg("MongoDB connected")

	return client, nil
}

// MongoConnector opens one MongoDB client per session.
type MongoConnector struct {
	cfg *config.Config
	log zerolog.Logger
}

// NewMongoConnector creates a connector for the configured database.
func NewMongoConnector(cfg *config.Config, log zerolog.Logger) *MongoConnector {
	return &MongoConnector{
		cfg: cfg,
		log: log.With().Str("component", "mongo_connector").Logger(),
	}
}

// Connect dials MongoDB. It only reads and never changes collection
// indexes; the unique email index is owned by cmd/migrate.
func (c *MongoConnector) Connect(ctx context.Context) (repository.Session, error) {
	client, err := NewMongoClient(ctx, c.cfg, c.log)
	if err != nil {
		return nil, err
	}

	admins := repository.NewMongoAdminRepository(client.Database(c.cfg.MongoDatabase))

	return &mongoSession{client: client, admins: admins, log: c.log}, nil
}

type mongoSession struct {
	client *mongo.Client
	admins *repository.MongoAdminRepository
	log    zerolog.Logger
}

func (s *mongoSession) Admins() repository.AdminRepository {
	return s.admins
}

func (s *mongoSession) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongo: %w", err)
	}
	s.log.Debug().Msg("MongoDB disconnected")
	return nil
}

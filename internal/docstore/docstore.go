// Package docstore connects to the MongoDB document store that holds contact
// inquiries and display content.
package docstore

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/estate-listings/internal/config"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	ContactInquiries = "contact_inquiries"
	CompanyInfo      = "company_info"
	HeroSlides       = "hero_slides"
)

const connectTimeout = 10 * time.Second

// Store wraps a connected client and the configured database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	log    *zerolog.Logger
}

// New connects, pings the primary and makes sure indexes exist.
func New(ctx context.Context, cfg *config.MongoConfig, logger *zerolog.Logger) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URI).
		SetAppName(config.ServiceName))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	s := &Store{
		client: client,
		db:     client.Database(cfg.Database),
		log:    logger,
	}

	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info().Str("database", cfg.Database).Msg("connected to the document store")
	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(ContactInquiries).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("creating contact inquiry index: %w", err)
	}

	_, err = s.db.Collection(HeroSlides).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "position", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("creating hero slide index: %w", err)
	}
	return nil
}

// Collection returns a handle to the named collection.
func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// Ping checks the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	s.log.Info().Msg("closing document store connection")
	return s.client.Disconnect(ctx)
}

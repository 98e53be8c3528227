package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/estate-listings/internal/docstore"
	"github.com/deppfellow/estate-listings/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoContacts stores contact inquiries in the document store.
type MongoContacts struct {
	collection *mongo.Collection
}

func NewMongoContacts(store *docstore.Store) *MongoContacts {
	return &MongoContacts{collection: store.Collection(docstore.ContactInquiries)}
}

func (r *MongoContacts) Create(ctx context.Context, inquiry *model.ContactInquiry) error {
	if _, err := r.collection.InsertOne(ctx, inquiry); err != nil {
		return fmt.Errorf("failed to insert contact inquiry: %w", err)
	}
	return nil
}

func (r *MongoContacts) Find(ctx context.Context) ([]model.ContactInquiry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact inquiries: %w", err)
	}

	inquiries := []model.ContactInquiry{}
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, fmt.Errorf("failed to decode contact inquiries: %w", err)
	}
	return inquiries, nil
}

// MongoDisplay reads display content from the document store.
type MongoDisplay struct {
	companyInfo *mongo.Collection
	heroSlides  *mongo.Collection
}

func NewMongoDisplay(store *docstore.Store) *MongoDisplay {
	return &MongoDisplay{
		companyInfo: store.Collection(docstore.CompanyInfo),
		heroSlides:  store.Collection(docstore.HeroSlides),
	}
}

func (r *MongoDisplay) CompanyInfo(ctx context.Context) (*model.CompanyInfo, error) {
	var info model.CompanyInfo
	err := r.companyInfo.FindOne(ctx, bson.M{}, options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})).Decode(&info)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch company info: %w", err)
	}
	return &info, nil
}

func (r *MongoDisplay) HeroSlides(ctx context.Context) ([]model.HeroSlide, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.heroSlides.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query hero slides: %w", err)
	}

	slides := []model.HeroSlide{}
	if err := cursor.All(ctx, &slides); err != nil {
		return nil, fmt.Errorf("failed to decode hero slides: %w", err)
	}
	return slides, nil
}

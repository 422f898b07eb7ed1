package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cvlm/crm-backend/internal/models"
)

type profileDoc struct {
	Position int            `bson:"position"`
	Profile  models.Profile `bson:",inline"`
}

// ProfileStore snapshots the collection as one document per profile,
// with an explicit position preserving collection order. Save replaces
// the whole collection.
type ProfileStore struct {
	col *mongo.Collection
}

func NewProfileStore(db *mongo.Database) *ProfileStore {
	return &ProfileStore{col: db.Collection("profiles")}
}

func (s *ProfileStore) Load(ctx context.Context) ([]models.Profile, error) {
	cursor, err := s.col.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []profileDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	profiles := make([]models.Profile, 0, len(docs))
	for _, d := range docs {
		profiles = append(profiles, d.Profile)
	}
	return profiles, nil
}

func (s *ProfileStore) Save(ctx context.Context, profiles []models.Profile) error {
	if _, err := s.col.DeleteMany(ctx, bson.D{}); err != nil {
		return err
	}
	if len(profiles) == 0 {
		return nil
	}

	docs := make([]any, 0, len(profiles))
	for i, p := range profiles {
		docs = append(docs, profileDoc{Position: i, Profile: p})
	}
	_, err := s.col.InsertMany(ctx, docs)
	return err
}

package database

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pickem-league-go/logging"
	"pickem-league-go/models"
)

// MongoStandingRepository caches season standings in the "standings"
// collection. The cache is rebuilt wholesale on recalculation; games
// and picks stay the source of truth.
type MongoStandingRepository struct {
	collection *mongo.Collection
	logger     *logging.Logger
}

// NewMongoStandingRepository creates the repository and its indexes
func NewMongoStandingRepository(db *MongoDB) *MongoStandingRepository {
	collection := db.GetCollection("standings")
	logger := logging.WithPrefix("mongo_standing_repo")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "player", Value: 1}, {Key: "season", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		logger.Errorf("Failed to create index on standings collection: %v", err)
	}

	return &MongoStandingRepository{
		collection: collection,
		logger:     logger,
	}
}

// FindBySeason retrieves all cached standings for a season
func (r *MongoStandingRepository) FindBySeason(ctx context.Context, season int) ([]*models.SeasonStanding, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"season": season})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find standings for season %d", season)
	}
	defer cursor.Close(ctx)

	var standings []*models.SeasonStanding
	if err := cursor.All(ctx, &standings); err != nil {
		return nil, errors.Wrap(err, "failed to decode standings")
	}

	return standings, nil
}

// ReplaceSeason swaps the season's cached standings for a fresh set
func (r *MongoStandingRepository) ReplaceSeason(ctx context.Context, season int, standings []*models.SeasonStanding) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"season": season}); err != nil {
		return errors.Wrapf(err, "failed to clear standings for season %d", season)
	}

	if len(standings) == 0 {
		return nil
	}

	docs := make([]interface{}, len(standings))
	for i, standing := range standings {
		docs[i] = standing
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return errors.Wrapf(err, "failed to insert standings for season %d", season)
	}

	r.logger.Infof("Replaced season %d standings with %d entries", season, len(standings))
	return nil
}

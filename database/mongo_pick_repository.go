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

// MongoPickRepository stores pick sheets in the "picks" collection, one
// document per (player, season, week). Selections merge per game with
// dotted $set paths, so two simultaneous submissions for different
// games of the same week can never overwrite each other's columns —
// only a second write for the same game is last-writer-wins.
type MongoPickRepository struct {
	collection *mongo.Collection
	logger     *logging.Logger
}

// NewMongoPickRepository creates the repository and its indexes
func NewMongoPickRepository(db *MongoDB) *MongoPickRepository {
	collection := db.GetCollection("picks")
	logger := logging.WithPrefix("mongo_pick_repo")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "player", Value: 1}, {Key: "season", Value: 1}, {Key: "week", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "season", Value: 1}, {Key: "week", Value: 1}},
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Errorf("Failed to create indexes on picks collection: %v", err)
	}

	return &MongoPickRepository{
		collection: collection,
		logger:     logger,
	}
}

// FindByPlayerAndWeek retrieves one pick sheet, or nil when the player
// has not picked yet
func (r *MongoPickRepository) FindByPlayerAndWeek(ctx context.Context, player string, season, week int) (*models.Pick, error) {
	filter := bson.M{"player": player, "season": season, "week": week}

	var pick models.Pick
	err := r.collection.FindOne(ctx, filter).Decode(&pick)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to find picks for %s", player)
	}

	return &pick, nil
}

// FindAllByWeek retrieves every player's pick sheet for a week
func (r *MongoPickRepository) FindAllByWeek(ctx context.Context, season, week int) ([]*models.Pick, error) {
	filter := bson.M{"season": season, "week": week}

	opts := options.Find().SetSort(bson.D{{Key: "player", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find picks for season %d week %d", season, week)
	}
	defer cursor.Close(ctx)

	var picks []*models.Pick
	if err := cursor.All(ctx, &picks); err != nil {
		return nil, errors.Wrap(err, "failed to decode picks")
	}

	return picks, nil
}

// UpsertSelection writes a single game selection into the player's week
// sheet, creating the sheet on first selection
func (r *MongoPickRepository) UpsertSelection(ctx context.Context, player string, season, week, gameID int, team string) error {
	filter := bson.M{"player": player, "season": season, "week": week}

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"selections." + models.SelectionKey(gameID): team,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"player":     player,
			"season":     season,
			"week":       week,
			"created_at": now,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.Wrapf(err, "failed to upsert selection for %s game %d", player, gameID)
	}

	return nil
}

// UpsertTiebreakerScore writes the player's tiebreaker guess into the
// week sheet, creating the sheet when it does not exist yet
func (r *MongoPickRepository) UpsertTiebreakerScore(ctx context.Context, player string, season, week, score int) error {
	filter := bson.M{"player": player, "season": season, "week": week}

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"tiebreaker_score": score,
			"updated_at":       now,
		},
		"$setOnInsert": bson.M{
			"player":     player,
			"season":     season,
			"week":       week,
			"created_at": now,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.Wrapf(err, "failed to upsert tiebreaker score for %s", player)
	}

	return nil
}

// DeleteByPlayerAndWeek removes a player's entire week sheet. Only used
// by explicit data resets.
func (r *MongoPickRepository) DeleteByPlayerAndWeek(ctx context.Context, player string, season, week int) error {
	filter := bson.M{"player": player, "season": season, "week": week}

	result, err := r.collection.DeleteMany(ctx, filter)
	if err != nil {
		return errors.Wrapf(err, "failed to delete picks for %s", player)
	}

	r.logger.Infof("Deleted %d pick sheets for player %s, season %d, week %d", result.DeletedCount, player, season, week)
	return nil
}

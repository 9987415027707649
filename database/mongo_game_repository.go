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

// MongoGameRepository stores the game catalog in the "games" collection
type MongoGameRepository struct {
	collection *mongo.Collection
	logger     *logging.Logger
}

// NewMongoGameRepository creates the repository and its indexes
func NewMongoGameRepository(db *MongoDB) *MongoGameRepository {
	collection := db.GetCollection("games")
	logger := logging.WithPrefix("mongo_game_repo")

	// Compound index on game ID and season for upserts across seasons
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}, {Key: "season", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		logger.Errorf("Failed to create index on games collection: %v", err)
	}

	return &MongoGameRepository{
		collection: collection,
		logger:     logger,
	}
}

// FindByWeek retrieves a week's games sorted by kickoff time
func (r *MongoGameRepository) FindByWeek(ctx context.Context, season, week int) ([]*models.Game, error) {
	filter := bson.M{
		"season": season,
		"week":   week,
	}

	// Kickoff order first, home team alphabetical for identical slots
	sortOptions := options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "home", Value: 1},
	})

	cursor, err := r.collection.Find(ctx, filter, sortOptions)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find games for season %d week %d", season, week)
	}
	defer cursor.Close(ctx)

	var games []*models.Game
	if err := cursor.All(ctx, &games); err != nil {
		return nil, errors.Wrap(err, "failed to decode games")
	}

	return games, nil
}

// FindByID retrieves one game, or nil when it does not exist
func (r *MongoGameRepository) FindByID(ctx context.Context, season, gameID int) (*models.Game, error) {
	filter := bson.M{"id": gameID, "season": season}

	var game models.Game
	err := r.collection.FindOne(ctx, filter).Decode(&game)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to find game %d", gameID)
	}

	return &game, nil
}

// UpsertGame inserts or replaces a single game
func (r *MongoGameRepository) UpsertGame(ctx context.Context, game *models.Game) error {
	filter := bson.M{"id": game.ID, "season": game.Season}
	opts := options.Replace().SetUpsert(true)

	if _, err := r.collection.ReplaceOne(ctx, filter, game, opts); err != nil {
		return errors.Wrapf(err, "failed to upsert game %d", game.ID)
	}

	return nil
}

// BulkUpsertGames writes a schedule batch with per-field $set updates
func (r *MongoGameRepository) BulkUpsertGames(ctx context.Context, games []*models.Game) error {
	if len(games) == 0 {
		return nil
	}

	var operations []mongo.WriteModel
	for _, game := range games {
		filter := bson.M{"id": game.ID, "season": game.Season}

		update := bson.M{
			"$set": bson.M{
				"id":         game.ID,
				"season":     game.Season,
				"week":       game.Week,
				"date":       game.Date,
				"away":       game.Away,
				"home":       game.Home,
				"overUnder":  game.OverUnder,
				"tiebreaker": game.Tiebreaker,
				"completed":  game.Completed,
				"awayScore":  game.AwayScore,
				"homeScore":  game.HomeScore,
			},
		}

		operations = append(operations, mongo.NewUpdateOneModel().
			SetFilter(filter).
			SetUpdate(update).
			SetUpsert(true))
	}

	opts := options.BulkWrite().SetOrdered(false)
	result, err := r.collection.BulkWrite(ctx, operations, opts)
	if err != nil {
		return errors.Wrap(err, "bulk game upsert failed")
	}

	r.logger.Infof("Processed %d games: %d upserted, %d modified",
		len(games), result.UpsertedCount, result.ModifiedCount)

	return nil
}

// UpdateResult records a final score and completion state for a game
func (r *MongoGameRepository) UpdateResult(ctx context.Context, season, gameID, awayScore, homeScore int, completed bool) error {
	filter := bson.M{"id": gameID, "season": season}
	update := bson.M{
		"$set": bson.M{
			"awayScore": awayScore,
			"homeScore": homeScore,
			"completed": completed,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return errors.Wrapf(err, "failed to update result for game %d", gameID)
	}
	if result.MatchedCount == 0 {
		return errors.Newf("game %d not found in season %d", gameID, season)
	}

	return nil
}

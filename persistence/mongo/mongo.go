// Package mongo implements repository.GameRepository against
// go.mongodb.org/mongo-driver. Grounded on the teacher's MongoManager
// (common/database/mongo.go) for connection setup and
// infrastructure_persistence/game_record_persist.go for the
// collection/query shape, generalized from a 4-player-only schema.
package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"riichi/config"
	"riichi/log"
	"riichi/persistence/entity"
	"riichi/persistence/repository"
)

// Manager owns the mongo client and the two collections the event log
// needs.
type Manager struct {
	Cli    *mongo.Client
	Db     *mongo.Database
	games  *mongo.Collection
	rounds *mongo.Collection
}

// Connect dials cfg's Mongo URL and verifies it with a ping.
func Connect(cfg config.MongoConf) (*Manager, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().ApplyURI(cfg.URL)
	if cfg.MinPoolSize > 0 {
		opts.SetMinPoolSize(uint64(cfg.MinPoolSize))
	}
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(uint64(cfg.MaxPoolSize))
	}
	if cfg.Username != "" && cfg.Password != "" {
		opts.SetAuth(options.Credential{Username: cfg.Username, Password: cfg.Password})
	}

	cli, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	db := cli.Database(cfg.Db)
	return &Manager{
		Cli:    cli,
		Db:     db,
		games:  db.Collection("games"),
		rounds: db.Collection("rounds"),
	}, nil
}

func (m *Manager) Close() error {
	if m == nil {
		return nil
	}
	return m.Cli.Disconnect(context.Background())
}

var _ repository.GameRepository = (*Manager)(nil)

func (m *Manager) SaveGame(ctx context.Context, game *entity.GameRecord) error {
	_, err := m.games.InsertOne(ctx, game)
	if isDuplicate(err) {
		_, err = m.games.ReplaceOne(ctx, bson.M{"_id": game.ID}, game)
	}
	return err
}

func (m *Manager) FindGame(ctx context.Context, id primitive.ObjectID) (*entity.GameRecord, error) {
	var g entity.GameRecord
	err := m.games.FindOne(ctx, bson.M{"_id": id}).Decode(&g)
	if err == mongo.ErrNoDocuments {
		return nil, repository.ErrNotFound
	}
	return &g, err
}

func (m *Manager) SaveRound(ctx context.Context, round *entity.RoundRecord) error {
	_, err := m.rounds.InsertOne(ctx, round)
	if isDuplicate(err) {
		_, err = m.rounds.ReplaceOne(ctx, bson.M{"_id": round.ID}, round)
	}
	if err != nil {
		log.Error("mongo: saving round record %s: %v", round.ID.Hex(), err)
	}
	return err
}

func (m *Manager) FindRounds(ctx context.Context, gameID primitive.ObjectID) ([]*entity.RoundRecord, error) {
	cur, err := m.rounds.Find(ctx, bson.M{"game_id": gameID}, options.Find().SetSort(bson.M{"round_number": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*entity.RoundRecord
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func isDuplicate(err error) bool {
	we, ok := err.(mongo.WriteException)
	if !ok {
		return false
	}
	for _, e := range we.WriteErrors {
		if e.Code == 11000 {
			return true
		}
	}
	return false
}

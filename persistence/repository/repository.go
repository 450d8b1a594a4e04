// Package repository declares the storage contract for the append-only
// event log, independent of the Mongo implementation. Grounded on the
// teacher's GameRecordRepository (core/domain/repository/
// game_record_repository.go), trimmed to the operations the rules engine
// actually needs — no user-facing pagination or room lookups, since
// those belong to whatever service embeds this engine.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"riichi/persistence/entity"
)

// GameRepository persists games and their rounds.
type GameRepository interface {
	SaveGame(ctx context.Context, game *entity.GameRecord) error
	FindGame(ctx context.Context, id primitive.ObjectID) (*entity.GameRecord, error)

	SaveRound(ctx context.Context, round *entity.RoundRecord) error
	FindRounds(ctx context.Context, gameID primitive.ObjectID) ([]*entity.RoundRecord, error)
}

// ErrNotFound is returned by Find methods when no matching document
// exists.
var ErrNotFound = notFoundError{}

type notFoundError struct{}

func (notFoundError) Error() string { return "repository: not found" }

// Package persistence bridges the round controller's in-memory event
// log to the append-only storage layer: one Recorder per game, built up
// event-by-event as round.Round emits them, then flushed to Mongo in one
// batch once the game finishes. Grounded on the
// teacher's GamePersister (runtime/game/engines/mahjong/persist.go),
// trimmed of its user/room bookkeeping — this engine has no concept of
// accounts, only seats.
package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"riichi/log"
	"riichi/mahjong/round"
	"riichi/persistence/entity"
	"riichi/persistence/repository"
)

// Recorder accumulates one game's rounds in memory and flushes them to
// repo in one batch when the game ends, the way GamePersister.FinalizeGame
// does — a round in progress costs nothing beyond its own event slice
// until the whole game is over.
type Recorder struct {
	repo    repository.GameRepository
	game    *entity.GameRecord
	rounds  []*entity.RoundRecord
	current *entity.RoundRecord
}

// NewRecorder starts a fresh game record for a table of numPlayers
// seats.
func NewRecorder(repo repository.GameRepository, tableID string, numPlayers int) *Recorder {
	return &Recorder{
		repo:   repo,
		game:   entity.NewGameRecord(tableID, numPlayers),
		rounds: make([]*entity.RoundRecord, 0, 8),
	}
}

// StartRound opens a new round record and appends it to the game's list.
func (rec *Recorder) StartRound(roundNumber int, roundWind string, dealerIndex, honba int) {
	rec.current = entity.NewRoundRecord(rec.game.ID, roundNumber, roundWind, dealerIndex, honba)
	rec.rounds = append(rec.rounds, rec.current)
}

// Record appends one round.Event to the currently open round record,
// translating the in-process EventKind into the stored string tag.
func (rec *Recorder) Record(ev round.Event) {
	if rec.current == nil {
		return
	}
	data := map[string]interface{}{}
	if ev.Tile.Kind != 0 || ev.Kind == round.EventDraw || ev.Kind == round.EventDiscard {
		data["tile_kind"] = int(ev.Tile.Kind)
	}
	rec.current.AddEvent(eventTypeName(ev.Kind), ev.Seat, data)
}

// CompleteRound closes out the currently open round with its settlement.
func (rec *Recorder) CompleteRound(res *round.Result, nextDealer int) {
	if rec.current == nil || res == nil {
		return
	}
	rr := &entity.RoundResult{
		Deltas:     append([]int(nil), res.Deltas...),
		WinnerSeat: res.WinnerSeat,
		LoserSeat:  res.LoserSeat,
		NextDealer: nextDealer,
	}
	switch {
	case res.IsAbortive:
		rr.EndType = "abortive_draw"
	case res.IsDraw:
		rr.EndType = "exhaustive_draw"
	case res.Score != nil && res.LoserSeat == -1:
		rr.EndType = "tsumo"
	default:
		rr.EndType = "ron"
	}
	if res.Score != nil {
		rr.Han = res.Score.Han
		rr.Fu = res.Score.Fu
		for _, h := range res.Score.Yaku {
			rr.Yaku = append(rr.Yaku, h.Name)
		}
	}
	rec.current.Complete(rr)
}

// Finalize flushes the whole game — its metadata and every round
// collected so far — to storage in one batch, the way
// GamePersister.FinalizeGame does asynchronously; callers that want the
// async behavior should invoke this inside their own goroutine.
func (rec *Recorder) Finalize(ctx context.Context, finalScores []int) error {
	rec.game.Complete(finalScores)

	if err := rec.repo.SaveGame(ctx, rec.game); err != nil {
		log.Error("persistence: saving game record failed: %v", err)
		return err
	}
	for _, rr := range rec.rounds {
		if err := rec.repo.SaveRound(ctx, rr); err != nil {
			log.Error("persistence: saving round %d failed: %v", rr.RoundNumber, err)
			return err
		}
	}
	log.Info("persistence: saved game %s with %d rounds", rec.game.ID.Hex(), len(rec.rounds))
	return nil
}

// GameID returns the id of the game record this recorder is building.
func (rec *Recorder) GameID() primitive.ObjectID { return rec.game.ID }

func eventTypeName(k round.EventKind) string {
	switch k {
	case round.EventRoundStart:
		return entity.EventTypeRoundStart
	case round.EventDraw:
		return entity.EventTypeDraw
	case round.EventDiscard:
		return entity.EventTypeDiscard
	case round.EventCall:
		return entity.EventTypeCall
	case round.EventRiichiDeclared:
		return entity.EventTypeRiichiDeclared
	case round.EventTsumo:
		return entity.EventTypeTsumo
	case round.EventRon:
		return entity.EventTypeRon
	case round.EventExhaustiveDraw:
		return entity.EventTypeExhaustiveDraw
	case round.EventAbortiveDraw:
		return entity.EventTypeAbortiveDraw
	case round.EventRoundEnd:
		return entity.EventTypeRoundEnd
	default:
		return "unknown"
	}
}

// Package entity models the append-only event log persisted once a round
// finishes — spec.md's persistence non-goal is explicit that nothing
// beyond this log is stored (no resumable mid-round snapshots, no user
// accounts). Grounded on the teacher's entity.RoundRecord/RoundEvent
// (core/domain/entity/round_record.go), generalized from its fixed
// [4]int arrays to []int so the same shape covers three- and four-player
// rounds.
package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event type tags, mirroring riichi/mahjong/round.EventKind by name so a
// stored record reads independently of the in-process enum's numbering.
const (
	EventTypeRoundStart     = "round_start"
	EventTypeDraw           = "draw"
	EventTypeDiscard        = "discard"
	EventTypeCall           = "call"
	EventTypeRiichiDeclared = "riichi_declared"
	EventTypeTsumo          = "tsumo"
	EventTypeRon            = "ron"
	EventTypeExhaustiveDraw = "exhaustive_draw"
	EventTypeAbortiveDraw   = "abortive_draw"
	EventTypeRoundEnd       = "round_end"
)

// RoundRecord is one completed round's full event stream plus its
// outcome: one Mongo document per round.
type RoundRecord struct {
	ID          primitive.ObjectID     `bson:"_id"`
	GameID      primitive.ObjectID     `bson:"game_id"`
	RoundNumber int                    `bson:"round_number"`
	RoundWind   string                 `bson:"round_wind"`
	DealerIndex int                    `bson:"dealer_index"`
	Honba       int                    `bson:"honba"`
	Events      []RoundEvent           `bson:"events"`
	Result      *RoundResult           `bson:"round_result"`
	StartTime   time.Time              `bson:"start_time"`
	EndTime     time.Time              `bson:"end_time"`
	CreatedAt   time.Time              `bson:"created_at"`
}

// RoundEvent is one append-only log entry.
type RoundEvent struct {
	Sequence  int                    `bson:"sequence"`
	EventType string                 `bson:"event_type"`
	Timestamp time.Time              `bson:"timestamp"`
	SeatIndex int                    `bson:"seat_index"`
	Data      map[string]interface{} `bson:"data"`
}

// RoundResult is the settlement a finished round produces.
type RoundResult struct {
	EndType    string `bson:"end_type"` // "ron", "tsumo", "exhaustive_draw", "abortive_draw"
	WinnerSeat int    `bson:"winner_seat"`
	LoserSeat  int    `bson:"loser_seat"`
	Han        int    `bson:"han"`
	Fu         int    `bson:"fu"`
	Yaku       []string `bson:"yaku"`
	Deltas     []int  `bson:"deltas"`
	NextDealer int    `bson:"next_dealer"`
}

// NewRoundRecord starts a fresh record for one round.
func NewRoundRecord(gameID primitive.ObjectID, roundNumber int, roundWind string, dealerIndex, honba int) *RoundRecord {
	return &RoundRecord{
		ID:          primitive.NewObjectID(),
		GameID:      gameID,
		RoundNumber: roundNumber,
		RoundWind:   roundWind,
		DealerIndex: dealerIndex,
		Honba:       honba,
		Events:      make([]RoundEvent, 0, 100),
		StartTime:   time.Now(),
		CreatedAt:   time.Now(),
	}
}

// AddEvent appends one event, stamping its sequence number from the
// current log length.
func (rr *RoundRecord) AddEvent(eventType string, seatIndex int, data map[string]interface{}) {
	rr.Events = append(rr.Events, RoundEvent{
		Sequence:  len(rr.Events),
		EventType: eventType,
		Timestamp: time.Now(),
		SeatIndex: seatIndex,
		Data:      data,
	})
}

// Complete sets the round's final outcome and end timestamp.
func (rr *RoundRecord) Complete(result *RoundResult) {
	rr.EndTime = time.Now()
	rr.Result = result
}

// GameRecord is the parent document for a full game (a sequence of
// rounds played until the game-end condition in spec.md §6).
type GameRecord struct {
	ID          primitive.ObjectID `bson:"_id"`
	TableID     string             `bson:"table_id"`
	NumPlayers  int                `bson:"num_players"`
	StartTime   time.Time          `bson:"start_time"`
	EndTime     time.Time          `bson:"end_time"`
	FinalScores []int              `bson:"final_scores"`
	Status      string             `bson:"status"` // "in_progress", "completed", "aborted"
	CreatedAt   time.Time          `bson:"created_at"`
}

// NewGameRecord starts a fresh game document.
func NewGameRecord(tableID string, numPlayers int) *GameRecord {
	return &GameRecord{
		ID:         primitive.NewObjectID(),
		TableID:    tableID,
		NumPlayers: numPlayers,
		StartTime:  time.Now(),
		Status:     "in_progress",
		CreatedAt:  time.Now(),
	}
}

// Complete marks the game finished with its final per-seat scores.
func (gr *GameRecord) Complete(finalScores []int) {
	gr.EndTime = time.Now()
	gr.FinalScores = finalScores
	gr.Status = "completed"
}

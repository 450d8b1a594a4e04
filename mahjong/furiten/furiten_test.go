package furiten

import (
	"testing"

	"riichi/mahjong/tile"
)

func TestDiscardFuritenChecksOwnDiscardsAgainstWaits(t *testing.T) {
	s := NewState()
	s.RecordDiscard(tile.Man3)
	waits := []tile.Kind{tile.Man3, tile.Man6}
	if !IsDiscardFuriten(s.Discards, waits) {
		t.Fatalf("expected permanent furiten: own discard matches a wait")
	}
}

func TestTemporaryFuritenClearsOnNextDraw(t *testing.T) {
	s := NewState()
	s.RecordPassedWait(false)
	if !s.IsRonBlocked(nil) {
		t.Fatalf("expected temporary furiten to block ron right after a miss")
	}
	s.ClearTurnFlag()
	if s.IsRonBlocked(nil) {
		t.Fatalf("temporary furiten must clear once the seat's own turn comes around")
	}
}

func TestRiichiFuritenNeverClears(t *testing.T) {
	s := NewState()
	s.RecordPassedWait(true)
	s.ClearTurnFlag()
	if !s.IsRonBlocked(nil) {
		t.Fatalf("riichi furiten must persist across turn boundaries")
	}
}

// Package wall builds and deals the live wall plus the 14-tile dead wall,
// generalizing the teacher's DeckManager/Wang
// (runtime/game/engines/mahjong/material.go) to the spec's explicit dead-wall
// slot layout and the three-player 108-tile universe.
package wall

import (
	"math/rand"

	"riichi/mahjong/tile"
)

// Config selects the tile-universe size and red-five count.
type Config struct {
	NumPlayers int // 3 or 4
	RedFives   int // 0 or 3
}

// Wall is the live draw source plus the fixed-layout dead wall: even dead
// slots 0,2,4,6,8 are dora indicators, odd slots 1,3,5,7,9 are ura-dora
// indicators, and slots 10..13 are replacement tiles drawn in reverse order
// (13 first, per spec.md §3).
type Wall struct {
	live      []tile.Tile
	liveIndex int
	dead      [14]tile.Tile

	doraRevealed int // 1..5
	uraRevealed  int
	kanIndex     int // next replacement slot, counting down from 13

	sanma bool
}

// New builds and shuffles a fresh wall using rng for the deal.
func New(cfg Config, rng *rand.Rand) *Wall {
	sanma := cfg.NumPlayers == 3
	deck := buildDeck(sanma, cfg.RedFives)
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	w := &Wall{sanma: sanma, doraRevealed: 1, kanIndex: 13}
	deadStart := len(deck) - 14
	w.live = deck[:deadStart]
	copy(w.dead[:], deck[deadStart:])
	return w
}

func buildDeck(sanma bool, redFives int) []tile.Tile {
	var deck []tile.Tile
	redAssigned := map[tile.Kind]bool{}
	for k := tile.Man1; k <= tile.Red; k++ {
		if sanma && !tile.IsSanmaKind(k) {
			continue
		}
		for c := 0; c < 4; c++ {
			red := false
			if redFives > 0 && k.IsFive() && c == 0 && !redAssigned[k] {
				red = true
				redAssigned[k] = true
			}
			deck = append(deck, tile.Tile{Kind: k, Copy: c, Red: red})
		}
	}
	return deck
}

// Remaining reports how many tiles are left to draw from the live wall.
func (w *Wall) Remaining() int { return len(w.live) - w.liveIndex }

// Draw pops the next live tile. ok is false once the live wall is empty.
func (w *Wall) Draw() (t tile.Tile, ok bool) {
	if w.liveIndex >= len(w.live) {
		return tile.Tile{}, false
	}
	t = w.live[w.liveIndex]
	w.liveIndex++
	return t, true
}

// IsLastTile reports whether the live wall is now empty, i.e. the tile
// just drawn was the final live tile.
func (w *Wall) IsLastTile() bool { return w.liveIndex == len(w.live) }

// DrawReplacement pops a replacement tile from the dead wall, counting down
// from slot 13. Used after a kan or kita; ok is false once all four
// replacement tiles have been drawn.
func (w *Wall) DrawReplacement() (tile.Tile, bool) {
	if w.kanIndex < 10 {
		return tile.Tile{}, false
	}
	t := w.dead[w.kanIndex]
	w.kanIndex--
	return t, true
}

// RevealDoraIndicator reveals the next dora indicator slot (even slots
// 0,2,4,6,8) and returns its kind. ok is false once all five are revealed.
func (w *Wall) RevealDoraIndicator() (tile.Kind, bool) {
	if w.doraRevealed > 5 {
		return 0, false
	}
	slot := (w.doraRevealed - 1) * 2
	k := w.dead[slot].Kind
	w.doraRevealed++
	return k, true
}

// DoraIndicators returns every dora indicator kind revealed so far.
func (w *Wall) DoraIndicators() []tile.Kind {
	out := make([]tile.Kind, 0, 5)
	for i := 0; i < w.doraRevealed-1; i++ {
		out = append(out, w.dead[i*2].Kind)
	}
	return out
}

// RevealUraDoraIndicators reveals every ura-dora indicator up to the number
// of dora indicators already revealed — called once at a riichi win.
func (w *Wall) RevealUraDoraIndicators() []tile.Kind {
	w.uraRevealed = w.doraRevealed - 1
	out := make([]tile.Kind, 0, w.uraRevealed)
	for i := 0; i < w.uraRevealed; i++ {
		out = append(out, w.dead[i*2+1].Kind)
	}
	return out
}

// IsSanma reports whether this wall was built for the three-player
// configuration.
func (w *Wall) IsSanma() bool { return w.sanma }

// ReplacementsDrawn reports how many of the four replacement tiles have
// been drawn so far (0..4).
func (w *Wall) ReplacementsDrawn() int { return 13 - w.kanIndex }

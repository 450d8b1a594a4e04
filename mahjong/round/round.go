// Package round runs the single-threaded cooperative round state machine:
// deal, draw, discard, react, score, repeat. Grounded on the teacher's
// RiichiMahjong4p/TurnManager (runtime/game/engines/mahjong/
// riichi_mahjong_4p_engine.go, turn_manager.go), stripped of their
// networked concerns (Worker, gameEvents channel, PlayerTicker timeouts)
// since round play itself is synchronous — those concerns belong to
// whatever transport embeds this package, not to the rules engine.
// Generalized from four seats to three (sanma) via num_players, as
// original_source/mahjong/engine/round.py's RoundState does.
package round

import (
	"context"

	"riichi/cache"
	"riichi/mahjong/action"
	"riichi/mahjong/agari"
	"riichi/mahjong/furiten"
	"riichi/mahjong/hand"
	"riichi/mahjong/meld"
	"riichi/mahjong/scoring"
	"riichi/mahjong/shanten"
	"riichi/mahjong/tile"
	"riichi/mahjong/wall"
)

// InvariantError marks a broken internal invariant — a bug in the engine
// rather than a player's illegal request.
type InvariantError struct{ Msg string }

func (e *InvariantError) Error() string { return "invariant violated: " + e.Msg }

// IllegalActionError marks a legal-looking request the current state
// doesn't actually permit (e.g. discarding a tile not in hand, riichi
// with fewer than 1000 points).
type IllegalActionError struct{ Msg string }

func (e *IllegalActionError) Error() string { return "illegal action: " + e.Msg }

// EventKind tags one entry in the round's append-only event log.
type EventKind int

const (
	EventRoundStart EventKind = iota
	EventDraw
	EventDiscard
	EventCall
	EventRiichiDeclared
	EventTsumo
	EventRon
	EventExhaustiveDraw
	EventAbortiveDraw
	EventRoundEnd
)

// Event is one append-only log entry. Payload carries kind-specific data
// (a *scoring.Result for EventTsumo/EventRon, a meld.Meld for EventCall;
// a kita EventCall carries only the north tile in Tile).
type Event struct {
	Kind    EventKind
	Seat    int
	Tile    tile.Tile
	Payload interface{}
}

// Seat is one player's full round-local state.
type Seat struct {
	Hand    *hand.Hand
	Furiten *furiten.State
	Wind    tile.Kind
	Score   int

	// NorthTiles holds kita declarations (sanma only) — set aside tiles
	// that no longer participate in the hand shape.
	NorthTiles []tile.Tile

	firstDiscard    tile.Kind
	hasFirstDiscard bool
}

// Result is the outcome of a finished round: who won (if anyone), the
// score, and the per-seat point deltas.
type Result struct {
	IsDraw       bool
	IsAbortive   bool
	AbortiveKind string
	WinnerSeat   int
	LoserSeat    int // -1 on tsumo
	Score        *scoring.Result
	Deltas       []int
}

// Round holds everything the state machine mutates across one hand.
type Round struct {
	Seats        []*Seat
	Wall         *wall.Wall
	DealerIndex  int
	Honba        int
	RiichiSticks int
	RoundWind    tile.Kind
	Current      int
	IsSanma      bool

	Events []Event

	// Shanten memoizes exhaustive-draw tenpai checks across seats; nil
	// falls back to calling shanten.Min directly.
	Shanten *cache.ShantenCache

	lastDiscardSeat int
	lastDiscardTile tile.Tile

	isFirstGo          bool // no call has yet broken the initial all-draw sequence
	kanThisTurn        bool // an ankan/kakan/daiminkan just happened; next draw scores as rinshan
	pendingReplacement bool // next draw comes from the dead wall (kan or kita), win doesn't need to score as rinshan
	kanCount           int
	kanSeats           map[int]bool
	riichiCount        int
	Finished           bool
	Result             *Result
}

// New builds a fresh round with num players seated at w's tile universe.
func New(w *wall.Wall, dealerIndex int, honba, riichiSticks int, roundWind tile.Kind, numPlayers int, startingScore int) *Round {
	seats := make([]*Seat, numPlayers)
	for i := range seats {
		seats[i] = &Seat{
			Hand:    hand.New(),
			Furiten: furiten.NewState(),
			Wind:    seatWind(i, dealerIndex, numPlayers),
			Score:   startingScore,
		}
	}
	return &Round{
		Seats:        seats,
		Wall:         w,
		DealerIndex:  dealerIndex,
		Honba:        honba,
		RiichiSticks: riichiSticks,
		RoundWind:    roundWind,
		Current:      dealerIndex,
		IsSanma:      numPlayers == 3,
		isFirstGo:    true,
		kanSeats:     make(map[int]bool),
	}
}

func seatWind(seat, dealer, numPlayers int) tile.Kind {
	offset := (seat - dealer + numPlayers) % numPlayers
	return tile.East + tile.Kind(offset)
}

// Deal draws 13 tiles into every seat in turn order, dealer first.
func (r *Round) Deal() error {
	for i := 0; i < 13; i++ {
		for j := range r.Seats {
			seatIdx := (r.DealerIndex + j) % len(r.Seats)
			t, ok := r.Wall.Draw()
			if !ok {
				return &InvariantError{Msg: "wall exhausted during initial deal"}
			}
			r.Seats[seatIdx].Hand.Closed = append(r.Seats[seatIdx].Hand.Closed, t)
		}
	}
	for _, s := range r.Seats {
		s.Hand.Drawn = nil
	}
	r.log(Event{Kind: EventRoundStart})
	return nil
}

func (r *Round) log(e Event) { r.Events = append(r.Events, e) }

// DrawCurrent draws the next tile for the seat to move, either from the
// live wall or (after a kan) from the dead wall's replacement slot.
func (r *Round) DrawCurrent() ([]action.DrawChoice, error) {
	if r.Finished {
		return nil, &IllegalActionError{Msg: "round already finished"}
	}
	seat := r.Seats[r.Current]

	var t tile.Tile
	var ok bool
	if r.pendingReplacement {
		t, ok = r.Wall.DrawReplacement()
	} else {
		t, ok = r.Wall.Draw()
	}
	if !ok {
		return r.settleExhaustiveDraw(), nil
	}

	seat.Hand.Draw(t)
	seat.Hand.IsIppatsu = false
	seat.Furiten.ClearTurnFlag()
	r.log(Event{Kind: EventDraw, Seat: r.Current, Tile: t})

	isFirstTurn := r.isFirstGo && seat.Hand.IsMenzen() && len(seat.Hand.Discards) == 0
	choices := action.DrawOptions(seat.Hand, seat.Furiten, isFirstTurn, r.IsSanma)
	r.kanThisTurn = r.kanThisTurn && r.pendingReplacement
	r.pendingReplacement = false
	return choices, nil
}

// DeclareTsumo finalizes the round on the current seat's self-draw win.
func (r *Round) DeclareTsumo(doraCount, uraDoraCount, redDoraCount int) (*Result, error) {
	seat := r.Seats[r.Current]
	in := r.scoringInput(r.Current, seat, true, doraCount, uraDoraCount, redDoraCount)
	res, err := scoring.Calculate(in)
	if err != nil {
		return nil, &IllegalActionError{Msg: "tsumo declared without a valid yaku: " + err.Error()}
	}
	r.log(Event{Kind: EventTsumo, Seat: r.Current, Payload: &res})
	return r.finish(&Result{WinnerSeat: r.Current, LoserSeat: -1, Score: &res, Deltas: tsumoDeltas(r, res)}), nil
}

// DeclareRon finalizes the round on seat ronning loserSeat's last discard.
func (r *Round) DeclareRon(seat, loserSeat int, doraCount, uraDoraCount, redDoraCount int) (*Result, error) {
	s := r.Seats[seat]
	winTile := r.Seats[loserSeat].Hand.Discards[len(r.Seats[loserSeat].Hand.Discards)-1].Tile

	waits := agari.WaitingTiles(s.Hand.ToHistogram34())
	if s.Furiten.IsRonBlocked(waits) {
		return nil, &IllegalActionError{Msg: "ron blocked by furiten"}
	}

	closed := s.Hand.ToHistogram34()
	closed[winTile.Kind]++
	in := r.scoringInputWithClosed(seat, s, closed, winTile.Kind, false, doraCount, uraDoraCount, redDoraCount)
	res, err := scoring.Calculate(in)
	if err != nil {
		return nil, &IllegalActionError{Msg: "ron declared without a valid yaku: " + err.Error()}
	}
	r.log(Event{Kind: EventRon, Seat: seat, Tile: winTile, Payload: &res})
	return r.finish(&Result{WinnerSeat: seat, LoserSeat: loserSeat, Score: &res, Deltas: ronDeltas(r, seat, loserSeat, res)}), nil
}

func (r *Round) scoringInput(seat int, s *Seat, isTsumo bool, dora, uraDora, redDora int) scoring.Input {
	closed := s.Hand.ToHistogram34()
	winKind := tile.Kind(0)
	if s.Hand.Drawn != nil {
		winKind = s.Hand.Drawn.Kind
	}
	return r.scoringInputWithClosed(seat, s, closed, winKind, isTsumo, dora, uraDora, redDora)
}

func (r *Round) scoringInputWithClosed(seat int, s *Seat, closed tile.Histogram34, winKind tile.Kind, isTsumo bool, dora, uraDora, redDora int) scoring.Input {
	return scoring.Input{
		ClosedTiles:    closed,
		Melds:          s.Hand.Melds,
		WinKind:        winKind,
		IsTsumo:        isTsumo,
		IsDealer:       seat == r.DealerIndex,
		SeatWind:       s.Wind,
		RoundWind:      r.RoundWind,
		IsRiichi:       s.Hand.IsRiichi && !s.Hand.IsDoubleRiichi,
		IsDoubleRiichi: s.Hand.IsDoubleRiichi,
		IsIppatsu:      s.Hand.IsIppatsu,
		IsHaitei:       isTsumo && r.Wall.Remaining() == 0,
		IsHoutei:       !isTsumo && r.Wall.Remaining() == 0,
		IsRinshan:      isTsumo && r.kanThisTurn,
		DoraCount:      dora,
		UraDoraCount:   uraDora,
		RedDoraCount:   redDora,
		Honba:          r.Honba,
		IsSanma:        r.IsSanma,
	}
}

// Discard moves t from the current seat's hand to its discard pile,
// advances the furiten temporary-miss flag for every other tenpai seat
// that could have won on it, and moves the turn pointer forward.
func (r *Round) Discard(t tile.Tile) error {
	if r.Finished {
		return &IllegalActionError{Msg: "round already finished"}
	}
	seat := r.Seats[r.Current]
	declaring := seat.Hand.RiichiDiscardIdx == len(seat.Hand.Discards)
	if (seat.Hand.IsRiichi || seat.Hand.IsDoubleRiichi) && !declaring && (seat.Hand.Drawn == nil || *seat.Hand.Drawn != t) {
		return &IllegalActionError{Msg: "riichi locks discard to the drawn tile"}
	}
	if !seat.Hand.Discard(t) {
		return &IllegalActionError{Msg: "discarded tile not in hand"}
	}
	seat.Furiten.RecordDiscard(t.Kind)
	r.log(Event{Kind: EventDiscard, Seat: r.Current, Tile: t})

	for i, other := range r.Seats {
		if i == r.Current {
			continue
		}
		waits := agari.WaitingTiles(other.Hand.ToHistogram34())
		for _, w := range waits {
			if w == t.Kind {
				other.Furiten.RecordPassedWait(other.Hand.IsRiichi || other.Hand.IsDoubleRiichi)
				break
			}
		}
	}

	if !declaring {
		seat.Hand.IsIppatsu = false
	}
	r.lastDiscardSeat = r.Current
	r.lastDiscardTile = t

	if !seat.hasFirstDiscard {
		seat.hasFirstDiscard = true
		seat.firstDiscard = t.Kind
		if abort := r.checkFourWindDiscard(); abort != nil {
			r.finish(abort)
			return nil
		}
	}

	if r.riichiCount >= len(r.Seats) && len(r.Seats) >= 4 {
		r.DeclareAbortiveDraw("four_riichi")
		return nil
	}

	r.Current = (r.Current + 1) % len(r.Seats)
	return nil
}

// checkFourWindDiscard detects the abortive draw where every seat's very
// first discard is the same wind tile.
func (r *Round) checkFourWindDiscard() *Result {
	for _, s := range r.Seats {
		if !s.hasFirstDiscard || !s.firstDiscard.IsHonor() || s.firstDiscard > tile.North {
			return nil
		}
	}
	first := r.Seats[0].firstDiscard
	for _, s := range r.Seats[1:] {
		if s.firstDiscard != first {
			return nil
		}
	}
	r.log(Event{Kind: EventAbortiveDraw, Payload: "four_winds"})
	return &Result{IsAbortive: true, AbortiveKind: "four_winds", WinnerSeat: -1, LoserSeat: -1, Deltas: make([]int, len(r.Seats))}
}

// DeclareKyuushuKyuuhai ends the round as an abortive draw on the
// current seat's nine-or-more distinct terminal/honor kinds, uninterrupted.
func (r *Round) DeclareKyuushuKyuuhai() (*Result, error) {
	seat := r.Seats[r.Current]
	if !r.isFirstGo || len(seat.Hand.Discards) != 0 {
		return nil, &IllegalActionError{Msg: "nine-terminals abort only applies on an uninterrupted first turn"}
	}
	hist := seat.Hand.ToHistogram34()
	distinct := 0
	for _, k := range tile.YaochuKinds {
		if hist[k] > 0 {
			distinct++
		}
	}
	if distinct < 9 {
		return nil, &IllegalActionError{Msg: "nine-terminals abort requires nine distinct terminal/honor kinds"}
	}
	r.log(Event{Kind: EventAbortiveDraw, Payload: "kyuushu_kyuuhai"})
	return r.finish(&Result{IsAbortive: true, AbortiveKind: "kyuushu_kyuuhai", WinnerSeat: -1, LoserSeat: -1, Deltas: make([]int, len(r.Seats))}), nil
}

// DeclareKita sets aside the drawn north tile (sanma only) and flags the
// next draw as a dead-wall replacement. Grounded on original_source's
// sanma_rules.can_declare_kita; this rule set does not reveal a new dora
// indicator on kita, unlike a kan.
func (r *Round) DeclareKita() error {
	if !r.IsSanma {
		return &IllegalActionError{Msg: "north-declare only exists in three-player rules"}
	}
	seat := r.Seats[r.Current]
	t, ok := firstOfKind(seat.Hand.Closed, tile.North)
	if !ok {
		return &IllegalActionError{Msg: "no north tile in hand to declare"}
	}
	seat.Hand.RemoveOne(t)
	seat.NorthTiles = append(seat.NorthTiles, t)
	r.breakAllIppatsu()
	r.pendingReplacement = true
	r.log(Event{Kind: EventCall, Seat: r.Current, Tile: t})
	return nil
}

// EligibleRonSeats reports which seats (other than discarder) could
// legally ron on discarder's last discard right now, for a transport
// layer to detect a simultaneous triple-ron abort before resolving any
// single DeclareRon.
func (r *Round) EligibleRonSeats(discarder int) []int {
	winTile := r.lastDiscardTile
	var out []int
	for i, s := range r.Seats {
		if i == discarder {
			continue
		}
		closed := s.Hand.ToHistogram34()
		closed[winTile.Kind]++
		if !agari.IsAgari(closed) {
			continue
		}
		waits := agari.WaitingTiles(s.Hand.ToHistogram34())
		if s.Furiten.IsRonBlocked(waits) {
			continue
		}
		out = append(out, i)
	}
	return out
}

// DeclareAbortiveDraw finalizes the round as an abortive draw of the
// given kind (e.g. "triple_ron", "four_kan", "four_riichi") with zero
// deltas. It does not touch Honba or DealerIndex, and Result carries no
// next-dealer or next-honba value.
func (r *Round) DeclareAbortiveDraw(kind string) *Result {
	r.log(Event{Kind: EventAbortiveDraw, Payload: kind})
	return r.finish(&Result{IsAbortive: true, AbortiveKind: kind, WinnerSeat: -1, LoserSeat: -1, Deltas: make([]int, len(r.Seats))})
}

// DeclareChi claims the last discard into a sequence starting at base,
// moving the turn to seat immediately (it owes a discard next, not a
// draw). Only the seat directly downstream of the discarder may chi.
func (r *Round) DeclareChi(seat int, base tile.Kind) error {
	discarder := r.lastDiscardSeat
	if (discarder+1)%len(r.Seats) != seat {
		return &IllegalActionError{Msg: "only the next seat in turn order may chi"}
	}
	return r.claim(seat, discarder, meld.Sequence, func(closed tile.Histogram34) ([]tile.Tile, bool) {
		need := [3]tile.Kind{base, base + 1, base + 2}
		var consumed []tile.Tile
		for _, k := range need {
			if k == r.lastDiscardTile.Kind {
				continue
			}
			t, ok := firstOfKind(r.Seats[seat].Hand.Closed, k)
			if !ok {
				return nil, false
			}
			consumed = append(consumed, t)
		}
		return consumed, true
	})
}

// DeclarePon claims the last discard into an open triplet.
func (r *Round) DeclarePon(seat int) error {
	return r.claim(seat, r.lastDiscardSeat, meld.Triplet, func(closed tile.Histogram34) ([]tile.Tile, bool) {
		if closed[r.lastDiscardTile.Kind] < 2 {
			return nil, false
		}
		return takeN(r.Seats[seat].Hand.Closed, r.lastDiscardTile.Kind, 2), true
	})
}

// DeclareDaiminkan claims the last discard into an open kan, flagging
// the next draw as a replacement draw.
func (r *Round) DeclareDaiminkan(seat int) error {
	err := r.claim(seat, r.lastDiscardSeat, meld.OpenKan, func(closed tile.Histogram34) ([]tile.Tile, bool) {
		if closed[r.lastDiscardTile.Kind] < 3 {
			return nil, false
		}
		return takeN(r.Seats[seat].Hand.Closed, r.lastDiscardTile.Kind, 3), true
	})
	if err != nil {
		return err
	}
	r.revealKanDora()
	r.kanThisTurn = true
	r.pendingReplacement = true
	r.registerKan(seat)
	return nil
}

// claim is the shared machinery behind chi/pon/daiminkan: mark the
// discarder's last discard as claimed, pull the consuming tiles plus the
// claimed one into a new open meld, hand the turn to seat, and break
// ippatsu everywhere since any call invalidates it.
func (r *Round) claim(seat, discarder int, variant meld.Variant, pick func(tile.Histogram34) ([]tile.Tile, bool)) error {
	if len(r.Seats[discarder].Hand.Discards) == 0 {
		return &InvariantError{Msg: "claim attempted with no prior discard"}
	}
	last := &r.Seats[discarder].Hand.Discards[len(r.Seats[discarder].Hand.Discards)-1]
	if last.Claimed {
		return &IllegalActionError{Msg: "discard already claimed"}
	}

	reactor := r.Seats[seat]
	consumed, ok := pick(reactor.Hand.ToHistogram34())
	if !ok {
		return &IllegalActionError{Msg: "seat lacks the tiles required for this call"}
	}
	for _, t := range consumed {
		reactor.Hand.RemoveOne(t)
	}

	tiles := append(append([]tile.Tile(nil), consumed...), r.lastDiscardTile)
	m := meld.Meld{Variant: variant, Tiles: tiles, Called: r.lastDiscardTile, HasCalled: true, FromSeat: discarder}
	reactor.Hand.Melds = append(reactor.Hand.Melds, m)

	last.Claimed = true
	r.breakAllIppatsu()
	r.isFirstGo = false
	r.Current = seat
	r.log(Event{Kind: EventCall, Seat: seat, Tile: r.lastDiscardTile, Payload: m})
	return nil
}

func firstOfKind(tiles []tile.Tile, k tile.Kind) (tile.Tile, bool) {
	for _, t := range tiles {
		if t.Kind == k {
			return t, true
		}
	}
	return tile.Tile{}, false
}

func takeN(tiles []tile.Tile, k tile.Kind, n int) []tile.Tile {
	var out []tile.Tile
	for _, t := range tiles {
		if t.Kind == k && len(out) < n {
			out = append(out, t)
		}
	}
	return out
}

// DeclareRiichi marks the current seat's hand as riichi (or double riichi
// if declared on the very first uninterrupted discard) and posts the
// stick. This only marks intent: the caller must still follow with
// Discard for the chosen tile, which is where the four-riichi abortive
// draw (if this is the fourth declaration) actually fires, after that
// discard is recorded.
func (r *Round) DeclareRiichi(isDouble bool) error {
	seat := r.Seats[r.Current]
	if !seat.Hand.IsMenzen() || seat.Hand.IsRiichi {
		return &IllegalActionError{Msg: "riichi requires a closed, not-already-riichi hand"}
	}
	if seat.Score < 1000 {
		return &IllegalActionError{Msg: "riichi requires at least 1000 points"}
	}
	if r.Wall.Remaining() < len(r.Seats) {
		return &IllegalActionError{Msg: "too few tiles left to declare riichi"}
	}
	seat.Hand.IsRiichi = true
	seat.Hand.IsDoubleRiichi = isDouble
	seat.Hand.IsIppatsu = true
	seat.Hand.RiichiDiscardIdx = len(seat.Hand.Discards)
	seat.Score -= 1000
	r.RiichiSticks++
	r.log(Event{Kind: EventRiichiDeclared, Seat: r.Current})
	r.riichiCount++
	return nil
}

// DeclareAnkan consumes four of kind k from the current seat's closed
// hand into a concealed kan, flags the next draw as rinshan, and clears
// ippatsu eligibility for every seat (a kan always breaks ippatsu).
func (r *Round) DeclareAnkan(k tile.Kind) error {
	seat := r.Seats[r.Current]
	var tiles []tile.Tile
	for _, t := range seat.Hand.Closed {
		if t.Kind == k && len(tiles) < 4 {
			tiles = append(tiles, t)
		}
	}
	if len(tiles) < 4 {
		return &IllegalActionError{Msg: "ankan requires four copies of the kind in hand"}
	}
	if (seat.Hand.IsRiichi || seat.Hand.IsDoubleRiichi) && !action.AnkanPreservesWait(seat.Hand, k) {
		return &IllegalActionError{Msg: "riichi ankan must preserve the hand's wait"}
	}
	for _, t := range tiles {
		seat.Hand.RemoveOne(t)
	}
	seat.Hand.Melds = append(seat.Hand.Melds, meld.Meld{Variant: meld.ClosedKan, Tiles: tiles})
	r.revealKanDora()
	r.breakAllIppatsu()
	r.kanThisTurn = true
	r.pendingReplacement = true
	r.log(Event{Kind: EventCall, Seat: r.Current, Payload: seat.Hand.Melds[len(seat.Hand.Melds)-1]})
	r.registerKan(r.Current)
	return nil
}

// DeclareKakan upgrades an existing open triplet of k into an added kan
// using the matching fourth tile drawn into hand.
func (r *Round) DeclareKakan(k tile.Kind) error {
	seat := r.Seats[r.Current]
	idx := -1
	for i, m := range seat.Hand.Melds {
		if m.Variant == meld.Triplet && m.BaseKind() == k {
			idx = i
			break
		}
	}
	if idx == -1 {
		return &IllegalActionError{Msg: "no open triplet to upgrade into a kakan"}
	}
	var added tile.Tile
	found := false
	for _, t := range seat.Hand.Closed {
		if t.Kind == k {
			added, found = t, true
			break
		}
	}
	if !found {
		return &IllegalActionError{Msg: "kakan requires the fourth tile in hand"}
	}
	seat.Hand.RemoveOne(added)
	upgraded := seat.Hand.Melds[idx]
	upgraded.Variant = meld.AddedKan
	upgraded.Tiles = append(upgraded.Tiles, added)
	seat.Hand.Melds[idx] = upgraded
	r.revealKanDora()
	r.breakAllIppatsu()
	r.kanThisTurn = true
	r.pendingReplacement = true
	r.log(Event{Kind: EventCall, Seat: r.Current, Payload: upgraded})
	r.registerKan(r.Current)
	return nil
}

// registerKan tracks how many kans have been called and by how many
// distinct seats; the round controller's caller should check Finished
// right after any kan declaration, since a fourth kan spread across two
// or more seats aborts the hand (a fourth kan by one seat alone is the
// suukantsu yakuman path instead, not an abort).
func (r *Round) registerKan(seat int) {
	r.kanCount++
	r.kanSeats[seat] = true
	if r.kanCount >= 4 && len(r.kanSeats) >= 2 {
		r.DeclareAbortiveDraw("four_kan")
	}
}

func (r *Round) revealKanDora() { r.Wall.RevealDoraIndicator() }

func (r *Round) breakAllIppatsu() {
	for _, s := range r.Seats {
		s.Hand.IsIppatsu = false
	}
}

// minShanten computes shanten for a histogram, consulting r.Shanten when
// it's wired up instead of recomputing the backtracking search every
// time — the exhaustive-draw settlement calls this once per seat.
func (r *Round) minShanten(h tile.Histogram34, meldedGroups int) int {
	if r.Shanten == nil {
		return shanten.Min(h, meldedGroups)
	}
	key := cache.HistogramKey(h, meldedGroups)
	if v, ok := r.Shanten.Get(context.Background(), key); ok {
		return v
	}
	v := shanten.Min(h, meldedGroups)
	r.Shanten.Put(context.Background(), key, v)
	return v
}

// settleExhaustiveDraw ends the round on a drawn-out wall: tenpai seats
// split the no-ten penalty from noten seats.
func (r *Round) settleExhaustiveDraw() []action.DrawChoice {
	const penaltyPool = 3000
	tenpai := make([]bool, len(r.Seats))
	tenpaiCount := 0
	for i, s := range r.Seats {
		sh := r.minShanten(s.Hand.ToHistogram34(), s.Hand.MeldedKindCount())
		tenpai[i] = sh == 0
		if tenpai[i] {
			tenpaiCount++
		}
	}
	deltas := make([]int, len(r.Seats))
	notenCount := len(r.Seats) - tenpaiCount
	if tenpaiCount > 0 && notenCount > 0 {
		perNoten := penaltyPool / notenCount
		perTenpai := penaltyPool / tenpaiCount
		for i := range r.Seats {
			if tenpai[i] {
				deltas[i] = perTenpai
			} else {
				deltas[i] = -perNoten
			}
		}
	}
	for i, d := range deltas {
		r.Seats[i].Score += d
	}
	r.log(Event{Kind: EventExhaustiveDraw})
	r.finish(&Result{IsDraw: true, WinnerSeat: -1, LoserSeat: -1, Deltas: deltas})
	return nil
}

func (r *Round) finish(res *Result) *Result {
	r.Finished = true
	r.Result = res
	r.log(Event{Kind: EventRoundEnd, Payload: res})
	return res
}

func tsumoDeltas(r *Round, res scoring.Result) []int {
	deltas := make([]int, len(r.Seats))
	winner := r.Current
	p := res.Payment
	if winner == r.DealerIndex {
		for i := range r.Seats {
			if i != winner {
				deltas[i] = -p.EachNonDealerPays
				deltas[winner] += p.EachNonDealerPays
			}
		}
	} else {
		deltas[r.DealerIndex] = -p.DealerPays
		deltas[winner] += p.DealerPays
		for i := range r.Seats {
			if i != winner && i != r.DealerIndex {
				deltas[i] = -p.EachNonDealerPays
				deltas[winner] += p.EachNonDealerPays
			}
		}
	}
	deltas[winner] += r.RiichiSticks * 1000
	for i := range r.Seats {
		r.Seats[i].Score += deltas[i]
	}
	return deltas
}

func ronDeltas(r *Round, winner, loser int, res scoring.Result) []int {
	deltas := make([]int, len(r.Seats))
	deltas[loser] = -res.Payment.RonPays
	deltas[winner] = res.Payment.RonPays + r.RiichiSticks*1000
	for i := range r.Seats {
		r.Seats[i].Score += deltas[i]
	}
	return deltas
}

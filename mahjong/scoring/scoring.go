// Package scoring assembles the final score from a completed hand: it
// tries every standard decomposition plus the chiitoi/kokushi shapes,
// runs the yaku catalog and fu calculator against each, and keeps the
// highest-scoring result. Grounded on the teacher's callHuPoints/
// calculateBasePoints/getFixedPoints (runtime/game/engines/mahjong/
// score_calculator.go), generalized past its single EndKind/4-player
// assumptions using the base-points ladder and per-payment rounding from
// original_source/mahjong/rules/scoring.py.
package scoring

import (
	"errors"

	"riichi/mahjong/agari"
	"riichi/mahjong/fu"
	"riichi/mahjong/meld"
	"riichi/mahjong/tile"
	"riichi/mahjong/yaku"
)

// ErrNoYaku is returned when no candidate decomposition carries a real
// yaku — dora, ura-dora, and red-fives alone never complete a hand.
var ErrNoYaku = errors.New("scoring: no candidate decomposition has a real yaku")

// Input bundles a completed hand and every contextual flag scoring needs.
// ClosedTiles holds only the tiles still in hand (including the winning
// tile); called melds are listed separately.
type Input struct {
	ClosedTiles tile.Histogram34
	Melds       []meld.Meld

	WinKind tile.Kind
	IsTsumo bool
	IsDealer bool

	SeatWind  tile.Kind
	RoundWind tile.Kind

	IsRiichi       bool
	IsDoubleRiichi bool
	IsIppatsu      bool

	IsHaitei  bool
	IsHoutei  bool
	IsRinshan bool
	IsChankan bool

	IsTenhou  bool
	IsChiihou bool

	DoraCount    int
	UraDoraCount int
	RedDoraCount int

	Honba  int
	IsSanma bool
}

// IsMenzen reports whether the hand is still closed: every meld is a
// ClosedKan, which alone doesn't open a hand.
func (in Input) IsMenzen() bool {
	for _, m := range in.Melds {
		if m.IsOpen() {
			return false
		}
	}
	return true
}

// Payment is the per-seat settlement for one scored win.
type Payment struct {
	// DealerPays is what the dealer pays on a non-dealer's tsumo.
	DealerPays int
	// EachNonDealerPays is what each non-dealer pays: the full tsumo share
	// on a dealer win, or the "other" non-dealers' share on a non-dealer's
	// tsumo.
	EachNonDealerPays int
	// RonPays is what the discarder alone pays.
	RonPays int
	Total   int
}

// Result is the final, chosen-best scoring outcome.
type Result struct {
	Yaku       []yaku.Han
	Han        int
	Fu         int
	BasePoints int
	IsYakuman  bool
	Payment    Payment
}

type candidate struct {
	hans []yaku.Han
	fu   int
}

// Calculate tries every candidate decomposition of the hand and returns
// the highest-scoring one that carries a real yaku.
func Calculate(in Input) (Result, error) {
	allTiles := in.ClosedTiles
	for _, m := range in.Melds {
		for _, t := range m.Tiles {
			allTiles[t.Kind]++
		}
	}

	var candidates []candidate

	if len(in.Melds) == 0 && agari.IsSevenPairs(in.ClosedTiles) {
		ctx := baseContext(in, allTiles)
		ctx.IsChiitoi = true
		hans := yaku.Detect(ctx)
		if yaku.HasRealYaku(hans) {
			candidates = append(candidates, candidate{hans: hans, fu: fu.Calculate(fu.Input{IsChiitoi: true})})
		}
	}

	if len(in.Melds) == 0 && agari.IsThirteenOrphans(in.ClosedTiles) {
		ctx := baseContext(in, allTiles)
		ctx.IsKokushi = true
		candidates = append(candidates, candidate{hans: yaku.Detect(ctx), fu: 0})
	}

	for _, d := range agari.DecomposeStandard(in.ClosedTiles) {
		ctx := baseContext(in, allTiles)
		ctx.Head = d.Head
		ctx.Groups = d.Groups

		openBase, hasOpenTriplet := firstRonOpenTriplet(in, d)
		if hasOpenTriplet {
			ctx.HasShanponRonDowngrade = true
			ctx.ShanponRonGroup = openBase
		}

		hans := yaku.Detect(ctx)
		if !yaku.HasRealYaku(hans) {
			continue
		}

		pinfu := false
		for _, h := range hans {
			if h.Name == "pinfu" {
				pinfu = true
			}
		}

		fuValue := fu.Calculate(fu.Input{
			Head:      d.Head,
			Groups:    d.Groups,
			Melds:     in.Melds,
			WinKind:   in.WinKind,
			IsTsumo:   in.IsTsumo,
			IsMenzen:  in.IsMenzen(),
			SeatWind:  in.SeatWind,
			RoundWind: in.RoundWind,
			IsPinfu:   pinfu,
		})

		candidates = append(candidates, candidate{hans: hans, fu: fuValue})
	}

	if len(candidates) == 0 {
		return Result{}, ErrNoYaku
	}

	best := candidates[0]
	bestPoints := totalPoints(best, in)
	for _, c := range candidates[1:] {
		if p := totalPoints(c, in); p > bestPoints {
			best, bestPoints = c, p
		}
	}

	return buildResult(best, in), nil
}

func baseContext(in Input, allTiles tile.Histogram34) yaku.Context {
	return yaku.Context{
		AllTiles:       allTiles,
		Melds:          in.Melds,
		WinKind:        in.WinKind,
		IsTsumo:        in.IsTsumo,
		IsMenzen:       in.IsMenzen(),
		IsRiichi:       in.IsRiichi,
		IsDoubleRiichi: in.IsDoubleRiichi,
		IsIppatsu:      in.IsIppatsu,
		SeatWind:       in.SeatWind,
		RoundWind:      in.RoundWind,
		IsHaitei:       in.IsHaitei,
		IsHoutei:       in.IsHoutei,
		IsRinshan:      in.IsRinshan,
		IsChankan:      in.IsChankan,
		IsTenhou:       in.IsTenhou,
		IsChiihou:      in.IsChiihou,
		DoraCount:      in.DoraCount,
		UraDoraCount:   in.UraDoraCount,
		RedDoraCount:   in.RedDoraCount,
	}
}

// firstRonOpenTriplet mirrors mahjong/fu's winTripletCredited rule: on
// ron, the first triplet matching the winning tile (when the win isn't
// absorbed into a sequence) is the one that must not count as concealed
// for sanankou/suuankou either.
func firstRonOpenTriplet(in Input, d agari.Decomposition) (tile.Kind, bool) {
	if in.IsTsumo {
		return 0, false
	}
	for _, g := range d.Groups {
		if g.Kind == agari.Sequence && in.WinKind >= g.Base && in.WinKind <= g.Base+2 {
			return 0, false
		}
	}
	for _, g := range d.Groups {
		if g.Kind == agari.Triplet && g.Base == in.WinKind {
			return g.Base, true
		}
	}
	return 0, false
}

func totalPoints(c candidate, in Input) int {
	base := basePoints(c.hans, c.fu)
	return buildPayment(base, in).Total
}

func buildResult(c candidate, in Input) Result {
	base := basePoints(c.hans, c.fu)
	han := yaku.TotalHan(c.hans)
	return Result{
		Yaku:       c.hans,
		Han:        han,
		Fu:         c.fu,
		BasePoints: base,
		IsYakuman:  han >= 13,
		Payment:    buildPayment(base, in),
	}
}

// basePoints implements the base-points ladder: yakuman hands (one or
// more 13+-han entries) multiply 8000 by how many stacked; otherwise
// mangan-and-up uses the fixed han ladder, and everything below falls
// back to fu*2^(2+han) capped at 2000.
func basePoints(hans []yaku.Han, fuValue int) int {
	yakumanMult := 0
	for _, h := range hans {
		if h.Han >= 13 {
			yakumanMult += h.Han / 13
		}
	}
	if yakumanMult > 0 {
		return 8000 * yakumanMult
	}

	han := yaku.TotalHan(hans)
	switch {
	case han >= 11:
		return 6000
	case han >= 8:
		return 4000
	case han >= 6:
		return 3000
	case han == 5:
		return 2000
	default:
		base := fuValue * (1 << (2 + han))
		if base > 2000 {
			base = 2000
		}
		return base
	}
}

func buildPayment(base int, in Input) Payment {
	if in.IsTsumo {
		if in.IsDealer {
			each := roundUp100(base*2) + in.Honba*100
			payers := 3
			if in.IsSanma {
				payers = 2
			}
			return Payment{EachNonDealerPays: each, Total: each * payers}
		}
		dealerPay := roundUp100(base*2) + in.Honba*100
		otherPay := roundUp100(base) + in.Honba*100
		others := 2
		if in.IsSanma {
			others = 1
		}
		return Payment{
			DealerPays:        dealerPay,
			EachNonDealerPays: otherPay,
			Total:             dealerPay + otherPay*others,
		}
	}

	honbaPerHan := 300
	if in.IsSanma {
		honbaPerHan = 200
	}
	var pay int
	if in.IsDealer {
		pay = roundUp100(base*6) + in.Honba*honbaPerHan
	} else {
		pay = roundUp100(base*4) + in.Honba*honbaPerHan
	}
	return Payment{RonPays: pay, Total: pay}
}

func roundUp100(v int) int {
	return ((v + 99) / 100) * 100
}

// Package fu computes fu (minor points) from a chosen decomposition and
// contextual flags. The teacher's score_calculator.go leaves calculateFu's
// sub-helpers (checkPinfu, calculatePairFu, calculateWaitFu) as TODO stubs
// returning 0/false; this package fills them in, resolving the open-vs-
// closed triplet rule and the penchan/kanchan edge cases against
// original_source/mahjong/rules/fu.py, which the teacher's Go code never
// carried over.
package fu

import (
	"riichi/mahjong/agari"
	"riichi/mahjong/meld"
	"riichi/mahjong/tile"
)

// Input bundles everything calculateFu's sub-helpers in the teacher needed
// but never received as parameters.
type Input struct {
	Head       tile.Kind
	Groups     []agari.Group // closed-hand groups from the chosen decomposition
	Melds      []meld.Meld   // called melds, already excluded from Groups
	WinKind    tile.Kind
	IsTsumo    bool
	IsMenzen   bool
	SeatWind   tile.Kind
	RoundWind  tile.Kind
	IsPinfu    bool
	IsChiitoi  bool
}

// Calculate returns the final, round-to-10 fu value.
func Calculate(in Input) int {
	if in.IsChiitoi {
		return 25
	}

	if in.IsPinfu {
		if in.IsTsumo {
			return 20
		}
		return 30
	}

	fu := 20

	winInSequence := false
	for _, g := range in.Groups {
		if g.Kind == agari.Sequence && in.WinKind >= g.Base && in.WinKind <= g.Base+2 {
			winInSequence = true
		}
	}

	winTripletCredited := false
	for _, g := range in.Groups {
		if g.Kind != agari.Triplet {
			continue
		}
		open := false
		if !in.IsTsumo && !winInSequence && !winTripletCredited && g.Base == in.WinKind {
			open = true
			winTripletCredited = true
		}
		fu += tripletFu(g.Base, open)
	}

	for _, m := range in.Melds {
		fu += meldFu(m)
	}

	fu += headFu(in.Head, in.SeatWind, in.RoundWind)
	fu += waitFu(in)

	if in.IsTsumo {
		fu += 2
	} else if in.IsMenzen {
		fu += 10
	}

	if !in.IsMenzen && fu == 20 {
		fu = 30
	}

	return roundUp10(fu)
}

func tripletFu(k tile.Kind, open bool) int {
	yaochu := k.IsYaochu()
	switch {
	case open && yaochu:
		return 4
	case open && !yaochu:
		return 2
	case !open && yaochu:
		return 8
	default:
		return 4
	}
}

func meldFu(m meld.Meld) int {
	yaochu := m.BaseKind().IsYaochu()
	switch m.Variant {
	case meld.ClosedKan:
		if yaochu {
			return 32
		}
		return 16
	case meld.OpenKan, meld.AddedKan:
		if yaochu {
			return 16
		}
		return 8
	case meld.Triplet:
		if yaochu {
			return 4
		}
		return 2
	default: // Sequence
		return 0
	}
}

func headFu(head, seatWind, roundWind tile.Kind) int {
	fu := 0
	if head == seatWind {
		fu += 2
	}
	if head == roundWind {
		fu += 2
	}
	if head == tile.White || head == tile.Green || head == tile.Red {
		fu += 2
	}
	return fu
}

// waitFu scores the winning tile's position: tanki (head wait), kanchan
// (closed wait, the middle of a sequence), penchan (the 3 of 1-2-3, or the
// 7 of 7-8-9), each worth +2; ryanmen/shanpon score 0.
func waitFu(in Input) int {
	if in.WinKind == in.Head {
		return 2
	}
	for _, g := range in.Groups {
		if g.Kind != agari.Sequence {
			continue
		}
		if in.WinKind < g.Base || in.WinKind > g.Base+2 {
			continue
		}
		mid := g.Base + 1
		if in.WinKind == mid {
			return 2 // kanchan
		}
		low := int(g.Base) % 9
		if low == 0 && in.WinKind == g.Base+2 {
			return 2 // penchan: 1-2-3 waiting on 3
		}
		if low == 6 && in.WinKind == g.Base {
			return 2 // penchan: 7-8-9 waiting on 7
		}
		return 0 // ryanmen
	}
	return 0 // shanpon (winning tile closes a triplet, not scored here)
}

func roundUp10(fu int) int {
	return ((fu + 9) / 10) * 10
}

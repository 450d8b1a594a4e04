package agari

import (
	"testing"

	"riichi/mahjong/shanten"
	"riichi/mahjong/tile"
)

func hist(kinds ...tile.Kind) tile.Histogram34 {
	var h tile.Histogram34
	for _, k := range kinds {
		h[k]++
	}
	return h
}

func TestStandardAgariAndShantenDuality(t *testing.T) {
	h := hist(
		tile.Man1, tile.Man2, tile.Man3,
		tile.Pin4, tile.Pin5, tile.Pin6,
		tile.So7, tile.So8, tile.So9,
		tile.East, tile.East, tile.East,
		tile.White, tile.White,
	)
	if !IsAgari(h) {
		t.Fatalf("expected complete hand to be agari")
	}
	decomps := DecomposeStandard(h)
	if len(decomps) == 0 {
		t.Fatalf("expected at least one decomposition")
	}
	if got := shanten.Min(h, 0); got != shanten.Complete {
		t.Fatalf("shanten.Min() = %d on an agari hand, want %d", got, shanten.Complete)
	}
}

func TestDecompositionDeduplicatesEquivalentOrderings(t *testing.T) {
	// 111222333m 123p EE: 111222333m is ambiguous between
	// (123,123,123) and (111,222,333); each reading must appear once.
	h := hist(
		tile.Man1, tile.Man1, tile.Man1,
		tile.Man2, tile.Man2, tile.Man2,
		tile.Man3, tile.Man3, tile.Man3,
		tile.Pin1, tile.Pin2, tile.Pin3,
		tile.East, tile.East,
	)
	decomps := DecomposeStandard(h)
	if len(decomps) < 2 {
		t.Fatalf("expected multiple decompositions for the 111222333m ambiguity, got %d", len(decomps))
	}
	seen := map[string]bool{}
	for _, d := range decomps {
		key := decompositionKey(d)
		if seen[key] {
			t.Fatalf("decomposition %+v duplicated", d)
		}
		seen[key] = true
	}
}

func TestSevenPairsFourOfAKindDoesNotCount(t *testing.T) {
	h := hist(
		tile.Man1, tile.Man1, tile.Man1, tile.Man1, // four of a kind
		tile.Man9, tile.Man9,
		tile.Pin1, tile.Pin1, tile.Pin9, tile.Pin9,
		tile.So1, tile.So1, tile.So9, tile.So9,
	)
	if IsSevenPairs(h) {
		t.Fatalf("four-of-a-kind must not count as a pair-pair for chiitoi")
	}
}

func TestWaitingTilesSatisfyAgariWhenAdded(t *testing.T) {
	h := hist(
		tile.Man1, tile.Man2, tile.Man3,
		tile.Pin4, tile.Pin5, tile.Pin6,
		tile.So7, tile.So8, tile.So9,
		tile.East, tile.East,
		tile.White, tile.White,
	)
	waits := WaitingTiles(h)
	if len(waits) == 0 {
		t.Fatalf("expected at least one wait")
	}
	for _, w := range waits {
		test := h
		test[w]++
		if !IsAgari(test) {
			t.Fatalf("wait %v does not actually complete the hand", w)
		}
	}
}

func TestThirteenOrphansComplete(t *testing.T) {
	h := hist(
		tile.Man1, tile.Man9, tile.Pin1, tile.Pin9, tile.So1, tile.So9,
		tile.East, tile.South, tile.West, tile.North,
		tile.White, tile.Green, tile.Red, tile.Red,
	)
	if !IsThirteenOrphans(h) {
		t.Fatalf("expected thirteen orphans to be recognized")
	}
	if !IsAgari(h) {
		t.Fatalf("IsAgari must also recognize thirteen orphans")
	}
}

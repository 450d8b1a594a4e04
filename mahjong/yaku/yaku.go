// Package yaku runs the ~40-predicate catalog against a Context built from
// a chosen decomposition. The teacher's runtime/game/engines/mahjong/yaku.go
// already shapes this as a registry of (name, check) pairs over a
// YakuContext, but only its yakuman checkers are implemented — every
// regular yaku is a stub returning (0,0). This package fills in the full
// catalog spec.md §4.4 names, keeping the teacher's registry-of-checks
// shape (see also its design note in spec.md §9 endorsing exactly this
// structure).
package yaku

import (
	"riichi/mahjong/agari"
	"riichi/mahjong/meld"
	"riichi/mahjong/tile"
)

// combined unifies a closed-decomposition Group and a called Meld into one
// shape the predicates can scan uniformly.
type combined struct {
	isSequence bool
	isKan      bool
	open       bool
	base       tile.Kind
}

// Context carries a chosen decomposition plus every contextual flag the
// catalog needs. One Context is built per candidate decomposition by the
// scoring package.
type Context struct {
	Head   tile.Kind
	Groups []agari.Group
	Melds  []meld.Meld

	AllTiles tile.Histogram34 // closed + meld tiles, for tanyao/flush/honor checks

	WinKind  tile.Kind
	IsTsumo  bool
	IsMenzen bool

	IsRiichi       bool
	IsDoubleRiichi bool
	IsIppatsu      bool

	SeatWind  tile.Kind
	RoundWind tile.Kind

	IsHaitei  bool
	IsHoutei  bool
	IsRinshan bool
	IsChankan bool

	IsTenhou  bool // dealer, first turn, self-drawn, no calls yet
	IsChiihou bool // non-dealer, first turn, self-drawn, no calls yet

	IsChiitoi  bool
	IsKokushi  bool

	// HasShanponRonDowngrade marks a ron that completed a shanpon wait on a
	// concealed-looking triplet — that triplet must not count toward
	// sanankou/suuankou, since the hand only looked concealed before the win.
	HasShanponRonDowngrade bool
	ShanponRonGroup        tile.Kind

	DoraCount    int
	UraDoraCount int
	RedDoraCount int
}

// Han is one scored entry: a stable catalog name plus its han value.
type Han struct {
	Name string
	Han  int
}

func (ctx Context) combinedGroups() []combined {
	out := make([]combined, 0, len(ctx.Groups)+len(ctx.Melds))
	for _, g := range ctx.Groups {
		out = append(out, combined{isSequence: g.Kind == agari.Sequence, base: g.Base, open: false})
	}
	for _, m := range ctx.Melds {
		out = append(out, combined{
			isSequence: m.Variant == meld.Sequence,
			isKan:      m.IsKan(),
			open:       m.IsOpen(),
			base:       m.BaseKind(),
		})
	}
	return out
}

// Detect runs the full catalog and returns the yaku list: yakuman entries
// only if any apply (short-circuit), otherwise every matching regular
// yaku plus the non-yaku dora/ura-dora/red-dora entries.
func Detect(ctx Context) []Han {
	if ctx.IsKokushi {
		return []Han{{"kokushi_musou", 13}}
	}

	if ym := detectYakuman(ctx); len(ym) > 0 {
		return ym
	}

	var out []Han
	for _, c := range regularCheckers {
		if h, ok := c.check(ctx); ok {
			out = append(out, h)
		}
	}
	out = append(out, doraHan(ctx)...)
	return out
}

// TotalHan sums every entry's han, dora included.
func TotalHan(hans []Han) int {
	total := 0
	for _, h := range hans {
		total += h.Han
	}
	return total
}

// HasRealYaku reports whether at least one entry is a real yaku rather
// than a dora-family bonus — required before a hand can win at all.
func HasRealYaku(hans []Han) bool {
	for _, h := range hans {
		switch h.Name {
		case "dora", "ura_dora", "red_dora":
			continue
		default:
			return true
		}
	}
	return false
}

func doraHan(ctx Context) []Han {
	var out []Han
	if ctx.DoraCount > 0 {
		out = append(out, Han{"dora", ctx.DoraCount})
	}
	if ctx.UraDoraCount > 0 {
		out = append(out, Han{"ura_dora", ctx.UraDoraCount})
	}
	if ctx.RedDoraCount > 0 {
		out = append(out, Han{"red_dora", ctx.RedDoraCount})
	}
	return out
}

// ---- yakuman ----

func detectYakuman(ctx Context) []Han {
	var out []Han

	if ctx.IsTenhou {
		out = append(out, Han{"tenhou", 13})
	}
	if ctx.IsChiihou {
		out = append(out, Han{"chiihou", 13})
	}

	groups := ctx.combinedGroups()

	if countConcealedTriplets(ctx, groups) == 4 {
		out = append(out, Han{"suuankou", 13})
	}
	if hasDragonTriplets(groups, 3) {
		out = append(out, Han{"daisangen", 13})
	}
	windTriplets := countWindTriplets(groups)
	if windTriplets == 3 && ctx.Head.Suit() == tile.SuitWind {
		out = append(out, Han{"shousuushii", 13})
	}
	if windTriplets == 4 {
		out = append(out, Han{"daisuushii", 13})
	}
	if allTilesMatch(ctx.AllTiles, func(k tile.Kind) bool { return k.IsHonor() }) {
		out = append(out, Han{"tsuuiisou", 13})
	}
	if allTilesMatch(ctx.AllTiles, func(k tile.Kind) bool { return k.IsTerminal() }) {
		out = append(out, Han{"chinroutou", 13})
	}
	if isAllGreen(ctx.AllTiles) {
		out = append(out, Han{"ryuuiisou", 13})
	}
	if isNineGates(ctx) {
		out = append(out, Han{"chuuren_poutou", 13})
	}
	if countKans(groups) == 4 {
		out = append(out, Han{"suukantsu", 13})
	}

	return out
}

func countConcealedTriplets(ctx Context, groups []combined) int {
	count := 0
	for _, g := range groups {
		if g.isSequence || g.open {
			continue
		}
		if !g.isKan && ctx.HasShanponRonDowngrade && g.base == ctx.ShanponRonGroup {
			continue // downgraded: won via shanpon ron on this exact triplet
		}
		count++
	}
	return count
}

func hasDragonTriplets(groups []combined, want int) bool {
	count := 0
	for _, g := range groups {
		if !g.isSequence && (g.base == tile.White || g.base == tile.Green || g.base == tile.Red) {
			count++
		}
	}
	return count >= want
}

func countWindTriplets(groups []combined) int {
	count := 0
	for _, g := range groups {
		if !g.isSequence && g.base.Suit() == tile.SuitWind {
			count++
		}
	}
	return count
}

func countKans(groups []combined) int {
	count := 0
	for _, g := range groups {
		if g.isKan {
			count++
		}
	}
	return count
}

// allTilesMatch reports whether every tile in h satisfies pred. An empty
// histogram never matches — a real hand always carries 13 or 14 tiles, so
// an all-zero Context.AllTiles means the caller hasn't populated it yet,
// not that every (zero) tile vacuously qualifies.
func allTilesMatch(h tile.Histogram34, pred func(tile.Kind) bool) bool {
	if h.Sum() == 0 {
		return false
	}
	for i := 0; i < tile.NumKinds; i++ {
		if h[i] > 0 && !pred(tile.Kind(i)) {
			return false
		}
	}
	return true
}

func isAllGreen(h tile.Histogram34) bool {
	allowed := map[tile.Kind]bool{
		tile.So2: true, tile.So3: true, tile.So4: true,
		tile.So6: true, tile.So8: true, tile.Green: true,
	}
	return allTilesMatch(h, func(k tile.Kind) bool { return allowed[k] })
}

func isNineGates(ctx Context) bool {
	if !ctx.IsMenzen || len(ctx.Melds) > 0 {
		return false
	}
	suit := ctx.WinKind.Suit()
	if suit != tile.SuitMan && suit != tile.SuitPin && suit != tile.SuitSo {
		return false
	}
	base := suitBase(suit)
	if ctx.AllTiles[base] < 3 || ctx.AllTiles[base+8] < 3 {
		return false
	}
	for i := 1; i < 8; i++ {
		if ctx.AllTiles[base+tile.Kind(i)] < 1 {
			return false
		}
	}
	return true
}

func suitBase(s tile.Suit) tile.Kind {
	switch s {
	case tile.SuitMan:
		return tile.Man1
	case tile.SuitPin:
		return tile.Pin1
	default:
		return tile.So1
	}
}

// ---- regular yaku ----

type checker struct {
	name  string
	check func(Context) (Han, bool)
}

var regularCheckers = []checker{
	{"riichi", checkRiichi},
	{"double_riichi", checkDoubleRiichi},
	{"ippatsu", checkIppatsu},
	{"menzen_tsumo", checkMenzenTsumo},
	{"tanyao", checkTanyao},
	{"pinfu", checkPinfu},
	{"iipeikou", checkIipeikou},
	{"ryanpeikou", checkRyanpeikou},
	{"yakuhai_seat", checkYakuhaiSeat},
	{"yakuhai_round", checkYakuhaiRound},
	{"yakuhai_haku", checkYakuhaiHaku},
	{"yakuhai_hatsu", checkYakuhaiHatsu},
	{"yakuhai_chun", checkYakuhaiChun},
	{"haitei", checkHaitei},
	{"houtei", checkHoutei},
	{"rinshan", checkRinshan},
	{"chankan", checkChankan},
	{"chanta", checkChanta},
	{"junchan", checkJunchan},
	{"ittsu", checkIttsu},
	{"sanshoku_doujun", checkSanshokuDoujun},
	{"sanshoku_doukou", checkSanshokuDoukou},
	{"toitoi", checkToitoi},
	{"sanankou", checkSanankou},
	{"honroutou", checkHonroutou},
	{"shousangen", checkShousangen},
	{"chiitoitsu", checkChiitoitsu},
	{"honitsu", checkHonitsu},
	{"chinitsu", checkChinitsu},
}

func checkRiichi(ctx Context) (Han, bool) {
	if ctx.IsRiichi && !ctx.IsDoubleRiichi {
		return Han{"riichi", 1}, true
	}
	return Han{}, false
}

func checkDoubleRiichi(ctx Context) (Han, bool) {
	if ctx.IsDoubleRiichi {
		return Han{"double_riichi", 2}, true
	}
	return Han{}, false
}

func checkIppatsu(ctx Context) (Han, bool) {
	if (ctx.IsRiichi || ctx.IsDoubleRiichi) && ctx.IsIppatsu {
		return Han{"ippatsu", 1}, true
	}
	return Han{}, false
}

func checkMenzenTsumo(ctx Context) (Han, bool) {
	if ctx.IsMenzen && ctx.IsTsumo {
		return Han{"menzen_tsumo", 1}, true
	}
	return Han{}, false
}

func checkTanyao(ctx Context) (Han, bool) {
	if allTilesMatch(ctx.AllTiles, func(k tile.Kind) bool { return !k.IsYaochu() }) {
		return Han{"tanyao", 1}, true
	}
	return Han{}, false
}

func checkPinfu(ctx Context) (Han, bool) {
	if !ctx.IsMenzen || len(ctx.Melds) > 0 || ctx.IsChiitoi {
		return Han{}, false
	}
	for _, g := range ctx.Groups {
		if g.Kind != agari.Sequence {
			return Han{}, false
		}
	}
	if ctx.Head == ctx.SeatWind || ctx.Head == ctx.RoundWind ||
		ctx.Head == tile.White || ctx.Head == tile.Green || ctx.Head == tile.Red {
		return Han{}, false
	}
	if !isRyanmenWait(ctx) {
		return Han{}, false
	}
	return Han{"pinfu", 1}, true
}

func isRyanmenWait(ctx Context) bool {
	for _, g := range ctx.Groups {
		if g.Kind != agari.Sequence {
			continue
		}
		if ctx.WinKind < g.Base || ctx.WinKind > g.Base+2 {
			continue
		}
		mid := g.Base + 1
		if ctx.WinKind == mid {
			return false // kanchan
		}
		low := int(g.Base) % 9
		if low == 0 && ctx.WinKind == g.Base+2 {
			return false // penchan low
		}
		if low == 6 && ctx.WinKind == g.Base {
			return false // penchan high
		}
		return true
	}
	return false
}

func checkIipeikou(ctx Context) (Han, bool) {
	n := countDuplicatedSequences(ctx)
	if ctx.IsMenzen && n == 1 {
		return Han{"iipeikou", 1}, true
	}
	return Han{}, false
}

func checkRyanpeikou(ctx Context) (Han, bool) {
	n := countDuplicatedSequences(ctx)
	if ctx.IsMenzen && n >= 2 {
		return Han{"ryanpeikou", 3}, true
	}
	return Han{}, false
}

// countDuplicatedSequences returns how many (kind, base) sequence pairs
// are duplicated, e.g. two 123m counts as one duplicated pair.
func countDuplicatedSequences(ctx Context) int {
	counts := map[tile.Kind]int{}
	for _, g := range ctx.Groups {
		if g.Kind == agari.Sequence {
			counts[g.Base]++
		}
	}
	dup := 0
	for _, c := range counts {
		dup += c / 2
	}
	return dup
}

func checkYakuhaiSeat(ctx Context) (Han, bool) {
	if hasTriplet(ctx, ctx.SeatWind) && ctx.SeatWind.Suit() == tile.SuitWind {
		return Han{"yakuhai_seat", 1}, true
	}
	return Han{}, false
}

func checkYakuhaiRound(ctx Context) (Han, bool) {
	if hasTriplet(ctx, ctx.RoundWind) && ctx.RoundWind.Suit() == tile.SuitWind {
		return Han{"yakuhai_round", 1}, true
	}
	return Han{}, false
}

func checkYakuhaiHaku(ctx Context) (Han, bool) {
	if hasTriplet(ctx, tile.White) {
		return Han{"yakuhai_haku", 1}, true
	}
	return Han{}, false
}

func checkYakuhaiHatsu(ctx Context) (Han, bool) {
	if hasTriplet(ctx, tile.Green) {
		return Han{"yakuhai_hatsu", 1}, true
	}
	return Han{}, false
}

func checkYakuhaiChun(ctx Context) (Han, bool) {
	if hasTriplet(ctx, tile.Red) {
		return Han{"yakuhai_chun", 1}, true
	}
	return Han{}, false
}

func hasTriplet(ctx Context, k tile.Kind) bool {
	for _, g := range ctx.combinedGroups() {
		if !g.isSequence && g.base == k {
			return true
		}
	}
	return false
}

func checkHaitei(ctx Context) (Han, bool) {
	if ctx.IsHaitei && ctx.IsTsumo {
		return Han{"haitei", 1}, true
	}
	return Han{}, false
}

func checkHoutei(ctx Context) (Han, bool) {
	if ctx.IsHoutei && !ctx.IsTsumo {
		return Han{"houtei", 1}, true
	}
	return Han{}, false
}

func checkRinshan(ctx Context) (Han, bool) {
	if ctx.IsRinshan {
		return Han{"rinshan", 1}, true
	}
	return Han{}, false
}

func checkChankan(ctx Context) (Han, bool) {
	if ctx.IsChankan {
		return Han{"chankan", 1}, true
	}
	return Han{}, false
}

func checkChanta(ctx Context) (Han, bool) {
	return outsideHandYaku(ctx, true)
}

func checkJunchan(ctx Context) (Han, bool) {
	return outsideHandYaku(ctx, false)
}

func outsideHandYaku(ctx Context, allowHonors bool) (Han, bool) {
	if ctx.IsChiitoi {
		return Han{}, false
	}
	if !ctx.Head.IsYaochu() {
		return Han{}, false
	}
	hasHonor := ctx.Head.IsHonor()
	hasSequence := false
	for _, g := range ctx.combinedGroups() {
		if g.isSequence {
			hasSequence = true
			if !g.base.IsYaochu() && !(g.base + 2).IsYaochu() {
				return Han{}, false
			}
			if g.base.IsHonor() || (g.base + 2).IsHonor() {
				hasHonor = true
			}
		} else if !g.base.IsYaochu() {
			return Han{}, false
		} else if g.base.IsHonor() {
			hasHonor = true
		}
	}
	if !hasSequence {
		return Han{}, false
	}
	if hasHonor && !allowHonors {
		return Han{}, false
	}
	if allowHonors {
		if hasHonor {
			if !ctx.IsMenzen {
				return Han{"chanta", 1}, true
			}
			return Han{"chanta", 2}, true
		}
		return Han{}, false // pure case belongs to junchan
	}
	if !hasHonor {
		if !ctx.IsMenzen {
			return Han{"junchan", 2}, true
		}
		return Han{"junchan", 3}, true
	}
	return Han{}, false
}

func checkIttsu(ctx Context) (Han, bool) {
	for _, suit := range []tile.Suit{tile.SuitMan, tile.SuitPin, tile.SuitSo} {
		base := suitBase(suit)
		if hasSequence(ctx, base) && hasSequence(ctx, base+3) && hasSequence(ctx, base+6) {
			if ctx.IsMenzen {
				return Han{"ittsu", 2}, true
			}
			return Han{"ittsu", 1}, true
		}
	}
	return Han{}, false
}

func hasSequence(ctx Context, base tile.Kind) bool {
	for _, g := range ctx.combinedGroups() {
		if g.isSequence && g.base == base {
			return true
		}
	}
	return false
}

func checkSanshokuDoujun(ctx Context) (Han, bool) {
	bases := map[int]map[tile.Suit]bool{}
	for _, g := range ctx.combinedGroups() {
		if !g.isSequence {
			continue
		}
		offset := int(g.base) % 9
		suit := g.base.Suit()
		if suit != tile.SuitMan && suit != tile.SuitPin && suit != tile.SuitSo {
			continue
		}
		if bases[offset] == nil {
			bases[offset] = map[tile.Suit]bool{}
		}
		bases[offset][suit] = true
	}
	for _, suits := range bases {
		if suits[tile.SuitMan] && suits[tile.SuitPin] && suits[tile.SuitSo] {
			if ctx.IsMenzen {
				return Han{"sanshoku_doujun", 2}, true
			}
			return Han{"sanshoku_doujun", 1}, true
		}
	}
	return Han{}, false
}

func checkSanshokuDoukou(ctx Context) (Han, bool) {
	bases := map[int]map[tile.Suit]bool{}
	for _, g := range ctx.combinedGroups() {
		if g.isSequence {
			continue
		}
		suit := g.base.Suit()
		if suit != tile.SuitMan && suit != tile.SuitPin && suit != tile.SuitSo {
			continue
		}
		offset := int(g.base) % 9
		if bases[offset] == nil {
			bases[offset] = map[tile.Suit]bool{}
		}
		bases[offset][suit] = true
	}
	for _, suits := range bases {
		if suits[tile.SuitMan] && suits[tile.SuitPin] && suits[tile.SuitSo] {
			return Han{"sanshoku_doukou", 2}, true
		}
	}
	return Han{}, false
}

func checkToitoi(ctx Context) (Han, bool) {
	if ctx.IsChiitoi {
		return Han{}, false
	}
	for _, g := range ctx.combinedGroups() {
		if g.isSequence {
			return Han{}, false
		}
	}
	return Han{"toitoi", 2}, true
}

func checkSanankou(ctx Context) (Han, bool) {
	if countConcealedTriplets(ctx, ctx.combinedGroups()) >= 3 {
		return Han{"sanankou", 2}, true
	}
	return Han{}, false
}

func checkHonroutou(ctx Context) (Han, bool) {
	if ctx.IsChiitoi {
		return Han{}, false
	}
	if allTilesMatch(ctx.AllTiles, func(k tile.Kind) bool { return k.IsYaochu() }) &&
		!allTilesMatch(ctx.AllTiles, func(k tile.Kind) bool { return k.IsHonor() }) {
		return Han{"honroutou", 2}, true
	}
	return Han{}, false
}

func checkShousangen(ctx Context) (Han, bool) {
	if ctx.Head != tile.White && ctx.Head != tile.Green && ctx.Head != tile.Red {
		return Han{}, false
	}
	if hasDragonTriplets(ctx.combinedGroups(), 2) {
		return Han{"shousangen", 2}, true
	}
	return Han{}, false
}

func checkChiitoitsu(ctx Context) (Han, bool) {
	if ctx.IsChiitoi {
		return Han{"chiitoitsu", 2}, true
	}
	return Han{}, false
}

func checkHonitsu(ctx Context) (Han, bool) {
	suit, hasHonor, pure := singleSuitProfile(ctx.AllTiles)
	if suit == tile.SuitWind && !hasHonor {
		return Han{}, false
	}
	if pure {
		return Han{}, false // no honors present: that's chinitsu's territory
	}
	if suit != tile.SuitWind {
		if ctx.IsMenzen {
			return Han{"honitsu", 3}, true
		}
		return Han{"honitsu", 2}, true
	}
	return Han{}, false
}

func checkChinitsu(ctx Context) (Han, bool) {
	suit, _, pure := singleSuitProfile(ctx.AllTiles)
	if suit == tile.SuitWind || !pure {
		return Han{}, false
	}
	if ctx.IsMenzen {
		return Han{"chinitsu", 6}, true
	}
	return Han{"chinitsu", 5}, true
}

// singleSuitProfile reports which single numeric suit (if any) the whole
// hand is restricted to, whether honors are also present, and whether the
// hand is pure (no honors at all). suit == SuitWind is the sentinel for
// "no single restricting suit found".
func singleSuitProfile(h tile.Histogram34) (suit tile.Suit, hasHonor, pure bool) {
	found := false
	suit = tile.SuitWind
	pure = true
	for i := 0; i < tile.NumKinds; i++ {
		if h[i] == 0 {
			continue
		}
		k := tile.Kind(i)
		if k.IsHonor() {
			hasHonor = true
			pure = false
			continue
		}
		if !found {
			suit = k.Suit()
			found = true
		} else if k.Suit() != suit {
			return tile.SuitWind, false, false
		}
	}
	if !found && !hasHonor {
		return tile.SuitWind, false, false
	}
	if !found {
		// Honors only: not a flush hand by definition here.
		return tile.SuitWind, hasHonor, false
	}
	return suit, hasHonor, pure
}

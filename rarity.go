package exotic

import "fmt"

// Rarity is the Rodarmor rarity tier of a single sat. Declaration order is
// the tier order used for sorting: the six first-sat tiers from Common up to
// Mythic, then the four black tiers for the last sat of a block subsidy.
// There is no black counterpart to Common (it is the fallback in both
// directions) or to Mythic (only sat 0 is mythic, and it is never last).
type Rarity uint8

const (
	Common Rarity = iota
	Uncommon
	Rare
	Epic
	Legendary
	Mythic
	BlackUncommon
	BlackRare
	BlackEpic
	BlackLegendary
)

// Rarities lists every tier in tier order.
var Rarities = []Rarity{
	Common,
	Uncommon,
	Rare,
	Epic,
	Legendary,
	Mythic,
	BlackUncommon,
	BlackRare,
	BlackEpic,
	BlackLegendary,
}

var rarityNames = [...]string{
	Common:         "common",
	Uncommon:       "uncommon",
	Rare:           "rare",
	Epic:           "epic",
	Legendary:      "legendary",
	Mythic:         "mythic",
	BlackUncommon:  "black_uncommon",
	BlackRare:      "black_rare",
	BlackEpic:      "black_epic",
	BlackLegendary: "black_legendary",
}

var raritiesByName = make(map[string]Rarity, len(Rarities))

func init() {
	for _, r := range Rarities {
		raritiesByName[r.String()] = r
	}
}

// String returns the canonical snake-case name of the tier. It is the single
// source of truth for the human and interchange form.
func (r Rarity) String() string {
	if int(r) < len(rarityNames) {
		return rarityNames[r]
	}
	return fmt.Sprintf("rarity(%d)", uint8(r))
}

// ParseRarity is the inverse of String.
func ParseRarity(s string) (Rarity, error) {
	r, ok := raritiesByName[s]
	if !ok {
		return 0, &InvalidRarityError{Input: s}
	}
	return r, nil
}

// Code returns the small-integer form of the tier, Common=0 through
// Mythic=5. The black tiers have no small-integer form and report ok false.
func (r Rarity) Code() (uint8, bool) {
	if r > Mythic {
		return 0, false
	}
	return uint8(r), true
}

// RarityFromCode decodes the small-integer form. Values outside 0-5 fail
// with an *InvalidRarityCodeError carrying the offending value.
func RarityFromCode(code uint8) (Rarity, error) {
	if code > uint8(Mythic) {
		return 0, &InvalidRarityCodeError{Code: code}
	}
	return Rarity(code), nil
}

// Cmp compares two tiers in tier order, returning -1, 0 or 1.
func (r Rarity) Cmp(other Rarity) int {
	switch {
	case r < other:
		return -1
	case r > other:
		return 1
	}
	return 0
}

// InvalidRarityError reports a string that names no tier.
type InvalidRarityError struct {
	Input string
}

func (e *InvalidRarityError) Error() string {
	return fmt.Sprintf("invalid rarity `%s`", e.Input)
}

// InvalidRarityCodeError reports a small-integer form outside 0-5.
type InvalidRarityCodeError struct {
	Code uint8
}

func (e *InvalidRarityCodeError) Error() string {
	return fmt.Sprintf("invalid rarity code %d", e.Code)
}

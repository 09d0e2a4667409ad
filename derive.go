package exotic

// DeriveRarity maps a coordinate and the subsidy of its epoch to a tier.
// It is total: every coordinate satisfying 0 <= SubsidyPosition < subsidy
// maps to exactly one tier. Rules are checked in order, first match wins;
// each rule narrows a strict subset of the one before it.
func DeriveRarity(c Coordinate, subsidy int64) Rarity {
	switch {
	case c.Epoch == 0 && c.EpochPosition == 0 && c.PeriodPosition == 0 && c.SubsidyPosition == 0:
		// The first sat of the entire supply.
		return Mythic
	case c.EpochPosition == 0 && c.PeriodPosition == 0 && c.SubsidyPosition == 0:
		// First sat of an epoch whose first block also opens a difficulty
		// period. On mainnet that alignment recurs every sixth epoch.
		return Legendary
	case c.EpochPosition == 0 && c.SubsidyPosition == 0:
		return Epic
	case c.PeriodPosition == 0 && c.SubsidyPosition == 0:
		return Rare
	case c.SubsidyPosition == 0:
		return Uncommon
	case c.SubsidyPosition == subsidy-1:
		// Last sat of the block subsidy, graded by the boundaries the block
		// closes rather than opens.
		if c.EpochPosition == HalvingInterval-1 {
			if c.PeriodPosition == DifficultyAdjustmentInterval-1 {
				return BlackLegendary
			}
			return BlackEpic
		}
		if c.PeriodPosition == DifficultyAdjustmentInterval-1 {
			return BlackRare
		}
		return BlackUncommon
	default:
		return Common
	}
}

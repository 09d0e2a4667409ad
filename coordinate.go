package exotic

// Coordinate locates a single sat within the emission schedule, coarsest
// level first. It is produced by the ordinal decomposition step and consumed
// by DeriveRarity; this package never computes it from chain data.
type Coordinate struct {
	Epoch           int64 // halving epoch index, 0 for the first epoch
	EpochPosition   int64 // block height relative to the epoch's first block
	PeriodPosition  int64 // block height relative to the difficulty period's first block
	SubsidyPosition int64 // sat index within the block subsidy, 0 <= SubsidyPosition < subsidy
}

package exotic

import (
	"github.com/btcsuite/btcd/chaincfg"
)

// Emission schedule constants. The two intervals are independent protocol
// parameters: on mainnet 210000 is not a multiple of 2016, so a block that
// opens a halving epoch does not in general open a difficulty period. The
// derivation never assumes any divisibility relation between them.
var (
	// HalvingInterval is the number of blocks in one halving epoch.
	HalvingInterval = int64(chaincfg.MainNetParams.SubsidyReductionInterval)

	// DifficultyAdjustmentInterval is the number of blocks in one difficulty
	// adjustment period, computed the same way btcd derives blocksPerRetarget.
	DifficultyAdjustmentInterval = int64(chaincfg.MainNetParams.TargetTimespan /
		chaincfg.MainNetParams.TargetTimePerBlock)
)

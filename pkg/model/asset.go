package model

import (
	"math"
	"strconv"
)

// AssetID identifies a class of fungible carbon credit units. IDs are
// allocated monotonically and never reused, even after the asset is
// destroyed.
type AssetID uint64

// FirstAssetID is the value of the allocation counter before the first asset
// is created; the first allocated ID is FirstAssetID+1.
const FirstAssetID AssetID = 100

// MaxAssetID is the last allocatable identifier.
const MaxAssetID AssetID = math.MaxUint64

// Decimals is the fixed number of decimal places of every carbon asset.
// One whole credit corresponds to 10^9 ledger units.
const Decimals uint8 = 9

func (a AssetID) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

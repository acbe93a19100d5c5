package model

import "math"

// Amount is the unit in which balances, supplies, allowances and burn
// certificates are recorded. All arithmetic on Amounts must be
// overflow-checked before any state is mutated.
type Amount uint64

// MaxAmount is the upper bound of the representable unit range.
const MaxAmount Amount = math.MaxUint64

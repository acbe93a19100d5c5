package ledger

import (
	"time"

	"github.com/iotaledger/hive.go/runtime/options"

	"github.com/carbonledger/carbon-core/pkg/model"
)

// WithClock overrides the time source used to timestamp role registry
// entries. Tests use this to get deterministic entries.
func WithClock(clock func() time.Time) options.Option[Ledger] {
	return func(l *Ledger) {
		l.optsClock = clock
	}
}

// WithInitialAssetID sets the allocator position below the first asset
// identifier that will be handed out.
func WithInitialAssetID(lastID model.AssetID) options.Option[Ledger] {
	return func(l *Ledger) {
		l.optsInitialAssetID = lastID
	}
}

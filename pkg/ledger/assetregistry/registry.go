package assetregistry

import (
	"github.com/iotaledger/hive.go/core/safemath"
	"github.com/iotaledger/hive.go/ds/shrinkingmap"
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/carbonledger/carbon-core/pkg/model"
)

// Asset is the on-ledger record of one class of fungible carbon credit
// units. Supply is mutated exclusively through the balance ledger so that
// supply == sum of balances holds at every observable point.
type Asset struct {
	ID      model.AssetID
	Creator model.AccountID
	Supply  model.Amount
	Frozen  bool
}

// Registry owns the asset catalogue and the monotonic identifier allocator.
// Destroyed assets are removed from the catalogue; their identifiers are
// never handed out again.
type Registry struct {
	assets *shrinkingmap.ShrinkingMap[model.AssetID, *Asset]
	lastID model.AssetID
}

func New(lastID model.AssetID) *Registry {
	return &Registry{
		assets: shrinkingmap.New[model.AssetID, *Asset](),
		lastID: lastID,
	}
}

// Allocate creates a new asset record owned by creator and returns it. It
// fails with ErrAssetIDExhausted once the identifier space is used up,
// leaving the allocator untouched.
func (r *Registry) Allocate(creator model.AccountID) (*Asset, error) {
	nextID, err := safemath.SafeAdd(uint64(r.lastID), 1)
	if err != nil {
		return nil, ierrors.WithMessagef(model.ErrAssetIDExhausted, "last allocated id %d", r.lastID)
	}

	asset := &Asset{
		ID:      model.AssetID(nextID),
		Creator: creator,
	}

	r.lastID = asset.ID
	r.assets.Set(asset.ID, asset)

	return asset, nil
}

// Get returns the asset record for the given identifier.
func (r *Registry) Get(id model.AssetID) (*Asset, bool) {
	return r.assets.Get(id)
}

// Has returns true if the asset exists and has not been destroyed.
func (r *Registry) Has(id model.AssetID) bool {
	return r.assets.Has(id)
}

// LastID returns the most recently allocated identifier.
func (r *Registry) LastID() model.AssetID {
	return r.lastID
}

// Size returns the number of live assets.
func (r *Registry) Size() int {
	return r.assets.Size()
}

// ForEach iterates over all live assets until the consumer returns false.
func (r *Registry) ForEach(consumer func(*Asset) bool) {
	r.assets.ForEach(func(_ model.AssetID, asset *Asset) bool {
		return consumer(asset)
	})
}

// SetFrozen toggles the frozen flag of an existing asset. Existence has been
// validated by the facade; this applier cannot fail.
func (r *Registry) SetFrozen(asset *Asset, frozen bool) {
	asset.Frozen = frozen
}

// SetCreator hands the asset over to a new creator. Authorization has been
// validated by the facade; this applier cannot fail.
func (r *Registry) SetCreator(asset *Asset, creator model.AccountID) {
	asset.Creator = creator
}

// Remove deletes the asset record. The facade guarantees supply is zero and
// no approvals remain before calling.
func (r *Registry) Remove(id model.AssetID) {
	r.assets.Delete(id)
}

package approvalengine

import (
	"github.com/iotaledger/hive.go/ds/shrinkingmap"

	"github.com/carbonledger/carbon-core/pkg/model"
)

type approvalKey struct {
	Asset    model.AssetID
	Owner    model.AccountID
	Delegate model.AccountID
}

// Engine owns delegated-transfer allowances. An approval caps the amount a
// delegate may move out of an owner's balance; it is overwritten (not topped
// up) on re-approval and removed once fully consumed or cancelled.
type Engine struct {
	approvals *shrinkingmap.ShrinkingMap[approvalKey, model.Amount]
}

func New() *Engine {
	return &Engine{
		approvals: shrinkingmap.New[approvalKey, model.Amount](),
	}
}

// Remaining returns the unconsumed allowance for the given triple.
func (e *Engine) Remaining(id model.AssetID, owner model.AccountID, delegate model.AccountID) (model.Amount, bool) {
	return e.approvals.Get(approvalKey{Asset: id, Owner: owner, Delegate: delegate})
}

// Set overwrites the allowance for the given triple. Overwrite semantics
// sidestep the classic race between re-approval and in-flight consumption; a
// zero amount removes the entry.
func (e *Engine) Set(id model.AssetID, owner model.AccountID, delegate model.AccountID, amount model.Amount) {
	key := approvalKey{Asset: id, Owner: owner, Delegate: delegate}
	if amount == 0 {
		e.approvals.Delete(key)
		return
	}

	e.approvals.Set(key, amount)
}

// Spend decrements the allowance by amount, removing the entry at zero. The
// facade has already verified that the remaining allowance covers amount;
// this applier cannot fail.
func (e *Engine) Spend(id model.AssetID, owner model.AccountID, delegate model.AccountID, amount model.Amount) {
	key := approvalKey{Asset: id, Owner: owner, Delegate: delegate}

	remaining, exists := e.approvals.Get(key)
	if !exists || remaining <= amount {
		e.approvals.Delete(key)
		return
	}

	e.approvals.Set(key, remaining-amount)
}

// Cancel removes the allowance for the given triple. It reports whether an
// entry existed; cancelling an absent approval is a successful no-op.
func (e *Engine) Cancel(id model.AssetID, owner model.AccountID, delegate model.AccountID) bool {
	return e.approvals.Delete(approvalKey{Asset: id, Owner: owner, Delegate: delegate})
}

// CountForAsset returns the number of live approvals referencing the asset.
func (e *Engine) CountForAsset(id model.AssetID) int {
	var count int
	e.approvals.ForEach(func(key approvalKey, _ model.Amount) bool {
		if key.Asset == id {
			count++
		}

		return true
	})

	return count
}

// ClearAsset removes every approval referencing the asset. Used when the
// asset is destroyed, after the supply-zero precondition has been enforced.
func (e *Engine) ClearAsset(id model.AssetID) {
	keys := make([]approvalKey, 0)
	e.approvals.ForEach(func(key approvalKey, _ model.Amount) bool {
		if key.Asset == id {
			keys = append(keys, key)
		}

		return true
	})

	for _, key := range keys {
		e.approvals.Delete(key)
	}
}

// Size returns the number of live approvals across all assets.
func (e *Engine) Size() int {
	return e.approvals.Size()
}

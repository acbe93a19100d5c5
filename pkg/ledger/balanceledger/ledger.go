package balanceledger

import (
	"github.com/iotaledger/hive.go/core/safemath"
	"github.com/iotaledger/hive.go/ds/shrinkingmap"
	"github.com/iotaledger/hive.go/ds/types"
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/carbonledger/carbon-core/pkg/ledger/assetregistry"
	"github.com/carbonledger/carbon-core/pkg/model"
)

type balanceKey struct {
	Asset   model.AssetID
	Account model.AccountID
}

// Ledger owns every per-(asset, account) balance and is the sole authority
// allowed to move units between accounts or change an asset's supply. Absent
// entries read as zero; entries reaching zero are pruned.
//
// A holder can be frozen per asset: frozen holders cannot be debited but may
// still receive credits.
//
// Every mutating method validates all preconditions before touching state, so
// a returned error guarantees the ledger and the asset record are unchanged.
type Ledger struct {
	balances *shrinkingmap.ShrinkingMap[balanceKey, model.Amount]
	frozen   *shrinkingmap.ShrinkingMap[balanceKey, types.Empty]
}

func New() *Ledger {
	return &Ledger{
		balances: shrinkingmap.New[balanceKey, model.Amount](),
		frozen:   shrinkingmap.New[balanceKey, types.Empty](),
	}
}

// Balance returns the balance of account for the given asset, zero if no
// entry exists.
func (l *Ledger) Balance(id model.AssetID, account model.AccountID) model.Amount {
	balance, _ := l.balances.Get(balanceKey{Asset: id, Account: account})
	return balance
}

// Mint credits amount to the given account and raises the asset's supply by
// the same amount.
func (l *Ledger) Mint(asset *assetregistry.Asset, to model.AccountID, amount model.Amount) error {
	if asset.Frozen {
		return ierrors.WithMessagef(model.ErrAssetFrozen, "cannot mint asset %d", asset.ID)
	}

	newSupply, err := safemath.SafeAdd(uint64(asset.Supply), uint64(amount))
	if err != nil {
		return ierrors.WithMessagef(model.ErrAmountOverflow, "minting %d on top of supply %d of asset %d", amount, asset.Supply, asset.ID)
	}

	asset.Supply = model.Amount(newSupply)
	l.credit(asset.ID, to, amount)

	return nil
}

// Transfer moves amount from one account to another. A zero amount is a
// successful no-op.
func (l *Ledger) Transfer(asset *assetregistry.Asset, from model.AccountID, to model.AccountID, amount model.Amount) error {
	if asset.Frozen {
		return ierrors.WithMessagef(model.ErrAssetFrozen, "cannot transfer asset %d", asset.ID)
	}

	if l.AccountFrozen(asset.ID, from) {
		return ierrors.WithMessagef(model.ErrAccountFrozen, "account %s cannot send asset %d", from, asset.ID)
	}

	fromBalance := l.Balance(asset.ID, from)
	if fromBalance < amount {
		return ierrors.WithMessagef(model.ErrInsufficientBalance, "account %s holds %d of asset %d, needs %d", from, fromBalance, asset.ID, amount)
	}

	if amount == 0 || from == to {
		return nil
	}

	l.setBalance(asset.ID, from, fromBalance-amount)
	// The credited side cannot overflow: both balances are bounded by the
	// asset supply, which is itself overflow-checked on mint.
	l.credit(asset.ID, to, amount)

	return nil
}

// Burn debits amount from the given account and reduces the asset's supply
// symmetrically. Recording the burn certificate is the facade's
// responsibility and happens in the same atomic step.
func (l *Ledger) Burn(asset *assetregistry.Asset, from model.AccountID, amount model.Amount) error {
	if asset.Frozen {
		return ierrors.WithMessagef(model.ErrAssetFrozen, "cannot burn asset %d", asset.ID)
	}
	if l.AccountFrozen(asset.ID, from) {
		return ierrors.WithMessagef(model.ErrAccountFrozen, "account %s cannot retire asset %d", from, asset.ID)
	}

	fromBalance := l.Balance(asset.ID, from)
	if fromBalance < amount {
		return ierrors.WithMessagef(model.ErrInsufficientBalance, "account %s holds %d of asset %d, cannot retire %d", from, fromBalance, asset.ID, amount)
	}

	newSupply, err := safemath.SafeSub(uint64(asset.Supply), uint64(amount))
	if err != nil {
		// Unreachable while supply == sum of balances holds; treated as an
		// internal fault rather than a user error.
		return ierrors.WithMessagef(model.ErrAmountUnderflow, "supply %d of asset %d below burn amount %d", asset.Supply, asset.ID, amount)
	}

	asset.Supply = model.Amount(newSupply)
	l.setBalance(asset.ID, from, fromBalance-amount)

	return nil
}

// AccountFrozen returns true if the holder is frozen for the given asset.
func (l *Ledger) AccountFrozen(id model.AssetID, account model.AccountID) bool {
	return l.frozen.Has(balanceKey{Asset: id, Account: account})
}

// SetAccountFrozen marks or unmarks the holder as frozen for the given asset.
// The facade has validated that the holder exists; this applier cannot fail.
func (l *Ledger) SetAccountFrozen(id model.AssetID, account model.AccountID, frozen bool) {
	key := balanceKey{Asset: id, Account: account}
	if frozen {
		l.frozen.Set(key, types.Void)
		return
	}

	l.frozen.Delete(key)
}

// SumOf returns the sum of all balances of the given asset. It is used by
// conservation checks; the result always equals the asset's supply.
func (l *Ledger) SumOf(id model.AssetID) model.Amount {
	var sum model.Amount
	l.balances.ForEach(func(key balanceKey, balance model.Amount) bool {
		if key.Asset == id {
			sum += balance
		}

		return true
	})

	return sum
}

// HoldersOf returns the number of accounts with a non-zero balance of the
// given asset.
func (l *Ledger) HoldersOf(id model.AssetID) int {
	var holders int
	l.balances.ForEach(func(key balanceKey, _ model.Amount) bool {
		if key.Asset == id {
			holders++
		}

		return true
	})

	return holders
}

// Size returns the number of non-zero balance entries across all assets.
func (l *Ledger) Size() int {
	return l.balances.Size()
}

func (l *Ledger) credit(id model.AssetID, account model.AccountID, amount model.Amount) {
	if amount == 0 {
		return
	}

	key := balanceKey{Asset: id, Account: account}
	balance, _ := l.balances.Get(key)
	l.balances.Set(key, balance+amount)
}

func (l *Ledger) setBalance(id model.AssetID, account model.AccountID, balance model.Amount) {
	key := balanceKey{Asset: id, Account: account}
	if balance == 0 {
		l.balances.Delete(key)
		return
	}

	l.balances.Set(key, balance)
}

package ledger

import (
	"github.com/iotaledger/hive.go/core/safemath"
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/carbonledger/carbon-core/pkg/model"
)

// Genesis describes the initial ledger state: the master holder, the
// pre-registered accounts and any pre-tokenized assets with their opening
// balances.
type Genesis struct {
	Root     model.AccountID
	Accounts []GenesisAccount
	Assets   []GenesisAsset
}

type GenesisAccount struct {
	Account  model.AccountID
	Roles    model.RoleMask
	Identity uint64
}

type GenesisAsset struct {
	Name          string
	Symbol        string
	Creator       model.AccountID
	SerialNumber  string
	AmountClaimed model.Amount
	ProjectInfo   string
	IPFSReference string
	Balances      []GenesisBalance
}

type GenesisBalance struct {
	Account model.AccountID
	Amount  model.Amount
}

// ApplyGenesis seeds the ledger from the given genesis description. It is
// all-or-nothing: the full description is validated against the same
// invariants regular operations enforce before anything is applied. It can
// run at most once and only on a ledger that has not accepted any operation
// yet; afterwards the fuse is blown and further genesis imports fail with
// ErrGenesisSealed.
//
// Genesis seeding triggers no events, mirroring snapshot imports.
func (l *Ledger) ApplyGenesis(genesis *Genesis) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.sealed {
		return ierrors.WithMessage(model.ErrGenesisSealed, "ledger already carries state")
	}

	if err := l.validateGenesis(genesis); err != nil {
		return err
	}

	now := l.optsClock()

	if !genesis.Root.IsEmpty() {
		l.roles.TransferRoot(genesis.Root, now)
	}
	for _, account := range genesis.Accounts {
		l.roles.GrantWithIdentity(account.Account, account.Roles, account.Identity, now)
	}

	for _, seed := range genesis.Assets {
		asset, err := l.assets.Allocate(seed.Creator)
		if err != nil {
			return err
		}

		l.metadata.SetPlaceholder(asset.ID, seed.Name, seed.Symbol)
		if seed.SerialNumber != "" || seed.ProjectInfo != "" || seed.IPFSReference != "" || seed.AmountClaimed > 0 {
			l.metadata.UpdateProjectData(asset.ID, seed.SerialNumber, seed.AmountClaimed, seed.ProjectInfo, seed.IPFSReference)
		}

		for _, balance := range seed.Balances {
			if err := l.balances.Mint(asset, balance.Account, balance.Amount); err != nil {
				return ierrors.Wrapf(err, "genesis mint of asset %d to %s", asset.ID, balance.Account)
			}
		}
	}

	l.sealed = true

	l.log.LogDebug("genesis applied", "root", genesis.Root, "accounts", len(genesis.Accounts), "assets", len(genesis.Assets))

	return nil
}

func (l *Ledger) validateGenesis(genesis *Genesis) error {
	for _, account := range genesis.Accounts {
		if account.Account.IsEmpty() {
			return ierrors.WithMessage(model.ErrInvalidAccount, "genesis account with empty identifier")
		}
		if !account.Roles.IsGrantable() {
			return ierrors.WithMessagef(model.ErrInvalidRole, "account %s: mask %s is not grantable", account.Account, account.Roles)
		}
		if account.Account == genesis.Root {
			return ierrors.WithMessagef(model.ErrDuplicateRoot, "account %s is the designated master holder", account.Account)
		}
	}

	if len(genesis.Assets) > 0 && !l.genesisCustodianExists(genesis) {
		return ierrors.WithMessage(model.ErrNoCustodian, "genesis seeds assets")
	}

	// The apply loop allocates one identifier per seed; checking the full
	// count here keeps a failed allocation from surfacing after role grants
	// have already been applied.
	if _, err := safemath.SafeAdd(uint64(l.assets.LastID()), uint64(len(genesis.Assets))); err != nil {
		return ierrors.WithMessagef(model.ErrAssetIDExhausted, "genesis seeds %d assets but the last allocated id is %d", len(genesis.Assets), l.assets.LastID())
	}

	for i, seed := range genesis.Assets {
		if seed.Creator.IsEmpty() {
			return ierrors.WithMessagef(model.ErrInvalidAccount, "genesis asset %d has an empty creator", i)
		}

		var supply model.Amount
		for _, balance := range seed.Balances {
			if balance.Account.IsEmpty() {
				return ierrors.WithMessagef(model.ErrInvalidAccount, "genesis asset %d seeds a balance with an empty holder", i)
			}

			sum, err := safemath.SafeAdd(uint64(supply), uint64(balance.Amount))
			if err != nil {
				return ierrors.WithMessagef(model.ErrAmountOverflow, "genesis asset %d exceeds the maximum supply", i)
			}
			supply = model.Amount(sum)
		}
	}

	return nil
}

func (l *Ledger) genesisCustodianExists(genesis *Genesis) bool {
	for _, account := range genesis.Accounts {
		if account.Roles.Has(model.RoleCustodian) {
			return true
		}
	}

	return false
}

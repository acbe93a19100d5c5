package ledger

import (
	"time"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/options"
	"github.com/iotaledger/hive.go/runtime/syncutils"

	"github.com/carbonledger/carbon-core/pkg/ledger/approvalengine"
	"github.com/carbonledger/carbon-core/pkg/ledger/assetregistry"
	"github.com/carbonledger/carbon-core/pkg/ledger/balanceledger"
	"github.com/carbonledger/carbon-core/pkg/ledger/burnledger"
	"github.com/carbonledger/carbon-core/pkg/ledger/metadatastore"
	"github.com/carbonledger/carbon-core/pkg/ledger/roleregistry"
	"github.com/carbonledger/carbon-core/pkg/model"
)

// Ledger is the single entry point of the carbon credit ledger. It resolves
// the caller's roles, checks authorization, and coordinates the component
// stores so that every call either commits completely or leaves all state
// untouched.
//
// Calls are expected to arrive pre-serialized from the sequencing host; the
// internal mutex only protects against callers that bypass that assumption.
// Every mutating method validates all preconditions against committed state
// before applying anything, so no partially-applied call is ever observable.
type Ledger struct {
	Events *Events

	roles     *roleregistry.Registry
	assets    *assetregistry.Registry
	metadata  *metadatastore.Store
	balances  *balanceledger.Ledger
	approvals *approvalengine.Engine
	burns     *burnledger.Ledger

	// sealed flips on the first accepted operation and blocks late genesis
	// imports.
	sealed bool

	mutex syncutils.RWMutex

	log log.Logger

	optsClock          func() time.Time
	optsInitialAssetID model.AssetID
}

func New(logger log.Logger, opts ...options.Option[Ledger]) *Ledger {
	return options.Apply(&Ledger{
		Events:             NewEvents(),
		roles:              roleregistry.New(),
		metadata:           metadatastore.New(),
		balances:           balanceledger.New(),
		approvals:          approvalengine.New(),
		burns:              burnledger.New(),
		optsClock:          time.Now,
		optsInitialAssetID: model.FirstAssetID,
	}, opts, func(l *Ledger) {
		l.log = logger
		l.assets = assetregistry.New(l.optsInitialAssetID)
	})
}

// SetRoot assigns the master role. The first assignment bootstraps the
// registry and is open to any caller; afterwards only the current holder may
// transfer the role, and the previous holder loses it atomically.
func (l *Ledger) SetRoot(caller model.AccountID, target model.AccountID) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if err := requireAccountID(target); err != nil {
		return err
	}

	previous, rootExists := l.roles.Root()
	if rootExists {
		if previous != caller {
			return ierrors.WithMessagef(model.ErrUnauthorized, "only the master holder may transfer the master role, not %s", caller)
		}
		if previous == target {
			return ierrors.WithMessagef(model.ErrDuplicateRoot, "account %s", target)
		}
	}

	l.roles.TransferRoot(target, l.optsClock())
	l.sealed = true

	l.log.LogDebug("master role transferred", "previous", previous, "current", target)
	l.Events.RootTransferred.Trigger(&RootTransferredEvent{Previous: previous, Current: target})

	return nil
}

// RegisterAccount adds a fresh account with the given roles and external
// identity reference. Master-gated; the target must not be registered yet and
// the mask may not include the master bit.
func (l *Ledger) RegisterAccount(caller model.AccountID, target model.AccountID, roles model.RoleMask, identity uint64) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if err := l.requireMaster(caller); err != nil {
		return err
	}
	if err := requireAccountID(target); err != nil {
		return err
	}
	if !roles.IsGrantable() {
		return ierrors.WithMessagef(model.ErrInvalidRole, "mask %s is not grantable", roles)
	}
	if l.roles.Has(target) {
		return ierrors.WithMessagef(model.ErrInvalidAction, "account %s is already registered", target)
	}

	l.roles.GrantWithIdentity(target, roles, identity, l.optsClock())
	l.sealed = true

	l.log.LogDebug("account registered", "caller", caller, "target", target, "roles", roles, "identity", identity)
	l.Events.RoleGranted.Trigger(&RoleChangedEvent{Caller: caller, Target: target, Role: roles})

	return nil
}

// GrantRole adds the given non-master role bits to target, registering the
// account on first grant.
func (l *Ledger) GrantRole(caller model.AccountID, target model.AccountID, role model.RoleMask) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if err := l.requireMaster(caller); err != nil {
		return err
	}
	if err := requireAccountID(target); err != nil {
		return err
	}
	if !role.IsGrantable() {
		return ierrors.WithMessagef(model.ErrInvalidRole, "mask %s is not grantable", role)
	}

	l.roles.Grant(target, role, l.optsClock())
	l.sealed = true

	l.log.LogDebug("role granted", "caller", caller, "target", target, "role", role)
	l.Events.RoleGranted.Trigger(&RoleChangedEvent{Caller: caller, Target: target, Role: role})

	return nil
}

// RevokeRole clears the given non-master role bits on target.
func (l *Ledger) RevokeRole(caller model.AccountID, target model.AccountID, role model.RoleMask) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if err := l.requireMaster(caller); err != nil {
		return err
	}
	if !role.IsGrantable() {
		return ierrors.WithMessagef(model.ErrInvalidRole, "mask %s is not revocable", role)
	}
	if !l.roles.Has(target) {
		return ierrors.WithMessagef(model.ErrUnknownAccount, "account %s", target)
	}

	l.roles.Revoke(target, role)
	l.sealed = true

	l.log.LogDebug("role revoked", "caller", caller, "target", target, "role", role)
	l.Events.RoleRevoked.Trigger(&RoleChangedEvent{Caller: caller, Target: target, Role: role})

	return nil
}

// SetCustodian grants the custodian role to target. Only the custodian can
// verify tokenization requests, mint and retire credits.
func (l *Ledger) SetCustodian(caller model.AccountID, target model.AccountID) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if err := l.requireMaster(caller); err != nil {
		return err
	}
	if err := requireAccountID(target); err != nil {
		return err
	}

	l.roles.Grant(target, model.RoleCustodian, l.optsClock())
	l.sealed = true

	l.log.LogDebug("custodian set", "caller", caller, "target", target)
	l.Events.CustodianSet.Trigger(&RoleChangedEvent{Caller: caller, Target: target, Role: model.RoleCustodian})

	return nil
}

// DisableAccount zeroes all roles of target. The registry entry is kept so
// ledger records referring to the account remain resolvable.
func (l *Ledger) DisableAccount(caller model.AccountID, target model.AccountID) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if err := l.requireMaster(caller); err != nil {
		return err
	}
	if caller == target {
		return ierrors.WithMessage(model.ErrInvalidAction, "cannot disable own account")
	}
	if !l.roles.Has(target) {
		return ierrors.WithMessagef(model.ErrUnknownAccount, "account %s", target)
	}

	l.roles.Disable(target)
	l.sealed = true

	l.log.LogDebug("account disabled", "caller", caller, "target", target)
	l.Events.AccountDisabled.Trigger(&RoleChangedEvent{Caller: caller, Target: target, Role: model.RolesNone})

	return nil
}

// CreateAsset allocates a new asset class owned by the caller and writes its
// metadata placeholder. Any account may originate an asset; minting against
// it stays custodian-gated, so a custodian must already be appointed.
func (l *Ledger) CreateAsset(caller model.AccountID, name string, symbol string) (model.AssetID, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if !l.custodianExists() {
		return 0, ierrors.WithMessage(model.ErrNoCustodian, "cannot create asset")
	}

	asset, err := l.assets.Allocate(caller)
	if err != nil {
		return 0, err
	}

	l.metadata.SetPlaceholder(asset.ID, name, symbol)
	l.sealed = true

	l.log.LogDebug("asset created", "assetID", asset.ID, "creator", caller, "symbol", symbol)
	l.Events.AssetCreated.Trigger(&AssetCreatedEvent{AssetID: asset.ID, Creator: caller, Name: name, Symbol: symbol})

	return asset.ID, nil
}

// SetProjectData upserts the descriptive project record of an asset. The
// creator may update it until the first mint; the custodian may apply
// corrective updates at any time.
func (l *Ledger) SetProjectData(caller model.AccountID, id model.AssetID, serialNumber string, amountClaimed model.Amount, projectInfo string, ipfsReference string) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	asset, exists := l.assets.Get(id)
	if !exists {
		return ierrors.WithMessagef(model.ErrUnknownAsset, "asset %d", id)
	}

	isCustodian := l.roles.HasRole(caller, model.RoleCustodian)
	if caller != asset.Creator && !isCustodian {
		return ierrors.WithMessagef(model.ErrUnauthorized, "account %s is neither creator nor custodian of asset %d", caller, id)
	}
	if !isCustodian && asset.Supply > 0 {
		return ierrors.WithMessagef(model.ErrProjectDataSealed, "asset %d has supply %d", id, asset.Supply)
	}

	l.metadata.UpdateProjectData(id, serialNumber, amountClaimed, projectInfo, ipfsReference)
	l.sealed = true

	l.log.LogDebug("project data set", "assetID", id, "caller", caller, "serialNumber", serialNumber)
	l.Events.ProjectDataSet.Trigger(&ProjectDataSetEvent{AssetID: id, Caller: caller, SerialNumber: serialNumber})

	return nil
}

// Mint issues amount new units of the asset to the given account. Custodian
// only; rejected on frozen assets and on supply overflow.
func (l *Ledger) Mint(caller model.AccountID, id model.AssetID, to model.AccountID, amount model.Amount) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if err := l.requireRole(caller, model.RoleCustodian); err != nil {
		return err
	}
	if err := requireAccountID(to); err != nil {
		return err
	}

	asset, exists := l.assets.Get(id)
	if !exists {
		return ierrors.WithMessagef(model.ErrUnknownAsset, "asset %d", id)
	}

	if err := l.balances.Mint(asset, to, amount); err != nil {
		return err
	}
	l.sealed = true

	l.log.LogDebug("minted", "assetID", id, "to", to, "amount", amount, "supply", asset.Supply)
	l.Events.Minted.Trigger(&TransferEvent{AssetID: id, To: to, Amount: amount})

	return nil
}

// Transfer moves amount of the asset from the caller to the target account.
// A zero amount succeeds without touching state.
func (l *Ledger) Transfer(caller model.AccountID, id model.AssetID, to model.AccountID, amount model.Amount) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if err := requireAccountID(to); err != nil {
		return err
	}

	asset, exists := l.assets.Get(id)
	if !exists {
		return ierrors.WithMessagef(model.ErrUnknownAsset, "asset %d", id)
	}

	if err := l.balances.Transfer(asset, caller, to, amount); err != nil {
		return err
	}
	l.sealed = true

	if amount == 0 || caller == to {
		return nil
	}

	l.log.LogDebug("transferred", "assetID", id, "from", caller, "to", to, "amount", amount)
	l.Events.Transferred.Trigger(&TransferEvent{AssetID: id, From: caller, To: to, Amount: amount})

	return nil
}

// Approve overwrites the allowance the caller grants to delegate for the
// given asset. A zero amount removes the approval.
func (l *Ledger) Approve(caller model.AccountID, delegate model.AccountID, id model.AssetID, amount model.Amount) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if err := requireAccountID(delegate); err != nil {
		return err
	}

	asset, exists := l.assets.Get(id)
	if !exists {
		return ierrors.WithMessagef(model.ErrUnknownAsset, "asset %d", id)
	}
	if asset.Frozen {
		return ierrors.WithMessagef(model.ErrAssetFrozen, "cannot approve transfers of asset %d", id)
	}
	if caller == delegate {
		return ierrors.WithMessagef(model.ErrInvalidDelegate, "owner %s", caller)
	}

	l.approvals.Set(id, caller, delegate, amount)
	l.sealed = true

	l.log.LogDebug("approved", "assetID", id, "owner", caller, "delegate", delegate, "amount", amount)
	l.Events.Approved.Trigger(&ApprovalEvent{AssetID: id, Owner: caller, Delegate: delegate, Amount: amount})

	return nil
}

// TransferFrom moves amount of the owner's balance to the target account,
// consuming the caller's allowance in the same atomic step.
func (l *Ledger) TransferFrom(caller model.AccountID, owner model.AccountID, to model.AccountID, id model.AssetID, amount model.Amount) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if err := requireAccountID(to); err != nil {
		return err
	}

	asset, exists := l.assets.Get(id)
	if !exists {
		return ierrors.WithMessagef(model.ErrUnknownAsset, "asset %d", id)
	}

	remaining, approvalExists := l.approvals.Remaining(id, owner, caller)
	if !approvalExists {
		return ierrors.WithMessagef(model.ErrUnknownApproval, "owner %s, delegate %s, asset %d", owner, caller, id)
	}
	if remaining < amount {
		return ierrors.WithMessagef(model.ErrInsufficientAllowance, "approved %d of asset %d, requested %d", remaining, id, amount)
	}

	if err := l.balances.Transfer(asset, owner, to, amount); err != nil {
		return err
	}
	l.approvals.Spend(id, owner, caller, amount)
	l.sealed = true

	if amount == 0 {
		return nil
	}

	l.log.LogDebug("delegated transfer", "assetID", id, "owner", owner, "delegate", caller, "to", to, "amount", amount)
	l.Events.Transferred.Trigger(&TransferEvent{AssetID: id, From: owner, To: to, Amount: amount})

	return nil
}

// CancelApproval removes the allowance the caller previously granted to
// delegate. Cancelling an absent approval is a successful no-op.
func (l *Ledger) CancelApproval(caller model.AccountID, delegate model.AccountID, id model.AssetID) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if !l.assets.Has(id) {
		return ierrors.WithMessagef(model.ErrUnknownAsset, "asset %d", id)
	}

	existed := l.approvals.Cancel(id, caller, delegate)
	l.sealed = true

	if !existed {
		return nil
	}

	l.log.LogDebug("approval cancelled", "assetID", id, "owner", caller, "delegate", delegate)
	l.Events.ApprovalCancelled.Trigger(&ApprovalEvent{AssetID: id, Owner: caller, Delegate: delegate})

	return nil
}

// SelfBurn irreversibly retires amount units of the caller's own balance and
// accumulates the caller's burn certificate.
func (l *Ledger) SelfBurn(caller model.AccountID, id model.AssetID, amount model.Amount) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return l.burn(id, caller, amount)
}

// Burn retires amount units of the target account's balance on the
// custodian's authority, accumulating the target's burn certificate.
func (l *Ledger) Burn(caller model.AccountID, id model.AssetID, target model.AccountID, amount model.Amount) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if err := l.requireRole(caller, model.RoleCustodian); err != nil {
		return err
	}

	return l.burn(id, target, amount)
}

func (l *Ledger) burn(id model.AssetID, from model.AccountID, amount model.Amount) error {
	asset, exists := l.assets.Get(id)
	if !exists {
		return ierrors.WithMessagef(model.ErrUnknownAsset, "asset %d", id)
	}

	if err := l.balances.Burn(asset, from, amount); err != nil {
		return err
	}
	// The certificate update is part of the same atomic step: Record cannot
	// fail once the debit above has been applied.
	l.burns.Record(from, id, amount)
	l.sealed = true

	certificate := l.burns.CertificateOf(from, id)

	l.log.LogDebug("burned", "assetID", id, "account", from, "amount", amount, "certificate", certificate)
	l.Events.Burned.Trigger(&BurnEvent{AssetID: id, Account: from, Amount: amount, Certificate: certificate})

	return nil
}

// Freeze suspends minting, transfers, approvals and burns of the asset.
// Metadata and balance reads stay available.
func (l *Ledger) Freeze(caller model.AccountID, id model.AssetID) error {
	return l.setFrozen(caller, id, true)
}

// Thaw lifts a previous freeze.
func (l *Ledger) Thaw(caller model.AccountID, id model.AssetID) error {
	return l.setFrozen(caller, id, false)
}

func (l *Ledger) setFrozen(caller model.AccountID, id model.AssetID, frozen bool) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if err := l.requireRole(caller, model.RoleCustodian); err != nil {
		return err
	}

	asset, exists := l.assets.Get(id)
	if !exists {
		return ierrors.WithMessagef(model.ErrUnknownAsset, "asset %d", id)
	}

	l.assets.SetFrozen(asset, frozen)
	l.sealed = true

	if frozen {
		l.log.LogDebug("asset frozen", "assetID", id, "caller", caller)
		l.Events.AssetFrozen.Trigger(id)
	} else {
		l.log.LogDebug("asset thawed", "assetID", id, "caller", caller)
		l.Events.AssetThawed.Trigger(id)
	}

	return nil
}

// FreezeAccount suspends debits from the target holder's balance of the
// asset. Credits to the holder stay allowed; the target must currently hold
// units of the asset.
func (l *Ledger) FreezeAccount(caller model.AccountID, id model.AssetID, target model.AccountID) error {
	return l.setAccountFrozen(caller, id, target, true)
}

// ThawAccount lifts a previous per-account freeze.
func (l *Ledger) ThawAccount(caller model.AccountID, id model.AssetID, target model.AccountID) error {
	return l.setAccountFrozen(caller, id, target, false)
}

func (l *Ledger) setAccountFrozen(caller model.AccountID, id model.AssetID, target model.AccountID, frozen bool) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if err := l.requireRole(caller, model.RoleCustodian); err != nil {
		return err
	}

	if !l.assets.Has(id) {
		return ierrors.WithMessagef(model.ErrUnknownAsset, "asset %d", id)
	}
	if frozen && l.balances.Balance(id, target) == 0 {
		return ierrors.WithMessagef(model.ErrUnknownAccount, "account %s holds no units of asset %d", target, id)
	}

	l.balances.SetAccountFrozen(id, target, frozen)
	l.sealed = true

	if frozen {
		l.log.LogDebug("account frozen", "assetID", id, "target", target, "caller", caller)
		l.Events.AccountFrozen.Trigger(&AccountFreezeEvent{AssetID: id, Account: target})
	} else {
		l.log.LogDebug("account thawed", "assetID", id, "target", target, "caller", caller)
		l.Events.AccountThawed.Trigger(&AccountFreezeEvent{AssetID: id, Account: target})
	}

	return nil
}

// TransferOwnership hands the asset over to a new creator, moving the right
// to maintain its pre-mint project data. Only the current creator may call
// it; handing the asset to the current creator is a successful no-op.
func (l *Ledger) TransferOwnership(caller model.AccountID, id model.AssetID, newOwner model.AccountID) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if err := requireAccountID(newOwner); err != nil {
		return err
	}

	asset, exists := l.assets.Get(id)
	if !exists {
		return ierrors.WithMessagef(model.ErrUnknownAsset, "asset %d", id)
	}
	if caller != asset.Creator {
		return ierrors.WithMessagef(model.ErrUnauthorized, "account %s is not the creator of asset %d", caller, id)
	}

	l.sealed = true

	if newOwner == asset.Creator {
		return nil
	}

	l.assets.SetCreator(asset, newOwner)

	l.log.LogDebug("ownership transferred", "assetID", id, "previous", caller, "current", newOwner)
	l.Events.OwnershipTransferred.Trigger(&OwnershipTransferredEvent{AssetID: id, Previous: caller, Current: newOwner})

	return nil
}

// Destroy removes an asset whose supply has been fully retired. Lingering
// approvals are cleared and the metadata record dropped; burn certificates
// referencing the asset are kept as the audit trail.
func (l *Ledger) Destroy(caller model.AccountID, id model.AssetID) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if err := l.requireRole(caller, model.RoleCustodian); err != nil {
		return err
	}

	asset, exists := l.assets.Get(id)
	if !exists {
		return ierrors.WithMessagef(model.ErrUnknownAsset, "asset %d", id)
	}
	if asset.Supply != 0 {
		return ierrors.WithMessagef(model.ErrSupplyNotZero, "asset %d has supply %d", id, asset.Supply)
	}

	l.approvals.ClearAsset(id)
	l.metadata.Delete(id)
	l.assets.Remove(id)
	l.sealed = true

	l.log.LogDebug("asset destroyed", "assetID", id, "caller", caller)
	l.Events.AssetDestroyed.Trigger(id)

	return nil
}

// BalanceOf returns the balance of account for the given asset, zero for
// unknown assets and accounts.
func (l *Ledger) BalanceOf(id model.AssetID, account model.AccountID) model.Amount {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.balances.Balance(id, account)
}

// IsAccountFrozen returns true if the holder is frozen for the given asset.
func (l *Ledger) IsAccountFrozen(id model.AssetID, account model.AccountID) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.balances.AccountFrozen(id, account)
}

// SupplyOf returns the outstanding supply of the asset.
func (l *Ledger) SupplyOf(id model.AssetID) (model.Amount, error) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	asset, exists := l.assets.Get(id)
	if !exists {
		return 0, ierrors.WithMessagef(model.ErrUnknownAsset, "asset %d", id)
	}

	return asset.Supply, nil
}

// AssetOf returns a copy of the asset record.
func (l *Ledger) AssetOf(id model.AssetID) (assetregistry.Asset, error) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	asset, exists := l.assets.Get(id)
	if !exists {
		return assetregistry.Asset{}, ierrors.WithMessagef(model.ErrUnknownAsset, "asset %d", id)
	}

	return *asset, nil
}

// MetadataOf returns a copy of the asset's metadata record.
func (l *Ledger) MetadataOf(id model.AssetID) (metadatastore.Metadata, error) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	entry, exists := l.metadata.Get(id)
	if !exists {
		return metadatastore.Metadata{}, ierrors.WithMessagef(model.ErrUnknownAsset, "asset %d", id)
	}

	return entry, nil
}

// BurnCertificateOf returns the cumulative amount retired by account for the
// given asset.
func (l *Ledger) BurnCertificateOf(account model.AccountID, id model.AssetID) model.Amount {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.burns.CertificateOf(account, id)
}

// AllowanceOf returns the remaining allowance delegate may move out of
// owner's balance.
func (l *Ledger) AllowanceOf(id model.AssetID, owner model.AccountID, delegate model.AccountID) model.Amount {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	remaining, _ := l.approvals.Remaining(id, owner, delegate)

	return remaining
}

// RoleOf returns the role mask of the given account.
func (l *Ledger) RoleOf(account model.AccountID) model.RoleMask {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.roles.RoleOf(account)
}

// HasRole returns true if account holds every bit of role.
func (l *Ledger) HasRole(account model.AccountID, role model.RoleMask) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.roles.HasRole(account, role)
}

// AccountOf returns the registry entry of the given account.
func (l *Ledger) AccountOf(account model.AccountID) (roleregistry.Entry, bool) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.roles.Entry(account)
}

// TotalAssets returns the number of live assets.
func (l *Ledger) TotalAssets() int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.assets.Size()
}

// CheckLedgerState verifies that every asset's supply equals the sum of its
// balances. A mismatch is an internal fault, not a user error, and means the
// state must not be trusted.
func (l *Ledger) CheckLedgerState() error {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	var err error
	l.assets.ForEach(func(asset *assetregistry.Asset) bool {
		if sum := l.balances.SumOf(asset.ID); sum != asset.Supply {
			err = ierrors.Errorf("asset %d: supply %d does not match balance sum %d", asset.ID, asset.Supply, sum)
			return false
		}

		return true
	})

	return err
}

func requireAccountID(account model.AccountID) error {
	if account.IsEmpty() {
		return ierrors.WithMessage(model.ErrInvalidAccount, "empty account identifier")
	}

	return nil
}

func (l *Ledger) requireMaster(caller model.AccountID) error {
	if !l.roles.HasRole(caller, model.RoleMaster) {
		return ierrors.WithMessagef(model.ErrUnauthorized, "account %s does not hold the master role", caller)
	}

	return nil
}

func (l *Ledger) requireRole(caller model.AccountID, role model.RoleMask) error {
	if !l.roles.HasRole(caller, role) {
		return ierrors.WithMessagef(model.ErrUnauthorized, "account %s does not hold the %s role", caller, role)
	}

	return nil
}

func (l *Ledger) custodianExists() bool {
	var found bool
	l.roles.ForEach(func(_ model.AccountID, entry roleregistry.Entry) bool {
		if entry.Roles.Has(model.RoleCustodian) {
			found = true
			return false
		}

		return true
	})

	return found
}

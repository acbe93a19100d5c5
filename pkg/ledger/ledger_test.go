package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/log"

	"github.com/carbonledger/carbon-core/pkg/model"
)

const (
	master    = model.AccountID("master")
	custodian = model.AccountID("custodian")
	alice     = model.AccountID("alice")
	bob       = model.AccountID("bob")
	carol     = model.AccountID("carol")
)

func newTestLedger(t *testing.T) *Ledger {
	return New(
		log.NewLogger().NewChildLogger(t.Name()),
		WithClock(func() time.Time { return time.Unix(1700000000, 0) }),
	)
}

// newBootstrappedLedger returns a ledger with a master and a custodian, the
// minimum cast needed for asset operations.
func newBootstrappedLedger(t *testing.T) *Ledger {
	l := newTestLedger(t)
	require.NoError(t, l.SetRoot(master, master))
	require.NoError(t, l.SetCustodian(master, custodian))

	return l
}

func createAsset(t *testing.T, l *Ledger, creator model.AccountID) model.AssetID {
	id, err := l.CreateAsset(creator, "Evercity Forest", "EVF")
	require.NoError(t, err)

	return id
}

func TestLedger_SetRoot(t *testing.T) {
	l := newTestLedger(t)

	// The first assignment bootstraps the registry.
	require.NoError(t, l.SetRoot(alice, master))
	require.True(t, l.HasRole(master, model.RoleMaster))
	require.False(t, l.HasRole(alice, model.RoleMaster))

	// Afterwards only the holder may transfer it.
	require.ErrorIs(t, l.SetRoot(alice, alice), model.ErrUnauthorized)
	require.ErrorIs(t, l.SetRoot(master, master), model.ErrDuplicateRoot)

	require.NoError(t, l.SetRoot(master, bob))
	require.True(t, l.HasRole(bob, model.RoleMaster))
	require.False(t, l.HasRole(master, model.RoleMaster))
}

func TestLedger_RootSingularity(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.SetRoot(master, master))

	// No operation can produce a second master: grants refuse the bit and
	// transfers strip the previous holder.
	err := l.GrantRole(master, alice, model.RoleMaster)
	require.ErrorIs(t, err, model.ErrInvalidRole)

	err = l.RegisterAccount(master, alice, model.RoleMaster.Add(model.RoleCustodian), 1)
	require.ErrorIs(t, err, model.ErrInvalidRole)

	require.NoError(t, l.SetRoot(master, alice))

	var holders int
	for _, account := range []model.AccountID{master, alice, bob} {
		if l.HasRole(account, model.RoleMaster) {
			holders++
		}
	}
	require.Equal(t, 1, holders)
}

func TestLedger_RoleManagement(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.SetRoot(master, master))

	// Master gating.
	require.ErrorIs(t, l.GrantRole(alice, bob, model.RoleAuditor), model.ErrUnauthorized)
	require.ErrorIs(t, l.RevokeRole(alice, bob, model.RoleAuditor), model.ErrUnauthorized)
	require.ErrorIs(t, l.SetCustodian(alice, bob), model.ErrUnauthorized)
	require.ErrorIs(t, l.DisableAccount(alice, bob), model.ErrUnauthorized)

	require.NoError(t, l.GrantRole(master, alice, model.RoleAuditor.Add(model.RoleInvestor)))
	require.True(t, l.HasRole(alice, model.RoleAuditor))
	require.True(t, l.HasRole(alice, model.RoleInvestor))

	require.NoError(t, l.RevokeRole(master, alice, model.RoleInvestor))
	require.False(t, l.HasRole(alice, model.RoleInvestor))
	require.True(t, l.HasRole(alice, model.RoleAuditor))

	// Undefined bits and the empty mask are rejected.
	require.ErrorIs(t, l.GrantRole(master, bob, model.RoleMask(1<<16)), model.ErrInvalidRole)
	require.ErrorIs(t, l.GrantRole(master, bob, model.RolesNone), model.ErrInvalidRole)
	require.ErrorIs(t, l.RevokeRole(master, bob, model.RoleAuditor), model.ErrUnknownAccount)
}

func TestLedger_RegisterAccount(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.SetRoot(master, master))

	require.NoError(t, l.RegisterAccount(master, alice, model.RoleProjectOwner, 42))

	entry, exists := l.AccountOf(alice)
	require.True(t, exists)
	require.Equal(t, model.RoleProjectOwner, entry.Roles)
	require.EqualValues(t, 42, entry.Identity)

	// Re-registration is rejected; GrantRole is the way to extend roles.
	err := l.RegisterAccount(master, alice, model.RoleAuditor, 43)
	require.ErrorIs(t, err, model.ErrInvalidAction)
}

func TestLedger_DisableAccount(t *testing.T) {
	l := newBootstrappedLedger(t)
	require.NoError(t, l.GrantRole(master, alice, model.RoleInvestor))

	require.ErrorIs(t, l.DisableAccount(master, master), model.ErrInvalidAction)
	require.ErrorIs(t, l.DisableAccount(master, bob), model.ErrUnknownAccount)

	require.NoError(t, l.DisableAccount(master, alice))
	require.Equal(t, model.RolesNone, l.RoleOf(alice))

	// The entry survives so historic records keep resolving.
	_, exists := l.AccountOf(alice)
	require.True(t, exists)
}

func TestLedger_CreateAsset(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.SetRoot(master, master))

	// No custodian appointed yet: nobody could ever mint the asset.
	_, err := l.CreateAsset(alice, "Evercity Forest", "EVF")
	require.ErrorIs(t, err, model.ErrNoCustodian)

	require.NoError(t, l.SetCustodian(master, custodian))

	first, err := l.CreateAsset(alice, "Evercity Forest", "EVF")
	require.NoError(t, err)
	require.Equal(t, model.FirstAssetID+1, first)

	second, err := l.CreateAsset(bob, "Solar One", "SOL")
	require.NoError(t, err)
	require.Equal(t, first+1, second)
	require.Equal(t, 2, l.TotalAssets())

	asset, err := l.AssetOf(first)
	require.NoError(t, err)
	require.Equal(t, alice, asset.Creator)
	require.EqualValues(t, 0, asset.Supply)

	metadata, err := l.MetadataOf(first)
	require.NoError(t, err)
	require.Equal(t, "Evercity Forest", metadata.Name)
	require.Equal(t, "EVF", metadata.Symbol)
	require.Equal(t, model.Decimals, metadata.Decimals)
}

func TestLedger_SetProjectData(t *testing.T) {
	l := newBootstrappedLedger(t)
	id := createAsset(t, l, alice)

	require.ErrorIs(t, l.SetProjectData(alice, id+1, "VCS-1234", 1000, "", ""), model.ErrUnknownAsset)
	require.ErrorIs(t, l.SetProjectData(bob, id, "VCS-1234", 1000, "", ""), model.ErrUnauthorized)

	// The creator may update freely before the first mint.
	require.NoError(t, l.SetProjectData(alice, id, "VCS-1234", 1000, "reforestation", "ipfs://QmDocs"))

	metadata, err := l.MetadataOf(id)
	require.NoError(t, err)
	require.Equal(t, "VCS-1234", metadata.SerialNumber)
	require.EqualValues(t, 1000, metadata.AmountClaimed)

	require.NoError(t, l.Mint(custodian, id, alice, 10))

	// After the first mint the creator is locked out, the custodian is not.
	err = l.SetProjectData(alice, id, "VCS-5678", 2000, "", "")
	require.ErrorIs(t, err, model.ErrProjectDataSealed)

	require.NoError(t, l.SetProjectData(custodian, id, "VCS-5678", 2000, "corrected", ""))
	metadata, err = l.MetadataOf(id)
	require.NoError(t, err)
	require.Equal(t, "VCS-5678", metadata.SerialNumber)
}

func TestLedger_MintAuthorization(t *testing.T) {
	l := newBootstrappedLedger(t)
	id := createAsset(t, l, alice)

	require.ErrorIs(t, l.Mint(alice, id, alice, 100), model.ErrUnauthorized)
	require.ErrorIs(t, l.Mint(master, id, alice, 100), model.ErrUnauthorized)
	require.ErrorIs(t, l.Mint(custodian, id+1, alice, 100), model.ErrUnknownAsset)

	require.NoError(t, l.Mint(custodian, id, alice, 100))
	require.EqualValues(t, 100, l.BalanceOf(id, alice))

	supply, err := l.SupplyOf(id)
	require.NoError(t, err)
	require.EqualValues(t, 100, supply)
}

func TestLedger_EndToEnd(t *testing.T) {
	l := newBootstrappedLedger(t)

	id, err := l.CreateAsset(alice, "Evercity Forest", "EVF")
	require.NoError(t, err)

	require.NoError(t, l.SetProjectData(alice, id, "VCS-1234", 1000, "reforestation", "ipfs://QmDocs"))
	require.NoError(t, l.Mint(custodian, id, alice, 1000))
	require.NoError(t, l.Transfer(alice, id, bob, 400))
	require.NoError(t, l.SelfBurn(bob, id, 100))

	require.EqualValues(t, 600, l.BalanceOf(id, alice))
	require.EqualValues(t, 300, l.BalanceOf(id, bob))
	require.EqualValues(t, 100, l.BurnCertificateOf(bob, id))

	supply, err := l.SupplyOf(id)
	require.NoError(t, err)
	require.EqualValues(t, 900, supply)

	require.NoError(t, l.CheckLedgerState())
}

func TestLedger_TransferEdgeCases(t *testing.T) {
	l := newBootstrappedLedger(t)
	id := createAsset(t, l, alice)
	require.NoError(t, l.Mint(custodian, id, alice, 100))

	require.ErrorIs(t, l.Transfer(alice, id+1, bob, 10), model.ErrUnknownAsset)
	require.ErrorIs(t, l.Transfer(alice, id, bob, 101), model.ErrInsufficientBalance)
	require.ErrorIs(t, l.Transfer(bob, id, alice, 1), model.ErrInsufficientBalance)

	// Zero-amount and self transfers succeed without moving anything.
	require.NoError(t, l.Transfer(alice, id, bob, 0))
	require.NoError(t, l.Transfer(alice, id, alice, 40))
	require.EqualValues(t, 100, l.BalanceOf(id, alice))
	require.EqualValues(t, 0, l.BalanceOf(id, bob))
	require.NoError(t, l.CheckLedgerState())
}

func TestLedger_Approvals(t *testing.T) {
	l := newBootstrappedLedger(t)
	id := createAsset(t, l, alice)
	require.NoError(t, l.Mint(custodian, id, alice, 1000))

	require.ErrorIs(t, l.Approve(alice, alice, id, 100), model.ErrInvalidDelegate)
	require.ErrorIs(t, l.Approve(alice, bob, id+1, 100), model.ErrUnknownAsset)

	require.NoError(t, l.Approve(alice, bob, id, 100))
	require.EqualValues(t, 100, l.AllowanceOf(id, alice, bob))

	// Without an approval the delegate cannot move anything.
	err := l.TransferFrom(carol, alice, carol, id, 10)
	require.ErrorIs(t, err, model.ErrUnknownApproval)

	require.NoError(t, l.TransferFrom(bob, alice, carol, id, 60))
	require.EqualValues(t, 40, l.AllowanceOf(id, alice, bob))
	require.EqualValues(t, 60, l.BalanceOf(id, carol))
	require.EqualValues(t, 940, l.BalanceOf(id, alice))

	err = l.TransferFrom(bob, alice, carol, id, 60)
	require.ErrorIs(t, err, model.ErrInsufficientAllowance)
	require.EqualValues(t, 40, l.AllowanceOf(id, alice, bob))
	require.EqualValues(t, 60, l.BalanceOf(id, carol))

	// Consuming the rest removes the approval entirely.
	require.NoError(t, l.TransferFrom(bob, alice, carol, id, 40))
	require.EqualValues(t, 0, l.AllowanceOf(id, alice, bob))
	err = l.TransferFrom(bob, alice, carol, id, 1)
	require.ErrorIs(t, err, model.ErrUnknownApproval)

	require.NoError(t, l.CheckLedgerState())
}

func TestLedger_ApprovalDoesNotReserveBalance(t *testing.T) {
	l := newBootstrappedLedger(t)
	id := createAsset(t, l, alice)
	require.NoError(t, l.Mint(custodian, id, alice, 100))

	// An allowance is a cap, not a hold: the owner may still spend the
	// balance out from under the delegate.
	require.NoError(t, l.Approve(alice, bob, id, 100))
	require.NoError(t, l.Transfer(alice, id, carol, 80))

	err := l.TransferFrom(bob, alice, bob, id, 50)
	require.ErrorIs(t, err, model.ErrInsufficientBalance)
	require.EqualValues(t, 100, l.AllowanceOf(id, alice, bob), "a failed delegated transfer consumes no allowance")

	require.NoError(t, l.TransferFrom(bob, alice, bob, id, 20))
	require.EqualValues(t, 80, l.AllowanceOf(id, alice, bob))
}

func TestLedger_CancelApproval(t *testing.T) {
	l := newBootstrappedLedger(t)
	id := createAsset(t, l, alice)
	require.NoError(t, l.Mint(custodian, id, alice, 100))
	require.NoError(t, l.Approve(alice, bob, id, 50))

	require.ErrorIs(t, l.CancelApproval(alice, bob, id+1), model.ErrUnknownAsset)

	require.NoError(t, l.CancelApproval(alice, bob, id))
	require.EqualValues(t, 0, l.AllowanceOf(id, alice, bob))

	// Cancelling an absent approval is a successful no-op.
	require.NoError(t, l.CancelApproval(alice, bob, id))
}

func TestLedger_BurnCertificateAccumulates(t *testing.T) {
	l := newBootstrappedLedger(t)
	id := createAsset(t, l, alice)
	require.NoError(t, l.Mint(custodian, id, alice, 100))

	require.NoError(t, l.SelfBurn(alice, id, 10))
	require.NoError(t, l.Mint(custodian, id, alice, 50))
	require.NoError(t, l.SelfBurn(alice, id, 10))
	require.NoError(t, l.Transfer(alice, id, bob, 25))
	require.NoError(t, l.SelfBurn(alice, id, 10))

	// Intervening mints and transfers never shrink the certificate.
	require.EqualValues(t, 30, l.BurnCertificateOf(alice, id))

	supply, err := l.SupplyOf(id)
	require.NoError(t, err)
	require.EqualValues(t, 120, supply)

	// A failed burn leaves the certificate untouched.
	require.ErrorIs(t, l.SelfBurn(alice, id, 1000), model.ErrInsufficientBalance)
	require.EqualValues(t, 30, l.BurnCertificateOf(alice, id))

	require.NoError(t, l.CheckLedgerState())
}

func TestLedger_CustodialBurn(t *testing.T) {
	l := newBootstrappedLedger(t)
	id := createAsset(t, l, alice)
	require.NoError(t, l.Mint(custodian, id, alice, 100))

	// Retiring someone else's credits takes the custodian role.
	require.ErrorIs(t, l.Burn(bob, id, alice, 10), model.ErrUnauthorized)
	require.ErrorIs(t, l.Burn(master, id, alice, 10), model.ErrUnauthorized)

	require.NoError(t, l.Burn(custodian, id, alice, 40))
	require.EqualValues(t, 60, l.BalanceOf(id, alice))

	// The certificate belongs to the account whose credits were retired.
	require.EqualValues(t, 40, l.BurnCertificateOf(alice, id))
	require.EqualValues(t, 0, l.BurnCertificateOf(custodian, id))
}

func TestLedger_FreezeThaw(t *testing.T) {
	l := newBootstrappedLedger(t)
	id := createAsset(t, l, alice)
	require.NoError(t, l.Mint(custodian, id, alice, 100))
	require.NoError(t, l.Approve(alice, bob, id, 50))

	require.ErrorIs(t, l.Freeze(alice, id), model.ErrUnauthorized)
	require.NoError(t, l.Freeze(custodian, id))

	require.ErrorIs(t, l.Mint(custodian, id, alice, 1), model.ErrAssetFrozen)
	require.ErrorIs(t, l.Transfer(alice, id, bob, 1), model.ErrAssetFrozen)
	require.ErrorIs(t, l.SelfBurn(alice, id, 1), model.ErrAssetFrozen)
	require.ErrorIs(t, l.TransferFrom(bob, alice, bob, id, 1), model.ErrAssetFrozen)
	require.ErrorIs(t, l.Approve(alice, carol, id, 10), model.ErrAssetFrozen)

	// Reads and approval cancellation stay available while frozen.
	require.EqualValues(t, 100, l.BalanceOf(id, alice))
	require.NoError(t, l.CancelApproval(alice, bob, id))

	require.NoError(t, l.Thaw(custodian, id))
	require.NoError(t, l.Transfer(alice, id, bob, 1))
}

func TestLedger_FreezeAccount(t *testing.T) {
	l := newBootstrappedLedger(t)
	id := createAsset(t, l, alice)
	require.NoError(t, l.Mint(custodian, id, alice, 100))
	require.NoError(t, l.Mint(custodian, id, bob, 50))
	require.NoError(t, l.Approve(alice, carol, id, 30))

	var frozen, thawed int
	l.Events.AccountFrozen.Hook(func(event *AccountFreezeEvent) {
		frozen++
		require.Equal(t, alice, event.Account)
	})
	l.Events.AccountThawed.Hook(func(*AccountFreezeEvent) { thawed++ })

	require.ErrorIs(t, l.FreezeAccount(bob, id, alice), model.ErrUnauthorized)
	require.ErrorIs(t, l.FreezeAccount(custodian, id, carol), model.ErrUnknownAccount)
	require.NoError(t, l.FreezeAccount(custodian, id, alice))
	require.True(t, l.IsAccountFrozen(id, alice))

	// No debit leaves a frozen holder, not even with custodian authority or
	// through a standing approval.
	require.ErrorIs(t, l.Transfer(alice, id, bob, 10), model.ErrAccountFrozen)
	require.ErrorIs(t, l.SelfBurn(alice, id, 10), model.ErrAccountFrozen)
	require.ErrorIs(t, l.Burn(custodian, id, alice, 10), model.ErrAccountFrozen)
	require.ErrorIs(t, l.TransferFrom(carol, alice, bob, id, 10), model.ErrAccountFrozen)

	// Credits to the frozen holder and the rest of the asset stay live.
	require.NoError(t, l.Transfer(bob, id, alice, 5))
	require.NoError(t, l.Mint(custodian, id, alice, 5))
	require.EqualValues(t, 110, l.BalanceOf(id, alice))
	require.False(t, l.IsAccountFrozen(id, bob))

	require.NoError(t, l.ThawAccount(custodian, id, alice))
	require.False(t, l.IsAccountFrozen(id, alice))
	require.NoError(t, l.Transfer(alice, id, bob, 10))

	require.Equal(t, 1, frozen)
	require.Equal(t, 1, thawed)
	require.NoError(t, l.CheckLedgerState())
}

func TestLedger_TransferOwnership(t *testing.T) {
	l := newBootstrappedLedger(t)
	id := createAsset(t, l, alice)

	var handovers int
	l.Events.OwnershipTransferred.Hook(func(event *OwnershipTransferredEvent) {
		handovers++
		require.Equal(t, alice, event.Previous)
		require.Equal(t, bob, event.Current)
	})

	require.ErrorIs(t, l.TransferOwnership(bob, id, carol), model.ErrUnauthorized)
	require.ErrorIs(t, l.TransferOwnership(alice, id+1, bob), model.ErrUnknownAsset)

	require.NoError(t, l.TransferOwnership(alice, id, bob))

	asset, err := l.AssetOf(id)
	require.NoError(t, err)
	require.Equal(t, bob, asset.Creator)

	// The pre-mint project data right moves with the asset.
	require.NoError(t, l.SetProjectData(bob, id, "VCS-1234", 0, "reforestation", ""))
	require.ErrorIs(t, l.SetProjectData(alice, id, "VCS-9999", 0, "", ""), model.ErrUnauthorized)

	// Handing the asset to the current creator changes nothing and is not
	// announced.
	require.NoError(t, l.TransferOwnership(bob, id, bob))
	asset, err = l.AssetOf(id)
	require.NoError(t, err)
	require.Equal(t, bob, asset.Creator)
	require.Equal(t, 1, handovers)
}

func TestLedger_RejectsEmptyAccounts(t *testing.T) {
	l := newBootstrappedLedger(t)
	id := createAsset(t, l, alice)
	require.NoError(t, l.Mint(custodian, id, alice, 100))

	require.ErrorIs(t, l.SetRoot(master, model.EmptyAccountID), model.ErrInvalidAccount)
	require.ErrorIs(t, l.RegisterAccount(master, model.EmptyAccountID, model.RoleInvestor, 1), model.ErrInvalidAccount)
	require.ErrorIs(t, l.GrantRole(master, model.EmptyAccountID, model.RoleAuditor), model.ErrInvalidAccount)
	require.ErrorIs(t, l.SetCustodian(master, model.EmptyAccountID), model.ErrInvalidAccount)
	require.ErrorIs(t, l.Mint(custodian, id, model.EmptyAccountID, 1), model.ErrInvalidAccount)
	require.ErrorIs(t, l.Transfer(alice, id, model.EmptyAccountID, 1), model.ErrInvalidAccount)
	require.ErrorIs(t, l.Approve(alice, model.EmptyAccountID, id, 1), model.ErrInvalidAccount)
	require.ErrorIs(t, l.TransferOwnership(alice, id, model.EmptyAccountID), model.ErrInvalidAccount)

	// The empty identifier never doubles as the missing-root sentinel.
	require.False(t, l.HasRole(model.EmptyAccountID, model.RoleMaster))
	require.EqualValues(t, 0, l.BalanceOf(id, model.EmptyAccountID))
}

func TestLedger_Destroy(t *testing.T) {
	l := newBootstrappedLedger(t)
	id := createAsset(t, l, alice)
	require.NoError(t, l.Mint(custodian, id, alice, 100))
	require.NoError(t, l.Approve(alice, bob, id, 50))

	require.ErrorIs(t, l.Destroy(alice, id), model.ErrUnauthorized)
	require.ErrorIs(t, l.Destroy(custodian, id), model.ErrSupplyNotZero)

	require.NoError(t, l.Burn(custodian, id, alice, 100))
	require.NoError(t, l.Destroy(custodian, id))

	_, err := l.AssetOf(id)
	require.ErrorIs(t, err, model.ErrUnknownAsset)
	_, err = l.MetadataOf(id)
	require.ErrorIs(t, err, model.ErrUnknownAsset)
	require.EqualValues(t, 0, l.AllowanceOf(id, alice, bob))

	// Burn certificates outlive the asset as the audit trail.
	require.EqualValues(t, 100, l.BurnCertificateOf(alice, id))

	// The identifier is not reused.
	next := createAsset(t, l, alice)
	require.Greater(t, next, id)
}

func TestLedger_OverflowLeavesStateUnchanged(t *testing.T) {
	l := newBootstrappedLedger(t)
	id := createAsset(t, l, alice)
	require.NoError(t, l.Mint(custodian, id, alice, model.MaxAmount-5))

	before := exportBytes(t, l)

	err := l.Mint(custodian, id, bob, 6)
	require.ErrorIs(t, err, model.ErrAmountOverflow)

	require.Equal(t, before, exportBytes(t, l), "a failed mint must not change any state")
	require.NoError(t, l.CheckLedgerState())
}

func TestLedger_ConservationAfterEveryStep(t *testing.T) {
	l := newBootstrappedLedger(t)
	id := createAsset(t, l, alice)

	steps := []func() error{
		func() error { return l.Mint(custodian, id, alice, 1000) },
		func() error { return l.Transfer(alice, id, bob, 400) },
		func() error { return l.Approve(alice, carol, id, 300) },
		func() error { return l.TransferFrom(carol, alice, carol, id, 200) },
		func() error { return l.SelfBurn(bob, id, 100) },
		func() error { return l.Burn(custodian, id, carol, 50) },
		func() error { return l.Freeze(custodian, id) },
		func() error { return l.Thaw(custodian, id) },
	}

	for i, step := range steps {
		require.NoError(t, step(), "step %d", i)
		require.NoError(t, l.CheckLedgerState(), "conservation broken after step %d", i)
	}

	supply, err := l.SupplyOf(id)
	require.NoError(t, err)
	require.EqualValues(t, 850, supply)
}

func TestLedger_Events(t *testing.T) {
	l := newBootstrappedLedger(t)
	id := createAsset(t, l, alice)

	var minted, transferred, burned int
	l.Events.Minted.Hook(func(*TransferEvent) { minted++ })
	l.Events.Transferred.Hook(func(*TransferEvent) { transferred++ })
	l.Events.Burned.Hook(func(event *BurnEvent) {
		burned++
		require.EqualValues(t, 100, event.Certificate)
	})

	require.NoError(t, l.Mint(custodian, id, alice, 1000))
	require.NoError(t, l.Transfer(alice, id, bob, 400))
	require.NoError(t, l.SelfBurn(bob, id, 100))

	// Zero-amount and self transfers are accepted but not announced.
	require.NoError(t, l.Transfer(alice, id, bob, 0))
	require.NoError(t, l.Transfer(alice, id, alice, 10))

	require.Equal(t, 1, minted)
	require.Equal(t, 1, transferred)
	require.Equal(t, 1, burned)
}

package model

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrUnauthorized is returned when the caller lacks the role or ownership
	// required by the requested operation.
	ErrUnauthorized = ierrors.New("caller is not authorized for this operation")

	// ErrUnknownAsset is returned when the referenced asset does not exist or
	// has been destroyed.
	ErrUnknownAsset = ierrors.New("unknown asset")

	// ErrUnknownAccount is returned by role operations targeting an account
	// that was never registered.
	ErrUnknownAccount = ierrors.New("unknown account")

	// ErrInvalidAccount is returned when an operation names the empty account
	// identifier.
	ErrInvalidAccount = ierrors.New("invalid account identifier")

	// ErrUnknownApproval is returned when no approval exists for the given
	// (asset, owner, delegate) triple.
	ErrUnknownApproval = ierrors.New("unknown approval")

	// ErrAssetFrozen is returned when minting, transferring, approving or
	// burning against a frozen asset.
	ErrAssetFrozen = ierrors.New("asset is frozen")

	// ErrAccountFrozen is returned when a frozen holder's balance would be
	// debited. Credits to a frozen holder stay allowed.
	ErrAccountFrozen = ierrors.New("account is frozen for this asset")

	// ErrInsufficientBalance is returned when a debit exceeds the holder's
	// balance.
	ErrInsufficientBalance = ierrors.New("insufficient balance")

	// ErrInsufficientAllowance is returned when a delegated transfer exceeds
	// the remaining approved amount.
	ErrInsufficientAllowance = ierrors.New("insufficient allowance")

	// ErrSupplyNotZero is returned when destroying an asset with outstanding
	// supply.
	ErrSupplyNotZero = ierrors.New("asset supply is not zero")

	// ErrAmountOverflow is returned when an operation would push a balance,
	// supply or allowance above the representable range.
	ErrAmountOverflow = ierrors.New("amount overflow")

	// ErrAmountUnderflow is returned when checked subtraction would go below
	// zero. Balance debits report ErrInsufficientBalance instead; this error
	// only surfaces when supply accounting is internally inconsistent.
	ErrAmountUnderflow = ierrors.New("amount underflow")

	// ErrInvalidRole is returned for malformed role masks and for attempts to
	// grant or revoke the master bit outside the root-transfer path.
	ErrInvalidRole = ierrors.New("invalid role mask")

	// ErrDuplicateRoot is returned when a root assignment would not change
	// anything or would create a second concurrent holder.
	ErrDuplicateRoot = ierrors.New("account already holds the master role")

	// ErrNoCustodian is returned when an operation requires a custodian to be
	// appointed and none is.
	ErrNoCustodian = ierrors.New("no custodian appointed")

	// ErrProjectDataSealed is returned when the asset creator attempts to
	// update project data after units have been minted. The custodian may
	// still apply corrective updates.
	ErrProjectDataSealed = ierrors.New("project data is sealed after minting")

	// ErrInvalidDelegate is returned when an approval names the owner itself
	// as delegate.
	ErrInvalidDelegate = ierrors.New("delegate must differ from owner")

	// ErrInvalidAction is returned for role operations that target the caller
	// itself or otherwise make no sense (e.g. disabling one's own account).
	ErrInvalidAction = ierrors.New("invalid action")

	// ErrAssetIDExhausted is returned when the asset identifier space is
	// exhausted.
	ErrAssetIDExhausted = ierrors.New("asset identifier space exhausted")

	// ErrGenesisSealed is returned when genesis state is applied to a ledger
	// that has already accepted operations.
	ErrGenesisSealed = ierrors.New("genesis already applied or ledger in use")
)

package ledger

import (
	"github.com/iotaledger/hive.go/runtime/event"

	"github.com/carbonledger/carbon-core/pkg/model"
)

// Events enumerates every observable effect of the ledger. An event fires
// strictly after the corresponding mutation has committed; failed calls never
// trigger anything.
type Events struct {
	RootTransferred      *event.Event1[*RootTransferredEvent]
	RoleGranted          *event.Event1[*RoleChangedEvent]
	RoleRevoked          *event.Event1[*RoleChangedEvent]
	CustodianSet         *event.Event1[*RoleChangedEvent]
	AccountDisabled      *event.Event1[*RoleChangedEvent]
	AssetCreated         *event.Event1[*AssetCreatedEvent]
	ProjectDataSet       *event.Event1[*ProjectDataSetEvent]
	Minted               *event.Event1[*TransferEvent]
	Transferred          *event.Event1[*TransferEvent]
	Burned               *event.Event1[*BurnEvent]
	Approved             *event.Event1[*ApprovalEvent]
	ApprovalCancelled    *event.Event1[*ApprovalEvent]
	AssetFrozen          *event.Event1[model.AssetID]
	AssetThawed          *event.Event1[model.AssetID]
	AccountFrozen        *event.Event1[*AccountFreezeEvent]
	AccountThawed        *event.Event1[*AccountFreezeEvent]
	OwnershipTransferred *event.Event1[*OwnershipTransferredEvent]
	AssetDestroyed       *event.Event1[model.AssetID]

	event.Group[Events, *Events]
}

var NewEvents = event.CreateGroupConstructor(func() *Events {
	return &Events{
		RootTransferred:      event.New1[*RootTransferredEvent](),
		RoleGranted:          event.New1[*RoleChangedEvent](),
		RoleRevoked:          event.New1[*RoleChangedEvent](),
		CustodianSet:         event.New1[*RoleChangedEvent](),
		AccountDisabled:      event.New1[*RoleChangedEvent](),
		AssetCreated:         event.New1[*AssetCreatedEvent](),
		ProjectDataSet:       event.New1[*ProjectDataSetEvent](),
		Minted:               event.New1[*TransferEvent](),
		Transferred:          event.New1[*TransferEvent](),
		Burned:               event.New1[*BurnEvent](),
		Approved:             event.New1[*ApprovalEvent](),
		ApprovalCancelled:    event.New1[*ApprovalEvent](),
		AssetFrozen:          event.New1[model.AssetID](),
		AssetThawed:          event.New1[model.AssetID](),
		AccountFrozen:        event.New1[*AccountFreezeEvent](),
		AccountThawed:        event.New1[*AccountFreezeEvent](),
		OwnershipTransferred: event.New1[*OwnershipTransferredEvent](),
		AssetDestroyed:       event.New1[model.AssetID](),
	}
})

type RootTransferredEvent struct {
	Previous model.AccountID
	Current  model.AccountID
}

type RoleChangedEvent struct {
	Caller model.AccountID
	Target model.AccountID
	Role   model.RoleMask
}

type AssetCreatedEvent struct {
	AssetID model.AssetID
	Creator model.AccountID
	Name    string
	Symbol  string
}

type ProjectDataSetEvent struct {
	AssetID      model.AssetID
	Caller       model.AccountID
	SerialNumber string
}

type TransferEvent struct {
	AssetID model.AssetID
	From    model.AccountID
	To      model.AccountID
	Amount  model.Amount
}

type BurnEvent struct {
	AssetID model.AssetID
	Account model.AccountID
	Amount  model.Amount
	// Certificate is the cumulative amount retired by Account after this burn.
	Certificate model.Amount
}

type AccountFreezeEvent struct {
	AssetID model.AssetID
	Account model.AccountID
}

type OwnershipTransferredEvent struct {
	AssetID  model.AssetID
	Previous model.AccountID
	Current  model.AccountID
}

type ApprovalEvent struct {
	AssetID  model.AssetID
	Owner    model.AccountID
	Delegate model.AccountID
	Amount   model.Amount
}

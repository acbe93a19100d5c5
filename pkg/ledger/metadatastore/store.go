package metadatastore

import (
	"github.com/iotaledger/hive.go/ds/shrinkingmap"

	"github.com/carbonledger/carbon-core/pkg/model"
)

// Metadata is the descriptive record of an asset. Everything in it is opaque
// to the ledger: serial numbers and IPFS references are never interpreted or
// fetched, only stored for off-chain collaborators.
type Metadata struct {
	Name          string
	Symbol        string
	Decimals      uint8
	SerialNumber  string
	AmountClaimed model.Amount
	ProjectInfo   string
	IPFSReference string
	Deposit       model.Amount
}

// Store owns one metadata record per asset with upsert semantics. A
// placeholder (name, symbol, fixed decimals) is written when the asset is
// created; project data is filled in before the custodian mints against it.
type Store struct {
	entries *shrinkingmap.ShrinkingMap[model.AssetID, *Metadata]
}

func New() *Store {
	return &Store{
		entries: shrinkingmap.New[model.AssetID, *Metadata](),
	}
}

// Get returns a copy of the metadata record for the given asset.
func (s *Store) Get(id model.AssetID) (Metadata, bool) {
	entry, exists := s.entries.Get(id)
	if !exists {
		return Metadata{}, false
	}

	return *entry, true
}

// SetPlaceholder writes the initial record for a freshly created asset.
func (s *Store) SetPlaceholder(id model.AssetID, name string, symbol string) {
	s.entries.Set(id, &Metadata{
		Name:     name,
		Symbol:   symbol,
		Decimals: model.Decimals,
	})
}

// UpdateProjectData upserts the project fields of the record, preserving
// name, symbol, decimals and deposit. Authorization has been checked by the
// facade; this applier cannot fail.
func (s *Store) UpdateProjectData(id model.AssetID, serialNumber string, amountClaimed model.Amount, projectInfo string, ipfsReference string) {
	entry, _ := s.entries.GetOrCreate(id, func() *Metadata {
		return &Metadata{Decimals: model.Decimals}
	})

	entry.SerialNumber = serialNumber
	entry.AmountClaimed = amountClaimed
	entry.ProjectInfo = projectInfo
	entry.IPFSReference = ipfsReference
}

// Delete removes the record; used when the asset is destroyed.
func (s *Store) Delete(id model.AssetID) {
	s.entries.Delete(id)
}

// Size returns the number of metadata records.
func (s *Store) Size() int {
	return s.entries.Size()
}

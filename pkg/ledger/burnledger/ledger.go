package burnledger

import (
	"github.com/iotaledger/hive.go/core/safemath"
	"github.com/iotaledger/hive.go/ds/shrinkingmap"

	"github.com/carbonledger/carbon-core/pkg/model"
)

type certificateKey struct {
	Account model.AccountID
	Asset   model.AssetID
}

// Ledger owns the cumulative burn certificates: one monotonically increasing
// counter per (account, asset) pair, recording units irreversibly retired.
// Certificates outlive the asset they reference; destroying an asset does not
// touch its burn trail.
type Ledger struct {
	certificates *shrinkingmap.ShrinkingMap[certificateKey, model.Amount]
}

func New() *Ledger {
	return &Ledger{
		certificates: shrinkingmap.New[certificateKey, model.Amount](),
	}
}

// Record accumulates amount onto the certificate of the given pair, creating
// it on first burn. It is invoked only from the facade's burn step, after the
// debit has been validated, and cannot fail; accumulation saturates at the
// amount range bound instead of wrapping.
func (l *Ledger) Record(account model.AccountID, id model.AssetID, amount model.Amount) {
	key := certificateKey{Account: account, Asset: id}

	burned, _ := l.certificates.Get(key)
	total, err := safemath.SafeAdd(uint64(burned), uint64(amount))
	if err != nil {
		total = uint64(model.MaxAmount)
	}

	l.certificates.Set(key, model.Amount(total))
}

// CertificateOf returns the cumulative amount burned by account for the given
// asset, zero if nothing was ever burned.
func (l *Ledger) CertificateOf(account model.AccountID, id model.AssetID) model.Amount {
	burned, _ := l.certificates.Get(certificateKey{Account: account, Asset: id})
	return burned
}

// Size returns the number of certificates.
func (l *Ledger) Size() int {
	return l.certificates.Size()
}

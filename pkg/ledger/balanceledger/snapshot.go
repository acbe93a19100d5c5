package balanceledger

import (
	"io"

	"github.com/iotaledger/hive.go/ds/shrinkingmap"
	"github.com/iotaledger/hive.go/ds/types"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/stream"

	"github.com/carbonledger/carbon-core/pkg/model"
)

// Export writes all non-zero balance entries to the writer, followed by the
// per-asset frozen holder marks.
func (l *Ledger) Export(writer io.WriteSeeker) error {
	if err := l.exportBalances(writer); err != nil {
		return ierrors.Wrap(err, "failed to export balances")
	}
	if err := l.exportFrozen(writer); err != nil {
		return ierrors.Wrap(err, "failed to export frozen holders")
	}

	return nil
}

func (l *Ledger) exportBalances(writer io.WriteSeeker) error {
	return stream.WriteCollection(writer, serializer.SeriLengthPrefixTypeAsUint32, func() (int, error) {
		var exportedCount int
		var innerErr error

		l.balances.ForEach(func(key balanceKey, balance model.Amount) bool {
			if innerErr = stream.Write(writer, uint64(key.Asset)); innerErr != nil {
				innerErr = ierrors.Wrapf(innerErr, "failed to write asset id %d", key.Asset)
				return false
			}
			if innerErr = stream.WriteBytesWithSize(writer, key.Account.Bytes(), serializer.SeriLengthPrefixTypeAsUint16); innerErr != nil {
				innerErr = ierrors.Wrapf(innerErr, "failed to write account %s", key.Account)
				return false
			}
			if innerErr = stream.Write(writer, uint64(balance)); innerErr != nil {
				innerErr = ierrors.Wrapf(innerErr, "failed to write balance of %s", key.Account)
				return false
			}

			exportedCount++

			return true
		})

		return exportedCount, innerErr
	})
}

func (l *Ledger) exportFrozen(writer io.WriteSeeker) error {
	return stream.WriteCollection(writer, serializer.SeriLengthPrefixTypeAsUint32, func() (int, error) {
		var exportedCount int
		var innerErr error

		l.frozen.ForEachKey(func(key balanceKey) bool {
			if innerErr = stream.Write(writer, uint64(key.Asset)); innerErr != nil {
				innerErr = ierrors.Wrapf(innerErr, "failed to write asset id %d", key.Asset)
				return false
			}
			if innerErr = stream.WriteBytesWithSize(writer, key.Account.Bytes(), serializer.SeriLengthPrefixTypeAsUint16); innerErr != nil {
				innerErr = ierrors.Wrapf(innerErr, "failed to write frozen holder %s", key.Account)
				return false
			}

			exportedCount++

			return true
		})

		return exportedCount, innerErr
	})
}

// Import restores balance entries and frozen holder marks from the reader,
// replacing the current state.
func (l *Ledger) Import(reader io.ReadSeeker) error {
	if err := l.importBalances(reader); err != nil {
		return ierrors.Wrap(err, "failed to import balances")
	}
	if err := l.importFrozen(reader); err != nil {
		return ierrors.Wrap(err, "failed to import frozen holders")
	}

	return nil
}

func (l *Ledger) importBalances(reader io.ReadSeeker) error {
	l.balances = shrinkingmap.New[balanceKey, model.Amount]()

	return stream.ReadCollection(reader, serializer.SeriLengthPrefixTypeAsUint32, func(i int) error {
		id, err := stream.Read[uint64](reader)
		if err != nil {
			return ierrors.Wrapf(err, "failed to read asset id at index %d", i)
		}
		accountBytes, err := stream.ReadBytesWithSize(reader, serializer.SeriLengthPrefixTypeAsUint16)
		if err != nil {
			return ierrors.Wrapf(err, "failed to read account at index %d", i)
		}
		balance, err := stream.Read[uint64](reader)
		if err != nil {
			return ierrors.Wrapf(err, "failed to read balance at index %d", i)
		}

		l.balances.Set(balanceKey{
			Asset:   model.AssetID(id),
			Account: model.AccountIDFromBytes(accountBytes),
		}, model.Amount(balance))

		return nil
	})
}

func (l *Ledger) importFrozen(reader io.ReadSeeker) error {
	l.frozen = shrinkingmap.New[balanceKey, types.Empty]()

	return stream.ReadCollection(reader, serializer.SeriLengthPrefixTypeAsUint32, func(i int) error {
		id, err := stream.Read[uint64](reader)
		if err != nil {
			return ierrors.Wrapf(err, "failed to read asset id at index %d", i)
		}
		accountBytes, err := stream.ReadBytesWithSize(reader, serializer.SeriLengthPrefixTypeAsUint16)
		if err != nil {
			return ierrors.Wrapf(err, "failed to read frozen holder at index %d", i)
		}

		l.frozen.Set(balanceKey{
			Asset:   model.AssetID(id),
			Account: model.AccountIDFromBytes(accountBytes),
		}, types.Void)

		return nil
	})
}

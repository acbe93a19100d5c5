package burnledger

import (
	"io"

	"github.com/iotaledger/hive.go/ds/shrinkingmap"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/stream"

	"github.com/carbonledger/carbon-core/pkg/model"
)

// Export writes all burn certificates to the writer.
func (l *Ledger) Export(writer io.WriteSeeker) error {
	return stream.WriteCollection(writer, serializer.SeriLengthPrefixTypeAsUint32, func() (int, error) {
		var exportedCount int
		var innerErr error

		l.certificates.ForEach(func(key certificateKey, burned model.Amount) bool {
			if innerErr = stream.WriteBytesWithSize(writer, key.Account.Bytes(), serializer.SeriLengthPrefixTypeAsUint16); innerErr != nil {
				innerErr = ierrors.Wrapf(innerErr, "failed to write account %s", key.Account)
				return false
			}
			if innerErr = stream.Write(writer, uint64(key.Asset)); innerErr != nil {
				innerErr = ierrors.Wrapf(innerErr, "failed to write asset id %d", key.Asset)
				return false
			}
			if innerErr = stream.Write(writer, uint64(burned)); innerErr != nil {
				innerErr = ierrors.Wrapf(innerErr, "failed to write certificate of %s", key.Account)
				return false
			}

			exportedCount++

			return true
		})

		return exportedCount, innerErr
	})
}

// Import restores burn certificates from the reader, replacing the current
// state.
func (l *Ledger) Import(reader io.ReadSeeker) error {
	l.certificates = shrinkingmap.New[certificateKey, model.Amount]()

	return stream.ReadCollection(reader, serializer.SeriLengthPrefixTypeAsUint32, func(i int) error {
		accountBytes, err := stream.ReadBytesWithSize(reader, serializer.SeriLengthPrefixTypeAsUint16)
		if err != nil {
			return ierrors.Wrapf(err, "failed to read account at index %d", i)
		}
		id, err := stream.Read[uint64](reader)
		if err != nil {
			return ierrors.Wrapf(err, "failed to read asset id at index %d", i)
		}
		burned, err := stream.Read[uint64](reader)
		if err != nil {
			return ierrors.Wrapf(err, "failed to read certificate at index %d", i)
		}

		l.certificates.Set(certificateKey{
			Account: model.AccountIDFromBytes(accountBytes),
			Asset:   model.AssetID(id),
		}, model.Amount(burned))

		return nil
	})
}

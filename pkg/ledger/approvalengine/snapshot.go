package approvalengine

import (
	"io"

	"github.com/iotaledger/hive.go/ds/shrinkingmap"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/stream"

	"github.com/carbonledger/carbon-core/pkg/model"
)

// Export writes all live approvals to the writer.
func (e *Engine) Export(writer io.WriteSeeker) error {
	return stream.WriteCollection(writer, serializer.SeriLengthPrefixTypeAsUint32, func() (int, error) {
		var exportedCount int
		var innerErr error

		e.approvals.ForEach(func(key approvalKey, remaining model.Amount) bool {
			if innerErr = stream.Write(writer, uint64(key.Asset)); innerErr != nil {
				innerErr = ierrors.Wrapf(innerErr, "failed to write asset id %d", key.Asset)
				return false
			}
			if innerErr = stream.WriteBytesWithSize(writer, key.Owner.Bytes(), serializer.SeriLengthPrefixTypeAsUint16); innerErr != nil {
				innerErr = ierrors.Wrapf(innerErr, "failed to write owner %s", key.Owner)
				return false
			}
			if innerErr = stream.WriteBytesWithSize(writer, key.Delegate.Bytes(), serializer.SeriLengthPrefixTypeAsUint16); innerErr != nil {
				innerErr = ierrors.Wrapf(innerErr, "failed to write delegate %s", key.Delegate)
				return false
			}
			if innerErr = stream.Write(writer, uint64(remaining)); innerErr != nil {
				innerErr = ierrors.Wrapf(innerErr, "failed to write remaining allowance of %s", key.Owner)
				return false
			}

			exportedCount++

			return true
		})

		return exportedCount, innerErr
	})
}

// Import restores approvals from the reader, replacing the current state.
func (e *Engine) Import(reader io.ReadSeeker) error {
	e.approvals = shrinkingmap.New[approvalKey, model.Amount]()

	return stream.ReadCollection(reader, serializer.SeriLengthPrefixTypeAsUint32, func(i int) error {
		id, err := stream.Read[uint64](reader)
		if err != nil {
			return ierrors.Wrapf(err, "failed to read asset id at index %d", i)
		}
		ownerBytes, err := stream.ReadBytesWithSize(reader, serializer.SeriLengthPrefixTypeAsUint16)
		if err != nil {
			return ierrors.Wrapf(err, "failed to read owner at index %d", i)
		}
		delegateBytes, err := stream.ReadBytesWithSize(reader, serializer.SeriLengthPrefixTypeAsUint16)
		if err != nil {
			return ierrors.Wrapf(err, "failed to read delegate at index %d", i)
		}
		remaining, err := stream.Read[uint64](reader)
		if err != nil {
			return ierrors.Wrapf(err, "failed to read remaining allowance at index %d", i)
		}

		e.approvals.Set(approvalKey{
			Asset:    model.AssetID(id),
			Owner:    model.AccountIDFromBytes(ownerBytes),
			Delegate: model.AccountIDFromBytes(delegateBytes),
		}, model.Amount(remaining))

		return nil
	})
}

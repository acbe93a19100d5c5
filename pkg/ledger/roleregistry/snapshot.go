package roleregistry

import (
	"io"
	"time"

	"github.com/iotaledger/hive.go/ds/shrinkingmap"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/stream"

	"github.com/carbonledger/carbon-core/pkg/model"
)

// Export writes all registry entries to the given writer.
func (r *Registry) Export(writer io.WriteSeeker) error {
	if err := stream.WriteBytesWithSize(writer, r.root.Bytes(), serializer.SeriLengthPrefixTypeAsUint16); err != nil {
		return ierrors.Wrap(err, "failed to write root account")
	}

	return stream.WriteCollection(writer, serializer.SeriLengthPrefixTypeAsUint32, func() (int, error) {
		var exportedCount int
		var innerErr error

		r.entries.ForEach(func(account model.AccountID, entry *Entry) bool {
			if innerErr = stream.WriteBytesWithSize(writer, account.Bytes(), serializer.SeriLengthPrefixTypeAsUint16); innerErr != nil {
				innerErr = ierrors.Wrapf(innerErr, "failed to write account %s", account)
				return false
			}
			if innerErr = stream.Write(writer, uint32(entry.Roles)); innerErr != nil {
				innerErr = ierrors.Wrapf(innerErr, "failed to write roles of %s", account)
				return false
			}
			if innerErr = stream.Write(writer, entry.Identity); innerErr != nil {
				innerErr = ierrors.Wrapf(innerErr, "failed to write identity of %s", account)
				return false
			}
			if innerErr = stream.Write(writer, entry.CreatedAt.UnixNano()); innerErr != nil {
				innerErr = ierrors.Wrapf(innerErr, "failed to write creation time of %s", account)
				return false
			}

			exportedCount++

			return true
		})

		return exportedCount, innerErr
	})
}

// Import restores registry entries from the given reader, replacing the
// current state.
func (r *Registry) Import(reader io.ReadSeeker) error {
	r.entries = shrinkingmap.New[model.AccountID, *Entry]()

	rootBytes, err := stream.ReadBytesWithSize(reader, serializer.SeriLengthPrefixTypeAsUint16)
	if err != nil {
		return ierrors.Wrap(err, "failed to read root account")
	}
	r.root = model.AccountIDFromBytes(rootBytes)

	return stream.ReadCollection(reader, serializer.SeriLengthPrefixTypeAsUint32, func(i int) error {
		accountBytes, err := stream.ReadBytesWithSize(reader, serializer.SeriLengthPrefixTypeAsUint16)
		if err != nil {
			return ierrors.Wrapf(err, "failed to read account at index %d", i)
		}
		roles, err := stream.Read[uint32](reader)
		if err != nil {
			return ierrors.Wrapf(err, "failed to read roles at index %d", i)
		}
		identity, err := stream.Read[uint64](reader)
		if err != nil {
			return ierrors.Wrapf(err, "failed to read identity at index %d", i)
		}
		createdAt, err := stream.Read[int64](reader)
		if err != nil {
			return ierrors.Wrapf(err, "failed to read creation time at index %d", i)
		}

		r.entries.Set(model.AccountIDFromBytes(accountBytes), &Entry{
			Roles:     model.RoleMask(roles),
			Identity:  identity,
			CreatedAt: time.Unix(0, createdAt),
		})

		return nil
	})
}

package assetregistry

import (
	"io"

	"github.com/iotaledger/hive.go/ds/shrinkingmap"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/stream"

	"github.com/carbonledger/carbon-core/pkg/model"
)

// Export writes the allocator position and all live assets to the writer.
func (r *Registry) Export(writer io.WriteSeeker) error {
	if err := stream.Write(writer, uint64(r.lastID)); err != nil {
		return ierrors.Wrap(err, "failed to write last asset id")
	}

	return stream.WriteCollection(writer, serializer.SeriLengthPrefixTypeAsUint32, func() (int, error) {
		var exportedCount int
		var innerErr error

		r.assets.ForEach(func(id model.AssetID, asset *Asset) bool {
			if innerErr = stream.Write(writer, uint64(id)); innerErr != nil {
				innerErr = ierrors.Wrapf(innerErr, "failed to write asset id %d", id)
				return false
			}
			if innerErr = stream.WriteBytesWithSize(writer, asset.Creator.Bytes(), serializer.SeriLengthPrefixTypeAsUint16); innerErr != nil {
				innerErr = ierrors.Wrapf(innerErr, "failed to write creator of asset %d", id)
				return false
			}
			if innerErr = stream.Write(writer, uint64(asset.Supply)); innerErr != nil {
				innerErr = ierrors.Wrapf(innerErr, "failed to write supply of asset %d", id)
				return false
			}
			if innerErr = stream.Write(writer, asset.Frozen); innerErr != nil {
				innerErr = ierrors.Wrapf(innerErr, "failed to write frozen flag of asset %d", id)
				return false
			}

			exportedCount++

			return true
		})

		return exportedCount, innerErr
	})
}

// Import restores the asset catalogue from the reader, replacing the current
// state.
func (r *Registry) Import(reader io.ReadSeeker) error {
	r.assets = shrinkingmap.New[model.AssetID, *Asset]()

	lastID, err := stream.Read[uint64](reader)
	if err != nil {
		return ierrors.Wrap(err, "failed to read last asset id")
	}
	r.lastID = model.AssetID(lastID)

	return stream.ReadCollection(reader, serializer.SeriLengthPrefixTypeAsUint32, func(i int) error {
		id, err := stream.Read[uint64](reader)
		if err != nil {
			return ierrors.Wrapf(err, "failed to read asset id at index %d", i)
		}
		creatorBytes, err := stream.ReadBytesWithSize(reader, serializer.SeriLengthPrefixTypeAsUint16)
		if err != nil {
			return ierrors.Wrapf(err, "failed to read creator of asset %d", id)
		}
		supply, err := stream.Read[uint64](reader)
		if err != nil {
			return ierrors.Wrapf(err, "failed to read supply of asset %d", id)
		}
		frozen, err := stream.Read[bool](reader)
		if err != nil {
			return ierrors.Wrapf(err, "failed to read frozen flag of asset %d", id)
		}

		r.assets.Set(model.AssetID(id), &Asset{
			ID:      model.AssetID(id),
			Creator: model.AccountIDFromBytes(creatorBytes),
			Supply:  model.Amount(supply),
			Frozen:  frozen,
		})

		return nil
	})
}

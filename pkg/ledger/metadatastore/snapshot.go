package metadatastore

import (
	"io"

	"github.com/iotaledger/hive.go/ds/shrinkingmap"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/stream"

	"github.com/carbonledger/carbon-core/pkg/model"
)

// Export writes all metadata records to the writer.
func (s *Store) Export(writer io.WriteSeeker) error {
	return stream.WriteCollection(writer, serializer.SeriLengthPrefixTypeAsUint32, func() (int, error) {
		var exportedCount int
		var innerErr error

		s.entries.ForEach(func(id model.AssetID, entry *Metadata) bool {
			if innerErr = s.exportEntry(writer, id, entry); innerErr != nil {
				return false
			}

			exportedCount++

			return true
		})

		return exportedCount, innerErr
	})
}

func (s *Store) exportEntry(writer io.WriteSeeker, id model.AssetID, entry *Metadata) error {
	if err := stream.Write(writer, uint64(id)); err != nil {
		return ierrors.Wrapf(err, "failed to write asset id %d", id)
	}

	for _, field := range []struct {
		name  string
		value string
	}{
		{"name", entry.Name},
		{"symbol", entry.Symbol},
		{"serial number", entry.SerialNumber},
		{"project info", entry.ProjectInfo},
		{"ipfs reference", entry.IPFSReference},
	} {
		if err := stream.WriteBytesWithSize(writer, []byte(field.value), serializer.SeriLengthPrefixTypeAsUint32); err != nil {
			return ierrors.Wrapf(err, "failed to write %s of asset %d", field.name, id)
		}
	}

	if err := stream.Write(writer, entry.Decimals); err != nil {
		return ierrors.Wrapf(err, "failed to write decimals of asset %d", id)
	}
	if err := stream.Write(writer, uint64(entry.AmountClaimed)); err != nil {
		return ierrors.Wrapf(err, "failed to write claimed amount of asset %d", id)
	}
	if err := stream.Write(writer, uint64(entry.Deposit)); err != nil {
		return ierrors.Wrapf(err, "failed to write deposit of asset %d", id)
	}

	return nil
}

// Import restores metadata records from the reader, replacing the current
// state.
func (s *Store) Import(reader io.ReadSeeker) error {
	s.entries = shrinkingmap.New[model.AssetID, *Metadata]()

	return stream.ReadCollection(reader, serializer.SeriLengthPrefixTypeAsUint32, func(i int) error {
		id, err := stream.Read[uint64](reader)
		if err != nil {
			return ierrors.Wrapf(err, "failed to read asset id at index %d", i)
		}

		entry := &Metadata{}
		for _, target := range []*string{&entry.Name, &entry.Symbol, &entry.SerialNumber, &entry.ProjectInfo, &entry.IPFSReference} {
			fieldBytes, err := stream.ReadBytesWithSize(reader, serializer.SeriLengthPrefixTypeAsUint32)
			if err != nil {
				return ierrors.Wrapf(err, "failed to read metadata field of asset %d", id)
			}
			*target = string(fieldBytes)
		}

		if entry.Decimals, err = stream.Read[uint8](reader); err != nil {
			return ierrors.Wrapf(err, "failed to read decimals of asset %d", id)
		}
		claimed, err := stream.Read[uint64](reader)
		if err != nil {
			return ierrors.Wrapf(err, "failed to read claimed amount of asset %d", id)
		}
		entry.AmountClaimed = model.Amount(claimed)
		deposit, err := stream.Read[uint64](reader)
		if err != nil {
			return ierrors.Wrapf(err, "failed to read deposit of asset %d", id)
		}
		entry.Deposit = model.Amount(deposit)

		s.entries.Set(model.AssetID(id), entry)

		return nil
	})
}

package ledger

import (
	"io"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/stream"
)

// SnapshotVersion is bumped whenever the snapshot layout changes.
const SnapshotVersion byte = 1

// Export writes the full committed ledger state to writer. The components
// are serialized in a fixed order behind a single version byte.
func (l *Ledger) Export(writer io.WriteSeeker) error {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	if err := stream.Write(writer, SnapshotVersion); err != nil {
		return ierrors.Wrap(err, "failed to write snapshot version")
	}

	if err := l.roles.Export(writer); err != nil {
		return ierrors.Wrap(err, "failed to export role registry")
	}
	if err := l.assets.Export(writer); err != nil {
		return ierrors.Wrap(err, "failed to export asset registry")
	}
	if err := l.metadata.Export(writer); err != nil {
		return ierrors.Wrap(err, "failed to export metadata store")
	}
	if err := l.balances.Export(writer); err != nil {
		return ierrors.Wrap(err, "failed to export balance ledger")
	}
	if err := l.approvals.Export(writer); err != nil {
		return ierrors.Wrap(err, "failed to export approval engine")
	}
	if err := l.burns.Export(writer); err != nil {
		return ierrors.Wrap(err, "failed to export burn ledger")
	}

	return nil
}

// Import replaces the ledger state with the snapshot read from reader and
// blows the genesis fuse.
func (l *Ledger) Import(reader io.ReadSeeker) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	version, err := stream.Read[byte](reader)
	if err != nil {
		return ierrors.Wrap(err, "failed to read snapshot version")
	}
	if version != SnapshotVersion {
		return ierrors.Errorf("snapshot version %d is not supported (expected %d)", version, SnapshotVersion)
	}

	if err := l.roles.Import(reader); err != nil {
		return ierrors.Wrap(err, "failed to import role registry")
	}
	if err := l.assets.Import(reader); err != nil {
		return ierrors.Wrap(err, "failed to import asset registry")
	}
	if err := l.metadata.Import(reader); err != nil {
		return ierrors.Wrap(err, "failed to import metadata store")
	}
	if err := l.balances.Import(reader); err != nil {
		return ierrors.Wrap(err, "failed to import balance ledger")
	}
	if err := l.approvals.Import(reader); err != nil {
		return ierrors.Wrap(err, "failed to import approval engine")
	}
	if err := l.burns.Import(reader); err != nil {
		return ierrors.Wrap(err, "failed to import burn ledger")
	}

	l.sealed = true

	l.log.LogDebug("snapshot imported", "accounts", l.roles.Size(), "assets", l.assets.Size())

	return nil
}

package ledger

import (
	"io"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/serializer/v2/stream"
)

const (
	storePrefixVersion byte = iota
	storePrefixRoles
	storePrefixAssets
	storePrefixMetadata
	storePrefixBalances
	storePrefixApprovals
	storePrefixBurns
)

var storeKeyState = []byte{0}

// Persist writes the committed ledger state into the given store, one realm
// per component, and flushes it.
func (l *Ledger) Persist(store kvstore.KVStore) error {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	if err := store.Set([]byte{storePrefixVersion}, []byte{SnapshotVersion}); err != nil {
		return ierrors.Wrap(err, "failed to store state version")
	}

	for _, component := range []struct {
		name   string
		prefix byte
		export func(io.WriteSeeker) error
	}{
		{"role registry", storePrefixRoles, l.roles.Export},
		{"asset registry", storePrefixAssets, l.assets.Export},
		{"metadata store", storePrefixMetadata, l.metadata.Export},
		{"balance ledger", storePrefixBalances, l.balances.Export},
		{"approval engine", storePrefixApprovals, l.approvals.Export},
		{"burn ledger", storePrefixBurns, l.burns.Export},
	} {
		if err := persistComponent(store, component.prefix, component.export); err != nil {
			return ierrors.Wrapf(err, "failed to persist %s", component.name)
		}
	}

	return store.Flush()
}

// Restore replaces the ledger state with the one previously written by
// Persist and blows the genesis fuse.
func (l *Ledger) Restore(store kvstore.KVStore) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	version, err := store.Get([]byte{storePrefixVersion})
	if err != nil {
		return ierrors.Wrap(err, "failed to load state version")
	}
	if len(version) != 1 || version[0] != SnapshotVersion {
		return ierrors.Errorf("state version %v is not supported (expected %d)", version, SnapshotVersion)
	}

	for _, component := range []struct {
		name    string
		prefix  byte
		restore func(io.ReadSeeker) error
	}{
		{"role registry", storePrefixRoles, l.roles.Import},
		{"asset registry", storePrefixAssets, l.assets.Import},
		{"metadata store", storePrefixMetadata, l.metadata.Import},
		{"balance ledger", storePrefixBalances, l.balances.Import},
		{"approval engine", storePrefixApprovals, l.approvals.Import},
		{"burn ledger", storePrefixBurns, l.burns.Import},
	} {
		if err := restoreComponent(store, component.prefix, component.restore); err != nil {
			return ierrors.Wrapf(err, "failed to restore %s", component.name)
		}
	}

	l.sealed = true

	l.log.LogDebug("state restored", "accounts", l.roles.Size(), "assets", l.assets.Size())

	return nil
}

func persistComponent(store kvstore.KVStore, prefix byte, export func(io.WriteSeeker) error) error {
	byteBuffer := stream.NewByteBuffer()
	if err := export(byteBuffer); err != nil {
		return err
	}

	bytes, err := byteBuffer.Bytes()
	if err != nil {
		return err
	}

	return lo.PanicOnErr(store.WithExtendedRealm(kvstore.Realm{prefix})).Set(storeKeyState, bytes)
}

func restoreComponent(store kvstore.KVStore, prefix byte, restore func(io.ReadSeeker) error) error {
	bytes, err := lo.PanicOnErr(store.WithExtendedRealm(kvstore.Realm{prefix})).Get(storeKeyState)
	if err != nil {
		return err
	}

	return restore(stream.NewByteReader(bytes))
}

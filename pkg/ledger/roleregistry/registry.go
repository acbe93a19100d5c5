package roleregistry

import (
	"time"

	"github.com/iotaledger/hive.go/ds/shrinkingmap"

	"github.com/carbonledger/carbon-core/pkg/model"
)

// Entry holds the capability mask of a registered account together with the
// external identity hook and the registration time. Entries are zeroed on
// full revocation but never deleted, so related records keep resolving.
type Entry struct {
	Roles     model.RoleMask
	Identity  uint64
	CreatedAt time.Time
}

// Registry maps account identifiers to role masks. It is the exclusive owner
// of role state; all validation happens in the ledger facade, which also
// serializes access, so the registry itself carries no lock.
type Registry struct {
	entries *shrinkingmap.ShrinkingMap[model.AccountID, *Entry]

	// root tracks the current master holder; empty while unassigned.
	root model.AccountID
}

func New() *Registry {
	return &Registry{
		entries: shrinkingmap.New[model.AccountID, *Entry](),
	}
}

// RoleOf returns the role mask of the given account, RolesNone if the account
// was never registered or has been disabled.
func (r *Registry) RoleOf(account model.AccountID) model.RoleMask {
	entry, exists := r.entries.Get(account)
	if !exists {
		return model.RolesNone
	}

	return entry.Roles
}

// HasRole returns true if the account holds every bit of the given role. It
// is a pure read reflecting the most recently committed state.
func (r *Registry) HasRole(account model.AccountID, role model.RoleMask) bool {
	return r.RoleOf(account).Has(role)
}

// Entry returns a copy of the account's registry entry.
func (r *Registry) Entry(account model.AccountID) (Entry, bool) {
	entry, exists := r.entries.Get(account)
	if !exists {
		return Entry{}, false
	}

	return *entry, true
}

// Root returns the current master holder, if any.
func (r *Registry) Root() (model.AccountID, bool) {
	return r.root, !r.root.IsEmpty()
}

// Size returns the number of registered accounts, disabled ones included.
func (r *Registry) Size() int {
	return r.entries.Size()
}

// ForEach iterates over all entries until the consumer returns false.
func (r *Registry) ForEach(consumer func(account model.AccountID, entry Entry) bool) {
	r.entries.ForEach(func(account model.AccountID, entry *Entry) bool {
		return consumer(account, *entry)
	})
}

// TransferRoot moves the master bit to target, clearing it on the previous
// holder. The caller has already authorized the transfer; this applier cannot
// fail.
func (r *Registry) TransferRoot(target model.AccountID, now time.Time) {
	if previous, exists := r.entries.Get(r.root); exists {
		previous.Roles = previous.Roles.Remove(model.RoleMaster)
	}

	r.grant(target, model.RoleMaster, 0, now)
	r.root = target
}

// Grant adds the given role bits to target, registering the account on first
// contact. Validation of the mask is the facade's responsibility.
func (r *Registry) Grant(target model.AccountID, role model.RoleMask, now time.Time) {
	r.grant(target, role, 0, now)
}

// GrantWithIdentity is Grant for genesis and initial registration, carrying
// the external identity reference.
func (r *Registry) GrantWithIdentity(target model.AccountID, role model.RoleMask, identity uint64, now time.Time) {
	r.grant(target, role, identity, now)
}

func (r *Registry) grant(target model.AccountID, role model.RoleMask, identity uint64, now time.Time) {
	entry, _ := r.entries.GetOrCreate(target, func() *Entry {
		return &Entry{Identity: identity, CreatedAt: now}
	})

	entry.Roles = entry.Roles.Add(role)
}

// Revoke clears the given role bits on target.
func (r *Registry) Revoke(target model.AccountID, role model.RoleMask) {
	if entry, exists := r.entries.Get(target); exists {
		entry.Roles = entry.Roles.Remove(role)
	}
}

// Disable zeroes the role mask of target. The entry is kept so that ledger
// records referring to the account stay resolvable.
func (r *Registry) Disable(target model.AccountID) {
	if entry, exists := r.entries.Get(target); exists {
		entry.Roles = model.RolesNone
	}

	if r.root == target {
		r.root = model.EmptyAccountID
	}
}

// Has returns true if the account was ever registered.
func (r *Registry) Has(account model.AccountID) bool {
	return r.entries.Has(account)
}

package model

import "strings"

// RoleMask is a bit set of capabilities held by an account. An account can
// hold several roles at once; authorization checks test individual bits.
type RoleMask uint32

const (
	// RoleMaster is the administrative root capability. It can grant and
	// revoke every other role. At most one account holds it at any time and
	// it is transferred, never granted alongside other roles.
	RoleMaster RoleMask = 1 << iota
	// RoleCustodian verifies tokenization requests and is the only role
	// allowed to mint, burn on behalf of holders, freeze, thaw and destroy
	// assets.
	RoleCustodian
	// RoleProjectOwner marks accounts that originate carbon projects.
	RoleProjectOwner
	// RoleAuditor marks accounts that audit project documentation.
	RoleAuditor
	// RoleStandard marks carbon standard bodies.
	RoleStandard
	// RoleInvestor marks accounts holding credits for investment.
	RoleInvestor
	// RoleRegistry marks external registry operators.
	RoleRegistry

	// RolesNone is the mask of a disabled account.
	RolesNone RoleMask = 0

	// RolesAll is the union of every defined role bit.
	RolesAll = RoleMaster | RoleCustodian | RoleProjectOwner | RoleAuditor |
		RoleStandard | RoleInvestor | RoleRegistry
)

var roleNames = []struct {
	bit  RoleMask
	name string
}{
	{RoleMaster, "master"},
	{RoleCustodian, "custodian"},
	{RoleProjectOwner, "project-owner"},
	{RoleAuditor, "auditor"},
	{RoleStandard, "standard"},
	{RoleInvestor, "investor"},
	{RoleRegistry, "registry"},
}

// Has returns true if every bit of role is contained in the mask.
func (r RoleMask) Has(role RoleMask) bool {
	return r&role == role && role != RolesNone
}

// Add returns the mask with the given role bits set.
func (r RoleMask) Add(role RoleMask) RoleMask {
	return r | role
}

// Remove returns the mask with the given role bits cleared.
func (r RoleMask) Remove(role RoleMask) RoleMask {
	return r &^ role
}

// IsValid returns true for a non-empty mask composed only of defined bits.
func (r RoleMask) IsValid() bool {
	return r != RolesNone && r&^RolesAll == RolesNone
}

// IsGrantable returns true for a valid mask that does not include the master
// bit. The master role moves through the dedicated root-transfer path only.
func (r RoleMask) IsGrantable() bool {
	return r.IsValid() && !r.Has(RoleMaster)
}

func (r RoleMask) String() string {
	if r == RolesNone {
		return "none"
	}

	names := make([]string, 0, len(roleNames))
	for _, candidate := range roleNames {
		if r.Has(candidate.bit) {
			names = append(names, candidate.name)
		}
	}

	return strings.Join(names, "+")
}

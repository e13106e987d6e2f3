package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Role is one of the fixed system roles
type Role string

const (
	RoleUser      Role = "User"
	RoleCompanyHR Role = "Company_HR"
	RoleAdmin     Role = "admin"
)

var allRoles = []Role{RoleUser, RoleCompanyHR, RoleAdmin}

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleCompanyHR, RoleAdmin:
		return true
	}
	return false
}

// ParseRole converts a raw string to a Role; the empty string yields RoleUser.
func ParseRole(raw string) (Role, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return RoleUser, nil
	}
	r := Role(raw)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", raw)
	}
	return r, nil
}

// RoleSet is the allow-set of roles a route accepts
type RoleSet map[Role]struct{}

// NewRoleSet builds a RoleSet; invalid roles are dropped.
func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		if r.Valid() {
			set[r] = struct{}{}
		}
	}
	return set
}

// Contains reports whether r is allowed by the set.
func (s RoleSet) Contains(r Role) bool {
	_, ok := s[r]
	return ok
}

// Roles returns the members in a stable order.
func (s RoleSet) Roles() []Role {
	out := make([]Role, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s RoleSet) String() string {
	names := make([]string, 0, len(s))
	for _, r := range s.Roles() {
		names = append(names, string(r))
	}
	return strings.Join(names, ",")
}

// Allow-sets declared on routes.
var (
	RolesUser           = NewRoleSet(RoleUser)
	RolesCompanyHR      = NewRoleSet(RoleCompanyHR)
	RolesAdmin          = NewRoleSet(RoleAdmin)
	RolesUserAdmin      = NewRoleSet(RoleUser, RoleAdmin)
	RolesUserCompanyHR  = NewRoleSet(RoleUser, RoleCompanyHR)
	RolesCompanyHRAdmin = NewRoleSet(RoleCompanyHR, RoleAdmin)
	RolesAll            = NewRoleSet(allRoles...)
)

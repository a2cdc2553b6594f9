package models

import "strings"

// Role is shared by staff and tutors. Staff members hold one of the first
// three values; tutor accounts always hold RoleTutor.
type Role string

const (
	RoleAttendant     Role = "ATENDENTE"
	RoleVeterinarian  Role = "VETERINARIO"
	RoleAdministrator Role = "ADMINISTRADOR"
	RoleTutor         Role = "TUTOR"
)

var StaffRoles = []Role{RoleAttendant, RoleVeterinarian, RoleAdministrator}

// ParseRole matches s against the known roles, ignoring case and surrounding
// whitespace.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	switch r {
	case RoleAttendant, RoleVeterinarian, RoleAdministrator, RoleTutor:
		return r, true
	}
	return "", false
}

func (r Role) IsStaff() bool {
	for _, s := range StaffRoles {
		if r == s {
			return true
		}
	}
	return false
}

func (r Role) String() string { return string(r) }

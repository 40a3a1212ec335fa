package authroles

import (
	domainauth "github.com/Mohamed-Esmat/fms-upskilling-guide/internal/domain/auth"
)

// GroupRoleMapper derives the application role from the user's API
// group name. Only the SuperAdmin group maps to the administrative
// role; every other value, including unexpected ones, maps to the
// standard-user role.
type GroupRoleMapper struct {
	AdminGroup string
}

// NewGroupRoleMapper returns a mapper with the default admin group.
func NewGroupRoleMapper() GroupRoleMapper {
	return GroupRoleMapper{AdminGroup: domainauth.GroupSuperAdmin}
}

func (m GroupRoleMapper) Map(groupName string) domainauth.Role {
	if m.AdminGroup != "" && groupName == m.AdminGroup {
		return domainauth.RoleAdmin
	}
	return domainauth.RoleUser
}

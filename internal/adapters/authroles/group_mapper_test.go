package authroles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/Mohamed-Esmat/fms-upskilling-guide/internal/domain/auth"
)

func TestGroupRoleMapper_Map(t *testing.T) {
	mapper := NewGroupRoleMapper()

	tests := []struct {
		name     string
		group    string
		expected domainauth.Role
	}{
		{name: "super admin group", group: domainauth.GroupSuperAdmin, expected: domainauth.RoleAdmin},
		{name: "system user group", group: domainauth.GroupSystemUser, expected: domainauth.RoleUser},
		{name: "unexpected group", group: "Auditors", expected: domainauth.RoleUser},
		{name: "case mismatch is not admin", group: "superadmin", expected: domainauth.RoleUser},
		{name: "empty group", group: "", expected: domainauth.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapper.Map(tt.group))
		})
	}
}

func TestGroupRoleMapper_CustomAdminGroup(t *testing.T) {
	mapper := GroupRoleMapper{AdminGroup: "Operators"}

	assert.Equal(t, domainauth.RoleAdmin, mapper.Map("Operators"))
	assert.Equal(t, domainauth.RoleUser, mapper.Map(domainauth.GroupSuperAdmin))
}

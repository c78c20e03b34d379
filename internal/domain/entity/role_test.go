package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllows(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		granted  Permissions
		required []Permission
		want     bool
	}{
		{name: "admin without explicit permissions", role: RoleAdmin, granted: nil, required: []Permission{PermAccountsBlock}, want: true},
		{name: "operator with permission", role: RoleOperator, granted: Permissions{PermPeopleRead}, required: []Permission{PermPeopleRead}, want: true},
		{name: "operator missing one of two", role: RoleOperator, granted: Permissions{PermPeopleRead}, required: []Permission{PermPeopleRead, PermPeopleWrite}, want: false},
		{name: "nothing required", role: RoleViewer, granted: nil, required: nil, want: true},
		{name: "unknown role", role: Role("GUEST"), granted: nil, required: []Permission{PermPeopleRead}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allows(tt.role, tt.granted, tt.required...))
		})
	}
}

func TestPermissionsFromStrings_FiltersUnknownAndDuplicates(t *testing.T) {
	got := PermissionsFromStrings([]string{"PESSOAS_LER", "BOGUS", "PESSOAS_LER", "USUARIOS_LER"})

	assert.Equal(t, Permissions{PermPeopleRead, PermAccountsRead}, got)
}

func TestDefaultPermissions(t *testing.T) {
	assert.ElementsMatch(t, AllPermissions, DefaultPermissions(RoleAdmin))
	assert.True(t, DefaultPermissions(RoleOperator).Contains(PermPeopleWrite))
	assert.False(t, DefaultPermissions(RoleViewer).Contains(PermPeopleWrite))
	assert.Empty(t, DefaultPermissions(Role("")))
}

func TestUserProfile_Can(t *testing.T) {
	var nilProfile *UserProfile
	assert.False(t, nilProfile.Can())

	p := &UserProfile{Role: RoleViewer, Permissions: DefaultPermissions(RoleViewer)}
	assert.True(t, p.Can(PermPeopleRead))
	assert.False(t, p.Can(PermAccountsWrite))
}

package decor

import (
	"slices"
	"testing"
)

func TestRoles(t *testing.T) {
	roles := slices.Collect(Roles())
	expected := []Role{RoleScreenshot, RolePresetWidth, RoleClose, RoleMinimize, RoleMaximize}
	if !slices.Equal(roles, expected) {
		t.Fatalf("roles = %v", roles)
	}

	for _, r := range roles {
		if !r.Valid() || r.String() == "invalid" {
			t.Errorf("role %d is not valid", int(r))
		}
	}
	if NumRoles.Valid() || Role(-1).Valid() {
		t.Error("out of range role is valid")
	}
}

package model

import "testing"

func TestScopeAllowed(t *testing.T) {
	tests := []struct {
		name  string
		role  Role
		roles []Role
		want  bool
	}{
		{"listed role", RoleLeadGuide, []Role{RoleAdmin, RoleLeadGuide}, true},
		{"unlisted role", RoleGuide, []Role{RoleAdmin, RoleLeadGuide}, false},
		{"admin always", RoleAdmin, []Role{RoleUser}, true},
		{"no roles", RoleUser, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Scope{Role: tt.role}).Allowed(tt.roles...); got != tt.want {
				t.Errorf("Allowed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoleIsValid(t *testing.T) {
	if !RoleLeadGuide.IsValid() {
		t.Errorf("lead-guide should be valid")
	}
	if Role("superuser").IsValid() {
		t.Errorf("superuser should be invalid")
	}
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_CanLogin(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		approved bool
		want     bool
	}{
		{"approved user", RoleUser, true, true},
		{"unapproved user", RoleUser, false, false},
		{"admin bypasses approval gate", RoleAdmin, false, true},
		{"approved admin", RoleAdmin, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &User{Role: tt.role, Approved: tt.approved}
			assert.Equal(t, tt.want, user.CanLogin())
		})
	}
}

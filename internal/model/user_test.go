package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRolePrecedence(t *testing.T) {
	cases := []struct {
		name string
		user User
		want UserRole
	}{
		{"no flags", User{}, RoleUnspecified},
		{"student", User{IsStudent: true}, RoleStudent},
		{"instructor", User{IsInstructor: true}, RoleInstructor},
		{"client", User{IsClient: true}, RoleClient},
		{"superuser wins over all", User{IsSuperuser: true, IsStudent: true, IsInstructor: true, IsClient: true}, RoleAdmin},
		{"student wins over instructor", User{IsStudent: true, IsInstructor: true}, RoleStudent},
		{"instructor wins over client", User{IsInstructor: true, IsClient: true}, RoleInstructor},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.user.Role())
		})
	}
}

func TestUserFullName(t *testing.T) {
	u := User{Username: "jdoe", FirstName: "Jane", LastName: "Doe"}
	assert.Equal(t, "Jane Doe", u.FullName())

	u.LastName = ""
	assert.Equal(t, "jdoe", u.FullName())
}

func TestUserHasCustomPicture(t *testing.T) {
	assert.False(t, (&User{Picture: DefaultPicture}).HasCustomPicture())
	assert.False(t, (&User{}).HasCustomPicture())
	assert.True(t, (&User{Picture: "/uploads/profile_pictures/2026/1/2/abc.png"}).HasCustomPicture())
}

package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwenda/classtrack/core"
)

func TestUser_SetCheckPassword(t *testing.T) {
	var usr User
	require.NoError(t, usr.SetPassword("s3cr3t!"))

	assert.NotEmpty(t, usr.PasswordHash)
	assert.NotContains(t, string(usr.PasswordHash), "s3cr3t!")

	assert.NoError(t, usr.CheckPassword("s3cr3t!"))
	assert.Error(t, usr.CheckPassword("wrong"))
	assert.Error(t, usr.CheckPassword(""))
}

func TestNewUser_Validate(t *testing.T) {
	validate, _ := core.NewValidator()

	tests := []struct {
		name    string
		data    NewUser
		wantErr bool
	}{
		{
			name: "valid teacher",
			data: NewUser{Name: "T One", Email: "t1@x.com", Password: "pwd", Role: "teacher"},
		},
		{
			name: "valid student",
			data: NewUser{Name: "S One", Email: "s1@x.com", Password: "pwd", Role: "student"},
		},
		{
			name:    "missing name",
			data:    NewUser{Email: "t1@x.com", Password: "pwd", Role: "teacher"},
			wantErr: true,
		},
		{
			name:    "bad email",
			data:    NewUser{Name: "T", Email: "not-an-email", Password: "pwd", Role: "teacher"},
			wantErr: true,
		},
		{
			name:    "missing password",
			data:    NewUser{Name: "T", Email: "t1@x.com", Role: "teacher"},
			wantErr: true,
		},
		{
			name:    "unknown role",
			data:    NewUser{Name: "T", Email: "t1@x.com", Password: "pwd", Role: "admin"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.data.Validate(validate)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewUser_Validate_normalizes(t *testing.T) {
	validate, _ := core.NewValidator()

	data := NewUser{Name: "  T One  ", Email: " T1@X.Com ", Password: "pwd", Role: " Teacher "}
	require.NoError(t, data.Validate(validate))

	assert.Equal(t, "T One", data.Name)
	assert.Equal(t, "t1@x.com", data.Email)
	assert.Equal(t, RoleTeacher, data.Role)
}

package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequest_Validate(t *testing.T) {
	valid := RegisterRequest{
		Email:     "jane@example.com",
		Password:  "passw0rd1",
		FirstName: "Jane",
		LastName:  "Doe",
	}

	tests := []struct {
		name    string
		mutate  func(r *RegisterRequest)
		wantErr bool
	}{
		{
			name:   "valid request",
			mutate: func(r *RegisterRequest) {},
		},
		{
			name:    "missing email",
			mutate:  func(r *RegisterRequest) { r.Email = "" },
			wantErr: true,
		},
		{
			name:    "malformed email",
			mutate:  func(r *RegisterRequest) { r.Email = "not-an-email" },
			wantErr: true,
		},
		{
			name:    "password too short",
			mutate:  func(r *RegisterRequest) { r.Password = "abc1" },
			wantErr: true,
		},
		{
			name:    "password without digit",
			mutate:  func(r *RegisterRequest) { r.Password = "passwords" },
			wantErr: true,
		},
		{
			name:    "password without letter",
			mutate:  func(r *RegisterRequest) { r.Password = "123456789" },
			wantErr: true,
		},
		{
			name:    "missing first name",
			mutate:  func(r *RegisterRequest) { r.FirstName = "" },
			wantErr: true,
		},
		{
			name:    "missing last name",
			mutate:  func(r *RegisterRequest) { r.LastName = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Email: "jane@example.com", Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "", Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "jane@example.com", Password: ""}).Validate())
}

func TestUpdateProfileRequest_Validate(t *testing.T) {
	name := "Jane"
	empty := ""

	assert.NoError(t, (&UpdateProfileRequest{}).Validate())
	assert.NoError(t, (&UpdateProfileRequest{FirstName: &name}).Validate())
	assert.Error(t, (&UpdateProfileRequest{FirstName: &empty}).Validate())
}

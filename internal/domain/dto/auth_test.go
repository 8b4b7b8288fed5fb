package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   LoginRequest
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid request",
			request: LoginRequest{Email: "owner@kopikita.id", Password: "password123"},
			wantErr: false,
		},
		{
			name:      "missing email",
			request:   LoginRequest{Password: "password123"},
			wantErr:   true,
			wantField: "email",
		},
		{
			name:      "short password",
			request:   LoginRequest{Email: "owner@kopikita.id", Password: "12345"},
			wantErr:   true,
			wantField: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   RegisterRequest
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid barista",
			request: RegisterRequest{Email: "barista@kopikita.id", Password: "password123", Role: "barista"},
			wantErr: false,
		},
		{
			name:    "valid owner",
			request: RegisterRequest{Email: "owner@kopikita.id", Password: "password123", Role: "owner"},
			wantErr: false,
		},
		{
			name:    "role defaults when empty",
			request: RegisterRequest{Email: "barista@kopikita.id", Password: "password123"},
			wantErr: false,
		},
		{
			name:      "missing email",
			request:   RegisterRequest{Password: "password123"},
			wantErr:   true,
			wantField: "email",
		},
		{
			name:      "short password",
			request:   RegisterRequest{Email: "a@b.id", Password: "123"},
			wantErr:   true,
			wantField: "password",
		},
		{
			name:      "unknown role",
			request:   RegisterRequest{Email: "a@b.id", Password: "password123", Role: "admin"},
			wantErr:   true,
			wantField: "role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

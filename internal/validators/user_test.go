package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestUserValidator_RegisterRequest(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr error
	}{
		{
			name: "valid without fullname",
			req:  models.RegisterRequest{Email: "a@x.io", Username: "alice", Password: "secret1"},
		},
		{
			name:    "email checked first",
			req:     models.RegisterRequest{},
			wantErr: ErrEmailRequired,
		},
		{
			name:    "username missing",
			req:     models.RegisterRequest{Email: "a@x.io", Password: "secret1"},
			wantErr: ErrUsernameRequired,
		},
		{
			name:    "password missing",
			req:     models.RegisterRequest{Email: "a@x.io", Username: "alice"},
			wantErr: ErrPasswordRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			// pointer form behaves the same
			assert.ErrorIs(t, v.Validate(ctx, &tt.req), tt.wantErr)
		})
	}
}

func TestUserValidator_LoginRequest(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.LoginRequest{Username: "alice", Password: "p"}))
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Password: "p"}), ErrUsernameRequired)
	assert.ErrorIs(t, v.Validate(ctx, &models.LoginRequest{Username: "alice"}), ErrPasswordRequired)
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Username: "a", Password: "p"}, FieldEmail), ErrUnknownField)
}

func TestUserValidator_ScopedFields(t *testing.T) {
	v := NewUserValidator()
	req := models.RegisterRequest{Username: "alice"}

	assert.NoError(t, v.Validate(context.Background(), req, FieldUsername))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldPassword, FieldEmail), ErrPasswordRequired)
	assert.ErrorIs(t, v.Validate(context.Background(), req, "nickname"), ErrUnknownField)
}

func TestUserValidator_UnsupportedType(t *testing.T) {
	err := NewUserValidator().Validate(context.Background(), models.AddNoteRequest{})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

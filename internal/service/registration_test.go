package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"notes_system/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestRegistration(users CredentialStore) *RegistrationService {
	return NewRegistrationService(users).WithHashCost(bcrypt.MinCost)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	svc := newTestRegistration(users)

	require.NoError(t, svc.Register(ctx, RegisterRequest{Username: "alice", Password: "pw123"}))

	user, err := users.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("pw123")))
}

func TestRegisterDuplicateIsConflict(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	svc := newTestRegistration(users)

	require.NoError(t, svc.Register(ctx, RegisterRequest{Username: "alice", Password: "pw123"}))
	err := svc.Register(ctx, RegisterRequest{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, users.byID, 1)
}

func TestRegisterRequiresFields(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	svc := newTestRegistration(users)

	cases := map[string]struct {
		req   RegisterRequest
		field string
	}{
		"missing username": {RegisterRequest{Password: "pw"}, "username"},
		"missing password": {RegisterRequest{Username: "alice"}, "password"},
		"blank username":   {RegisterRequest{Username: "   ", Password: "pw"}, "username"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := svc.Register(ctx, tc.req)
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, tc.field)
		})
	}
	assert.Empty(t, users.byID)
}

func TestRegisterRejectsPasswordsBcryptCannotHash(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	svc := newTestRegistration(users)

	cases := map[string]string{
		"too many characters": strings.Repeat("p", 80),
		"too many bytes":      strings.Repeat("€", 40), // 40 runes, 120 bytes
	}
	for name, password := range cases {
		t.Run(name, func(t *testing.T) {
			err := svc.Register(ctx, RegisterRequest{Username: "alice", Password: password})
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Contains(t, verr.Fields, "password")
		})
	}
	assert.Empty(t, users.byID)

	require.NoError(t, svc.Register(ctx, RegisterRequest{Username: "alice", Password: strings.Repeat("p", 72)}))
}

package services

import (
	"context"
	"testing"

	"carrental/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginCustomer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customer := f.customer(t, "ann@example.com", true)

	res, err := f.auth.LoginCustomer(ctx, &LoginInput{Email: "ann@example.com", Password: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	principal, err := f.auth.VerifyToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, principal.ID)
	assert.True(t, principal.IsCustomer())
	assert.True(t, principal.IsGold)
	assert.False(t, principal.IsEmployee())
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.customer(t, "ann@example.com", false)

	tests := []struct {
		name  string
		input LoginInput
	}{
		{name: "wrong password", input: LoginInput{Email: "ann@example.com", Password: "wrong-pass"}},
		{name: "unknown email", input: LoginInput{Email: "bob@example.com", Password: "secret123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.auth.LoginCustomer(ctx, &tt.input)
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
			assert.Equal(t, "Invalid email or password.", err.Error())
		})
	}

	// customers cannot use the employee login
	_, err := f.auth.LoginEmployee(ctx, &LoginInput{Email: "ann@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginEmployee(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.employees.Create(ctx, &CreateEmployeeInput{
		Name: "Boss", Email: "boss@example.com", Password: "secret123", IsAdmin: boolPtr(true),
	})
	require.NoError(t, err)

	res, err := f.auth.LoginEmployee(ctx, &LoginInput{Email: "boss@example.com", Password: "secret123"})
	require.NoError(t, err)

	principal, err := f.auth.VerifyToken(res.Token)
	require.NoError(t, err)
	assert.True(t, principal.IsEmployee())
	assert.True(t, principal.IsManager())
}

func TestVerifyToken(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.VerifyToken("")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = f.auth.VerifyToken("12234567890")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	other := NewAuthService(nil, nil, f.auth.jwtCfg)
	other.jwtCfg.Secret = "another-secret"
	token, err := other.IssueToken(&domain.Principal{ID: "x", Type: domain.PrincipalEmployee})
	require.NoError(t, err)

	_, err = f.auth.VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

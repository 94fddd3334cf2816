package services

import (
	"context"
	"testing"

	"carrental/internal/core/domain"
	"carrental/internal/pkg/pagination"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCustomer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	customer := f.customer(t, "ann@example.com", true)
	assert.NotEmpty(t, customer.ID)
	assert.True(t, customer.IsGold)
	assert.NotEqual(t, "secret123", customer.Password)

	_, err := f.customers.Register(ctx, &RegisterCustomerInput{
		Name: "Again", Email: "ann@example.com", Password: "secret123", Phone: "5551234567", IsGold: boolPtr(false),
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.Equal(t, "User already registered.", err.Error())

	got, err := f.customers.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.Email, got.Email)

	_, err = f.customers.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListCustomersByNameDescending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.customer(t, "a@example.com", false)
	f.customer(t, "c@example.com", false)
	f.customer(t, "b@example.com", false)

	page, err := f.customers.List(ctx, pagination.New(1, 2))
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.Meta.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Customer c@example.com", page.Items[0].Name)
	assert.Equal(t, "Customer b@example.com", page.Items[1].Name)
}

func TestCreateEmployee(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	employee, err := f.employees.Create(ctx, &CreateEmployeeInput{
		Name: "Clerk", Email: "clerk@example.com", Password: "secret123", IsAdmin: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, employee.IsAdmin)

	_, err = f.employees.Create(ctx, &CreateEmployeeInput{
		Name: "Clerk", Email: "clerk@example.com", Password: "secret123", IsAdmin: boolPtr(true),
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	page, err := f.employees.List(ctx, pagination.New(1, 10))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "clerk@example.com", page.Items[0].Email)
}

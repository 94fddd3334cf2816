package repositories

import (
	"context"
	"testing"

	"carrental/internal/adapters/persistence/models"
	"carrental/internal/adapters/persistence/testdb"
	"carrental/internal/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBrandRepositoryCRUD(t *testing.T) {
	repo := NewBrandRepository(testdb.New(t))
	ctx := context.Background()

	for _, name := range []string{"Volvo", "Audi", "Mazda"} {
		require.NoError(t, repo.Create(ctx, &models.Brand{Name: name, Description: name + " cars"}))
	}

	brands, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, brands, 3)
	assert.Equal(t, "Audi", brands[0].Name)
	assert.Equal(t, "Volvo", brands[2].Name)

	audi := brands[0]
	audi.Description = "German cars"
	require.NoError(t, repo.Update(ctx, audi))

	got, err := repo.GetByID(ctx, audi.ID)
	require.NoError(t, err)
	assert.Equal(t, "German cars", got.Description)

	require.NoError(t, repo.Delete(ctx, audi.ID))
	_, err = repo.GetByID(ctx, audi.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCarRepositoryKeepsSnapshots(t *testing.T) {
	repo := NewCarRepository(testdb.New(t))
	ctx := context.Background()

	car := &models.Car{
		Name:        "Civic",
		Description: "Hatchback",
		Brand:       models.CarBrand{ID: "b-1", Name: "Honda"},
		Style:       models.CarStyle{ID: "s-1", Name: "Hatch"},
	}
	require.NoError(t, repo.Create(ctx, car))

	got, err := repo.GetByID(ctx, car.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CarBrand{ID: "b-1", Name: "Honda"}, got.Brand)
	assert.Equal(t, models.CarStyle{ID: "s-1", Name: "Hatch"}, got.Style)
	assert.Zero(t, got.NumberInStock)
}

func TestAccountRepositories(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	customers := NewCustomerRepository(db)
	employees := NewEmployeeRepository(db)

	require.NoError(t, customers.Create(ctx, &models.Customer{Name: "Ann", Email: "ann@example.com", Password: "x", Phone: "5551234"}))
	require.NoError(t, customers.Create(ctx, &models.Customer{Name: "Zed", Email: "zed@example.com", Password: "x", Phone: "5551234"}))
	assert.Error(t, customers.Create(ctx, &models.Customer{Name: "Dup", Email: "ann@example.com", Password: "x", Phone: "5551234"}))

	exists, err := customers.ExistsByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	list, total, err := customers.List(ctx, pagination.New(1, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, "Zed", list[0].Name)

	hasManager, err := employees.ExistsManager(ctx)
	require.NoError(t, err)
	assert.False(t, hasManager)

	require.NoError(t, employees.Create(ctx, &models.Employee{Name: "Boss", Email: "boss@example.com", Password: "x", IsAdmin: true}))
	hasManager, err = employees.ExistsManager(ctx)
	require.NoError(t, err)
	assert.True(t, hasManager)

	boss, err := employees.GetByEmail(ctx, "boss@example.com")
	require.NoError(t, err)
	assert.True(t, boss.IsAdmin)
}

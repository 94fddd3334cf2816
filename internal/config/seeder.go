package config

import (
	"context"

	"carrental/internal/adapters/persistence/models"
	"carrental/internal/adapters/persistence/repositories"
	"carrental/internal/pkg/password"

	"go.uber.org/zap"
)

// Seeder handles database seeding
type Seeder struct {
	employees repositories.EmployeeRepository
	seed      SeedConfig
	log       *zap.Logger
}

// NewSeeder creates a new seeder instance
func NewSeeder(employees repositories.EmployeeRepository, seed SeedConfig, log *zap.Logger) *Seeder {
	return &Seeder{employees: employees, seed: seed, log: log}
}

// Run executes all seeders
func (s *Seeder) Run(ctx context.Context) error {
	s.log.Info("running database seeders")

	if err := s.seedManager(ctx); err != nil {
		s.log.Warn("manager seeder skipped", zap.Error(err))
	}

	return nil
}

// seedManager creates the first manager from SEED_MANAGER_* when none exists.
// Employee creation is manager-only, so without it nobody could log in as staff.
func (s *Seeder) seedManager(ctx context.Context) error {
	if s.seed.Email == "" || s.seed.Password == "" {
		return nil
	}

	exists, err := s.employees.ExistsManager(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	taken, err := s.employees.ExistsByEmail(ctx, s.seed.Email)
	if err != nil {
		return err
	}
	if taken {
		s.log.Warn("seed manager email already used by a non-manager", zap.String("email", s.seed.Email))
		return nil
	}

	hashed, err := password.Hash(s.seed.Password)
	if err != nil {
		return err
	}

	manager := &models.Employee{
		Name:     s.seed.Name,
		Email:    s.seed.Email,
		Password: hashed,
		IsAdmin:  true,
	}
	if err := s.employees.Create(ctx, manager); err != nil {
		return err
	}

	s.log.Info("manager created", zap.String("email", manager.Email))
	return nil
}

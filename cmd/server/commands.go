package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carrental/internal/adapters/http/routes"
	"carrental/internal/adapters/persistence/models"
	"carrental/internal/adapters/persistence/repositories"
	"carrental/internal/config"
	"carrental/internal/core/services"
	"carrental/internal/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the schema, seed the first manager and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()               //nolint:errcheck
			defer config.CloseDatabase(db) //nolint:errcheck

			if err := models.AutoMigrate(db); err != nil {
				return fmt.Errorf("failed to auto migrate: %w", err)
			}
			log.Info("database migration completed")

			seeder := config.NewSeeder(repositories.NewEmployeeRepository(db), cfg.Seed, log)
			if err := seeder.Run(cmd.Context()); err != nil {
				log.Warn("seeding failed", zap.Error(err))
			}

			app := routes.NewApp(db, cfg, log)

			go gracefulShutdown(app, log)

			log.Info("server starting", zap.String("port", cfg.Port), zap.String("mode", cfg.AppMode))
			if err := app.Listen(":" + cfg.Port); err != nil {
				return fmt.Errorf("failed to start server: %w", err)
			}
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()               //nolint:errcheck
			defer config.CloseDatabase(db) //nolint:errcheck

			if err := models.AutoMigrate(db); err != nil {
				return fmt.Errorf("failed to auto migrate: %w", err)
			}
			log.Info("database migration completed")
			return nil
		},
	}
}

func createManagerCmd() *cobra.Command {
	var input services.CreateEmployeeInput

	cmd := &cobra.Command{
		Use:   "create-manager",
		Short: "Create an employee with manager rights",
		RunE: func(cmd *cobra.Command, args []string) error {
			admin := true
			input.IsAdmin = &admin

			if err := validator.New().Struct(&input); err != nil {
				return err
			}

			_, log, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()               //nolint:errcheck
			defer config.CloseDatabase(db) //nolint:errcheck

			if err := models.AutoMigrate(db); err != nil {
				return fmt.Errorf("failed to auto migrate: %w", err)
			}

			employees := services.NewEmployeeService(repositories.NewEmployeeRepository(db), log)
			manager, err := employees.Create(cmd.Context(), &input)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "manager %s created with id %s\n", manager.Email, manager.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "manager name")
	cmd.Flags().StringVar(&input.Email, "email", "", "manager email")
	cmd.Flags().StringVar(&input.Password, "password", "", "manager password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// bootstrap loads configuration, builds the logger and connects to the database
func bootstrap() (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	db, err := config.ConnectDatabase(cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, nil, err
	}

	return cfg, log, db, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProd() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// gracefulShutdown stops the server on SIGINT or SIGTERM
func gracefulShutdown(app *fiber.App, log *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error("error during shutdown", zap.Error(err))
		return
	}
	log.Info("server stopped gracefully")
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "carrental/docs" // Swagger docs
)

// @title Car Rental API
// @version 1.0
// @description REST API for a car-rental business: catalog, customers, employees and the rental ledger.

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /api/v1

// @securityDefinitions.apikey TokenAuth
// @in header
// @name x-auth-token
// @description Token returned by POST /auth, POST /auth/employee or registration.

func main() {
	rootCmd := &cobra.Command{
		Use:   "carrental",
		Short: "Car Rental API server",
		// running the binary without a subcommand starts the server
		RunE: serveCmd().RunE,
	}

	rootCmd.AddCommand(
		serveCmd(),
		migrateCmd(),
		createManagerCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

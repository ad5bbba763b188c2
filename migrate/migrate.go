// Package migrate applies the embedded schema migrations at service
// startup. Each service owns its own database and migration set.
package migrate

import (
	"embed"
	"fmt"

	gomigrate "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed auth/*.sql orders/*.sql
var migrationsFS embed.FS

// UpAuth applies the auth service schema (users, profiles).
func UpAuth(databaseURL string) error {
	return up(databaseURL, "auth")
}

// UpOrders applies the orders service schema.
func UpOrders(databaseURL string) error {
	return up(databaseURL, "orders")
}

func up(databaseURL, dir string) error {
	source, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := gomigrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != gomigrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

package mongo

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

// MigrationSource is an embedded directory of golang-migrate mongodb JSON files.
type MigrationSource struct {
	FS  fs.FS
	Dir string
}

// Migrator applies schema migrations (collections and indexes).
type Migrator interface {
	Up() error
	Down() error
	Version() (version uint, dirty bool, err error)
}

type migrator struct {
	source MigrationSource
	admin  Admin
	log    *zap.Logger
}

func newMigrator(source MigrationSource, admin Admin, log *zap.Logger) (*migrator, error) {
	if source.FS == nil {
		return nil, fmt.Errorf("migration filesystem is required")
	}
	if source.Dir == "" {
		return nil, fmt.Errorf("migration directory is required")
	}
	return &migrator{source: source, admin: admin, log: log}, nil
}

func (m *migrator) open() (*migrate.Migrate, error) {
	src, err := iofs.New(m.source.FS, m.source.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open migration source: %w", err)
	}

	uri, err := m.admin.MigrationURI()
	if err != nil {
		return nil, err
	}

	mi, err := migrate.NewWithSourceInstance("iofs", src, uri)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return mi, nil
}

func (m *migrator) closeQuietly(mi *migrate.Migrate) {
	sourceErr, dbErr := mi.Close()
	if sourceErr != nil {
		m.log.Warn("failed to close migration source", zap.Error(sourceErr))
	}
	if dbErr != nil {
		m.log.Warn("failed to close migration database", zap.Error(dbErr))
	}
}

func (m *migrator) Up() error {
	mi, err := m.open()
	if err != nil {
		return err
	}
	defer m.closeQuietly(mi)

	if err := mi.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.log.Info("database schema is up to date")
			return nil
		}
		return fmt.Errorf("migration up failed: %w", err)
	}

	version, dirty, err := mi.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	m.log.Info("migrations applied", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}

func (m *migrator) Down() error {
	mi, err := m.open()
	if err != nil {
		return err
	}
	defer m.closeQuietly(mi)

	m.log.Warn("rolling back all migrations")
	if err := mi.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration down failed: %w", err)
	}
	return nil
}

func (m *migrator) Version() (uint, bool, error) {
	mi, err := m.open()
	if err != nil {
		return 0, false, err
	}
	defer m.closeQuietly(mi)

	version, dirty, err := mi.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, fmt.Errorf("failed to read migration version: %w", err)
	}
	return version, dirty, nil
}

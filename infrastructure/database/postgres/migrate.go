package postgres

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationStatus descreve a versão aplicada no banco
type MigrationStatus struct {
	Version uint
	Dirty   bool
	Applied bool
}

// MigrateUp aplica todas as migrações pendentes
func MigrateUp(dsn string) error {
	m, err := newMigrate(dsn)
	if err != nil {
		return err
	}
	defer closeMigrate(m)

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logrus.Info("Nenhuma migração pendente")
			return nil
		}
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	version, _, _ := m.Version()
	logrus.Infof("Migrações aplicadas até a versão %d", version)
	return nil
}

// MigrateDown desfaz a quantidade de migrações informada
func MigrateDown(dsn string, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("quantidade de passos inválida: %d", steps)
	}

	m, err := newMigrate(dsn)
	if err != nil {
		return err
	}
	defer closeMigrate(m)

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("erro ao desfazer migrações: %w", err)
	}

	return nil
}

// GetMigrationStatus consulta a versão atual das migrações
func GetMigrationStatus(dsn string) (*MigrationStatus, error) {
	m, err := newMigrate(dsn)
	if err != nil {
		return nil, err
	}
	defer closeMigrate(m)

	version, dirty, err := m.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return &MigrationStatus{}, nil
		}
		return nil, fmt.Errorf("erro ao consultar versão das migrações: %w", err)
	}

	return &MigrationStatus{Version: version, Dirty: dirty, Applied: true}, nil
}

// newMigrate abre uma conexão própria: fechar o migrate fecha também o *sql.DB
func newMigrate(dsn string) (*migrate.Migrate, error) {
	if dsn == "" {
		return nil, ErrMissingDSN
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir conexão para migrações: %w", err)
	}

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("erro ao criar driver de migração: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("erro ao ler migrações embutidas: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("erro ao criar instância de migração: %w", err)
	}

	return m, nil
}

func closeMigrate(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil || dbErr != nil {
		logrus.WithFields(logrus.Fields{
			"source_error":   srcErr,
			"database_error": dbErr,
		}).Warn("Erro ao fechar instância de migração")
	}
}

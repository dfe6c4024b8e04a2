// Helpers for running tests against a real MariaDB in a container.
// Expects environment variables to be loaded from .env files when run
// outside CI.

package helpers

import (
	"context"
	"fmt"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/justicelink/justicelink/data"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	mariadbImage    = "mariadb:11"
	mariadbPort     = "3306/tcp"
	mariadbDatabase = "justicelink"
	mariadbUser     = "justicelink"
	mariadbPassword = "justicelink"
)

// TestDatabase is a running MariaDB container plus the coordinates the
// application config needs to reach it.
type TestDatabase struct {
	Container testcontainers.Container
	Host      string
	Port      string
	Database  string
	User      string
	Password  string
}

func logMessage(t *testing.T, format string, args ...interface{}) {
	if t != nil {
		t.Logf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// StartMariaDB launches a MariaDB container seeded with the embedded DDL
// and privilege scripts and waits until SQL connections succeed.
func StartMariaDB(ctx context.Context) (*TestDatabase, error) {
	req := testcontainers.ContainerRequest{
		Image:        mariadbImage,
		ExposedPorts: []string{mariadbPort},
		Env: map[string]string{
			"MARIADB_ROOT_PASSWORD": mariadbPassword,
			"MARIADB_DATABASE":      mariadbDatabase,
			"MARIADB_USER":          mariadbUser,
			"MARIADB_PASSWORD":      mariadbPassword,
		},
		Files: []testcontainers.ContainerFile{
			{
				Reader:            strings.NewReader(data.InitdbMariaDBTables),
				ContainerFilePath: "/docker-entrypoint-initdb.d/002-ddl-tables.sql",
				FileMode:          0o644,
			},
			{
				Reader:            strings.NewReader(data.InitdbMariaDBPrivileges),
				ContainerFilePath: "/docker-entrypoint-initdb.d/003-ddl-privileges.sql",
				FileMode:          0o644,
			},
		},
		WaitingFor: wait.ForSQL(nat.Port(mariadbPort), "mysql", func(host string, port nat.Port) string {
			return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", mariadbUser, mariadbPassword, host, port.Port(), mariadbDatabase)
		}).WithStartupTimeout(2 * time.Minute),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start mariadb container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to resolve container host: %w", err)
	}
	mapped, err := container.MappedPort(ctx, nat.Port(mariadbPort))
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to resolve container port: %w", err)
	}

	return &TestDatabase{
		Container: container,
		Host:      host,
		Port:      mapped.Port(),
		Database:  mariadbDatabase,
		User:      mariadbUser,
		Password:  mariadbPassword,
	}, nil
}

// Terminate stops the container, logging rather than failing on error.
func (td *TestDatabase) Terminate(t *testing.T) {
	if td == nil || td.Container == nil {
		return
	}
	if err := td.Container.Terminate(context.Background()); err != nil {
		logMessage(t, "Failed to terminate MariaDB: %v", err)
	}
}

// DSN returns a go-sql-driver DSN for the running container.
func (td *TestDatabase) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		td.User, td.Password, td.Host, td.Port, td.Database)
}

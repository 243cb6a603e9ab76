// containers.go
//
// A shift schedule data service backed by a relational store
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of shift-schedule.
// shift-schedule is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// shift-schedule is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with shift-schedule.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/localnerve/shift-schedule/internal/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	containerDatabase = "schedule"
	containerUser     = "schedule"
	containerPassword = "schedulepass"
)

// Database is a running database container and the config that reaches it
type Database struct {
	Container testcontainers.Container
	Config    *config.Config
}

// Terminate stops and removes the container
func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

// Env renders the settings a server needs to use this database
func (d *Database) Env() map[string]string {
	return map[string]string{
		"DB_TYPE":     d.Config.DBType,
		"DB_HOST":     d.Config.DBHost,
		"DB_PORT":     d.Config.DBPort,
		"DB_DATABASE": d.Config.DBDatabase,
		"DB_USER":     d.Config.DBUser,
		"DB_PASSWORD": d.Config.DBPassword,
	}
}

// StartDatabase starts a mysql/mariadb or postgres container from image
func StartDatabase(ctx context.Context, dbType, image string) (*Database, error) {
	var (
		port       nat.Port
		env        map[string]string
		waitingFor wait.Strategy
		err        error
	)

	switch dbType {
	case "mysql", "mariadb":
		port, err = nat.NewPort("tcp", "3306")
		env = map[string]string{
			"MYSQL_ROOT_PASSWORD": "rootpass",
			"MYSQL_DATABASE":      containerDatabase,
			"MYSQL_USER":          containerUser,
			"MYSQL_PASSWORD":      containerPassword,
		}
		waitingFor = wait.ForAll(
			wait.ForLog("ready for connections"),
			wait.ForListeningPort(port),
		).WithDeadline(90 * time.Second)

	case "postgres", "postgresql":
		port, err = nat.NewPort("tcp", "5432")
		env = map[string]string{
			"POSTGRES_DB":       containerDatabase,
			"POSTGRES_USER":     containerUser,
			"POSTGRES_PASSWORD": containerPassword,
		}
		waitingFor = wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort(port),
		).WithDeadline(90 * time.Second)

	default:
		return nil, fmt.Errorf("no container recipe for database type %s", dbType)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create port: %w", err)
	}

	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{string(port)},
			Env:          env,
			WaitingFor:   waitingFor,
			HostConfigModifier: func(hc *container.HostConfig) {
				hc.AutoRemove = true
			},
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start %s container: %w", dbType, err)
	}

	host, err := dbContainer.Host(ctx)
	if err != nil {
		_ = dbContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	mapped, err := dbContainer.MappedPort(ctx, port)
	if err != nil {
		_ = dbContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	return &Database{
		Container: dbContainer,
		Config: &config.Config{
			DBType:             dbType,
			DBHost:             host,
			DBPort:             mapped.Port(),
			DBDatabase:         containerDatabase,
			DBUser:             containerUser,
			DBPassword:         containerPassword,
			DBConnectionLimit:  5,
			DBLogLevel:         "warn",
			LegacyFile:         "schedule.json",
			LegacyBackupSuffix: ".bak",
		},
	}, nil
}

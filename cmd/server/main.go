// main.go
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

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/localnerve/shift-schedule/internal/config"
	"github.com/localnerve/shift-schedule/internal/database"
	"github.com/localnerve/shift-schedule/internal/logging"
	"github.com/localnerve/shift-schedule/internal/server"
	"github.com/localnerve/shift-schedule/internal/services"
)

// @title Shift Schedule API
// @version 1.0.0
// @description Shift schedule data service backed by a relational store

// @contact.name API Support
// @contact.url https://github.com/localnerve/shift-schedule
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:5000
// @BasePath /api
// @schemes http https

func main() {
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to an optional .env file")
	flag.Parse()

	if err := config.LoadEnvFile(envFilename); err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logOutput := logging.Setup(cfg)
	defer logOutput.Close()

	ctx := context.Background()

	// Connect to database
	db, err := database.Connect(cfg, logging.GormLogger(logOutput, cfg.DBLogLevel))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	store := services.NewStore(db, services.NewGuard())

	// Create tables
	if err := store.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize schedule store: %v", err)
	}

	// A failed migration is logged and retried on the next start; serving
	// continues from whatever the store already holds.
	services.MigrateLegacy(ctx, services.LegacySource{
		Path:         cfg.LegacyPath(),
		BackupSuffix: cfg.LegacyBackupSuffix,
	}, store)

	app := server.New(cfg, store, server.Options{
		LogOutput: logOutput,
		Metrics:   true,
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

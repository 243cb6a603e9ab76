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
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/localnerve/shift-schedule/internal/config"
	"github.com/localnerve/shift-schedule/internal/testutil"
)

func main() {
	var showHelp bool
	var envFilename string
	var dbType string
	var image string
	flag.BoolVar(&showHelp, "h", false, "show help")
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.StringVar(&dbType, "db", "", "database type: mariadb, mysql or postgres (default $DB_TYPE)")
	flag.StringVar(&image, "image", "", "container image (default $DB_IMAGE)")
	flag.Parse()

	usage := `
Run a database container for the shift schedule server and print the
environment that points the server at it.

Usage:

testcontainers [-h] [-f ENV_FILE_PATH] [-db TYPE] [-image IMAGE]

example
  testcontainers -db mariadb -image mariadb:11
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if err := config.LoadEnvFile(envFilename); err != nil {
		log.Fatalf("Failed to load environment variables: %v\n", err)
	}
	if dbType == "" {
		dbType = os.Getenv("DB_TYPE")
	}
	if image == "" {
		image = os.Getenv("DB_IMAGE")
	}
	if dbType == "" || image == "" {
		log.Fatalf("Both a database type and an image are required\n%s", usage)
	}

	ctx := context.Background()
	db, err := testutil.StartDatabase(ctx, dbType, image)
	if err != nil {
		log.Fatalf("Failed to create test container: %v\n", err)
	}

	env := db.Env()
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s=%s\n", k, env[k])
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	sig := <-sigs
	log.Printf("\nReceived signal: %v, terminating test container...\n", sig)
	if err := db.Terminate(ctx); err != nil {
		log.Printf("Failed to terminate container: %v\n", err)
	}
}

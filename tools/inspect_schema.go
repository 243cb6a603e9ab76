package main

import (
	"fmt"
	"log"

	"github.com/localnerve/shift-schedule/internal/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}

	// Auto-migrate to see what GORM creates
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	// Tables and indexes, in creation order
	var objects []struct {
		Name string
		SQL  string
	}
	db.Raw("SELECT name, sql FROM sqlite_master WHERE sql IS NOT NULL ORDER BY rowid").Scan(&objects)

	for _, obj := range objects {
		fmt.Printf("\n=== %s ===\n%s\n", obj.Name, obj.SQL)
	}
}

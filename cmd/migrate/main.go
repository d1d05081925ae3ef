// Command migrate applies the engine schema to the configured store without
// starting the server. Useful for provisioning an empty database.
package main

import (
	"log"

	"github.com/alishbasheba1-droid/SMS/app/config"
	"github.com/alishbasheba1-droid/SMS/app/engine"
)

func main() {
	cfg := config.Load()

	db, err := cfg.OpenDB()
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	if err := engine.CreateSchema(db); err != nil {
		log.Fatal("Schema apply failed:", err)
	}
	log.Println("Schema applied")
}

package main

import (
	"log"
	"os"

	"github.com/Digicommunique/nexusedupro-sub000/app/config"
	"github.com/Digicommunique/nexusedupro-sub000/app/database"
)

// Runs the schema migrations without starting the server. Any extra arguments
// are treated as SQL files to execute afterwards, for one-off patches.
func main() {
	log.Println("Running migrations...")

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to get database instance")
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	for _, filePath := range os.Args[1:] {
		content, err := os.ReadFile(filePath)
		if err != nil {
			log.Printf("Skipping %s: %v", filePath, err)
			continue
		}

		log.Printf("Executing %s...", filePath)
		if _, err := db.Exec(string(content)); err != nil {
			log.Printf("Error executing %s: %v", filePath, err)
		} else {
			log.Printf("Successfully executed %s", filePath)
		}
	}

	log.Println("Migrations completed successfully!")
}

// Command main runs the database seeder for Skill Swap.
package main

import (
	"flag"
	"log"

	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 50, "Number of users to create")
	numSwaps := flag.Int("swaps", 100, "Number of swap requests to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	catalogOnly := flag.Bool("catalog-only", false, "Seed only the skill catalog")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if _, err = database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *catalogOnly {
		skills, err := seed.SeedSkillCatalog(database.DB)
		if err != nil {
			log.Fatalf("Catalog seeding failed: %v", err)
		}
		log.Printf("Skill catalog seeded (%d skills)", len(skills))
		return
	}

	if err := seed.Seed(database.DB, seed.Options{
		NumUsers:    *numUsers,
		NumSwaps:    *numSwaps,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}

package main

import (
	"flag"
	"log"

	"github.com/likelion-hsu/recipememo/backend/config"
	"github.com/likelion-hsu/recipememo/backend/internal/database"
)

func main() {
	// Parse command line flags
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	migrationsDir := flag.String("dir", "migrations", "Directory containing *.sql migrations")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database handle: %v", err)
	}
	defer sqlDB.Close()

	if *rollback {
		if db.Dialector.Name() != "postgres" {
			log.Fatalf("Rollback is only supported for postgres")
		}
		name, err := database.RollbackLast(db, *migrationsDir)
		if err != nil {
			log.Fatalf("Failed to rollback: %v", err)
		}
		log.Printf("Rolled back migration %s", name)
		return
	}

	if err := database.RunMigrations(db, *migrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations complete")
}

package main // setadmin promotes a user to the admin role by email

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/iliyamo/turf-booking/internal/config"
	"github.com/iliyamo/turf-booking/internal/database"
	"github.com/iliyamo/turf-booking/internal/model"
	"github.com/iliyamo/turf-booking/internal/repository"
)

// Usage: setadmin -email someone@example.com
// The user must already exist (registered through the API).
func main() {
	email := flag.String("email", "", "email of the user to promote")
	flag.Parse()
	if *email == "" {
		log.Fatal("usage: setadmin -email <address>")
	}

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	users := repository.NewUserRepo(db)
	if err := users.SetRole(ctx, *email, model.RoleAdmin); err != nil {
		log.Fatalf("promote failed: %v", err)
	}
	log.Printf("%s is now an admin", *email)
}

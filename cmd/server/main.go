package main

import (
	"log"

	"github.com/duskforge/ladyluck-server/config"
	"github.com/duskforge/ladyluck-server/server"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env so DATABASE_URL / LEDGER_URL are set: cwd .env or project root.
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")
	cfg := config.Load()
	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}

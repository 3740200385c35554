package main

import (
	"log"

	"github.com/joho/godotenv"

	httpapi "velvet-ludo/internal/api/http"
	"velvet-ludo/internal/api/ws"
	"velvet-ludo/internal/config"
	"velvet-ludo/internal/prompts"
	"velvet-ludo/internal/room"
	"velvet-ludo/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using environment as-is")
	}
	cfg := config.Load()

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg, prompts.NewSelector(cfg.DiceSeed))
	hub := ws.NewHub(rm)
	rm.SetBroadcaster(hub)

	r := httpapi.NewRouter(rm, hub)

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}

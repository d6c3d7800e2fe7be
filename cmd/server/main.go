package main

import (
	"log"

	httpapi "wall-duel/internal/api/http"
	"wall-duel/internal/api/ws"
	"wall-duel/internal/config"
	"wall-duel/internal/room"
	"wall-duel/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	mem := store.NewMemoryStore()
	hub := ws.NewHub()
	rm := room.NewManager(mem, cfg, hub)
	hub.SetRooms(rm)
	r := httpapi.NewRouter(rm, hub)

	log.Printf("listening on %s (grid %d, %d dark cells)", cfg.HTTPAddr, cfg.Game.GridSize, cfg.Game.DarkCells)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"society-manager/internal/config"
	"society-manager/internal/router"
	"society-manager/internal/service"
	"society-manager/internal/store"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// ensure basic directories exist
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatalf("create data dir: %v", err)
	}
	if err := ensureDir(filepath.Dir(cfg.Log.File)); err != nil {
		log.Fatalf("create log dir: %v", err)
	}
	if err := ensureDir(cfg.Backup.Dir); err != nil {
		log.Fatalf("create backup dir: %v", err)
	}

	// open the store (creates missing collections, applies migrations)
	st := store.New(cfg.Database)
	if err := st.Open(); err != nil {
		log.Fatalf("open store: %v", err)
	}

	// seed the default admin credential on first run
	if err := service.NewCredential(st).EnsureDefaultAdmin(); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	// setup router
	r := router.SetupRouter(cfg, st)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

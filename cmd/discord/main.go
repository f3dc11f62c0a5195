package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"server-warden/datastore"
	"server-warden/internal/ai"
	"server-warden/internal/config"
	"server-warden/internal/discord"
	"server-warden/internal/storage"
	"server-warden/internal/web"
	"server-warden/internal/welcomelog"

	// Command groups self-register with the command registry.
	_ "server-warden/internal/command/aichat"
	_ "server-warden/internal/command/channels"
	_ "server-warden/internal/command/cleanup"
	_ "server-warden/internal/command/fun"
	_ "server-warden/internal/command/info"
	_ "server-warden/internal/command/moderation"
	_ "server-warden/internal/command/roles"
	_ "server-warden/internal/command/welcome"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("[ERR] Failed to load configuration: %v", err)
	}

	ds, err := datastore.New(cfg.StoragePath)
	if err != nil {
		log.Fatalf("[ERR] Failed to open datastore: %v", err)
	}
	defer func() {
		if err := ds.Close(); err != nil {
			log.Printf("[ERR] Failed to close datastore: %v", err)
		}
	}()
	store := storage.New(ds)

	welcomes, err := welcomelog.Open(cfg.WelcomeLogPath)
	if err != nil {
		log.Fatalf("[ERR] Failed to open welcome log: %v", err)
	}
	defer welcomes.Close()

	provider, err := ai.New(cfg)
	if err != nil {
		log.Fatalf("[ERR] Failed to build AI provider: %v", err)
	}
	log.Printf("[INFO] Using AI provider %s", provider.Name())

	bot, err := discord.New(cfg, store, welcomes, provider)
	if err != nil {
		log.Fatalf("[ERR] Failed to create bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go welcomes.RunPruner(ctx)

	go func() {
		if err := web.New(cfg.StatusAddr, cfg, bot).Run(ctx); err != nil {
			log.Printf("[ERR] Status server failed: %v", err)
		}
	}()
	log.Printf("[INFO] Status server listening on %s", cfg.StatusAddr)

	if err := bot.Run(ctx); err != nil {
		log.Fatalf("[ERR] Bot stopped: %v", err)
	}
}

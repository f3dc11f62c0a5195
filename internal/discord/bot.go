// Package discord runs the gateway session: event handlers, command dispatch,
// slash command registration, and the welcome and forum flows.
package discord

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"

	"server-warden/internal/ai"
	"server-warden/internal/command"
	"server-warden/internal/config"
	"server-warden/internal/storage"
	"server-warden/internal/welcomelog"
)

// commandTimeout bounds one command invocation end to end.
const commandTimeout = 5 * time.Minute

// Bot owns the gateway session and its collaborators.
type Bot struct {
	dg       *discordgo.Session
	cfg      *config.Config
	store    *storage.Storage
	welcomes *welcomelog.Log
	ai       ai.Provider
	dir      command.Directory

	// regLimiter paces per-guild command registration calls.
	regLimiter *rate.Limiter

	ctx       context.Context
	startedAt time.Time
	ready     atomic.Bool
}

// New builds the bot and wires its event handlers.
func New(cfg *config.Config, store *storage.Storage, welcomes *welcomelog.Log, provider ai.Provider) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsGuildMessageReactions

	b := &Bot{
		dg:         dg,
		cfg:        cfg,
		store:      store,
		welcomes:   welcomes,
		ai:         provider,
		dir:        NewDirectory(dg),
		regLimiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onGuildCreate)
	dg.AddHandler(b.onInteractionCreate)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onGuildMemberAdd)
	dg.AddHandler(b.onThreadCreate)

	return b, nil
}

// Run opens the gateway connection and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	b.ctx = ctx
	if err := b.dg.Open(); err != nil {
		return fmt.Errorf("failed to open gateway connection: %w", err)
	}
	b.startedAt = time.Now()
	b.ready.Store(true)

	<-ctx.Done()

	b.ready.Store(false)
	if err := b.dg.Close(); err != nil {
		return fmt.Errorf("failed to close gateway connection: %w", err)
	}
	log.Println("[DONE] Gateway connection closed")
	return nil
}

// Ready reports whether the gateway connection is up.
func (b *Bot) Ready() bool { return b.ready.Load() }

// Latency is the current heartbeat round-trip time.
func (b *Bot) Latency() time.Duration { return b.dg.HeartbeatLatency() }

// Uptime is the time since the gateway connection was opened.
func (b *Bot) Uptime() time.Duration {
	if b.startedAt.IsZero() {
		return 0
	}
	return time.Since(b.startedAt)
}

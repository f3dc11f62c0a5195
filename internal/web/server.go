// Package web serves the JSON status API: bot health and the registered
// command catalog.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"server-warden/internal/command"
	"server-warden/internal/config"
)

// Status is the slice of the bot the API reports on.
type Status interface {
	Ready() bool
	Latency() time.Duration
	Uptime() time.Duration
}

// Server is the HTTP status server.
type Server struct {
	addr string
	cfg  *config.Config
	bot  Status
}

// New builds the status server.
func New(addr string, cfg *config.Config, bot Status) *Server {
	return &Server{addr: addr, cfg: cfg, bot: bot}
}

// Run serves the API until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/api/bot-status", s.botStatus)
	router.GET("/api/commands", s.commandList)

	srv := &http.Server{Addr: s.addr, Handler: router}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) botStatus(c *gin.Context) {
	if !s.bot.Ready() {
		c.JSON(http.StatusOK, gin.H{
			"status":  "offline",
			"latency": "N/A",
			"uptime":  "N/A",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"latency": s.bot.Latency().Milliseconds(),
		"uptime":  s.bot.Uptime().Milliseconds(),
	})
}

func (s *Server) commandList(c *gin.Context) {
	type entry struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Admin       bool   `json:"admin"`
	}
	defs := command.Definitions()
	out := make([]entry, 0, len(defs))
	for _, def := range defs {
		out = append(out, entry{
			Name:        "/" + def.Name,
			Description: def.Description,
			Admin:       command.EffectiveClass(def, s.cfg.CommandClasses) == command.Admin,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Package cleanup implements message deletion: single-batch deletes and the
// full-channel purge protocol with its recreation fallback.
package cleanup

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"
)

const (
	// bulkDeleteMaxAge is the directory's hard age limit for bulk deletion.
	bulkDeleteMaxAge = 14 * 24 * time.Hour

	// purgeCooldown spaces purge batches to stay under the rate limit.
	purgeCooldown = 750 * time.Millisecond

	fetchLimit = 100
)

// API is the slice of the session the purge loop needs. *discordgo.Session
// satisfies it.
type API interface {
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
	ChannelMessagesBulkDelete(channelID string, messages []string, options ...discordgo.RequestOption) error
}

// Result reports the outcome of a purge run.
type Result struct {
	// Deleted is the number of messages removed.
	Deleted int
	// Leftover reports whether messages too old to bulk-delete remain.
	Leftover bool
}

// Purger drives the batch deletion loop against a channel.
type Purger struct {
	API     API
	Limiter *rate.Limiter
	Now     func() time.Time
}

// NewPurger builds a purger with the production cooldown.
func NewPurger(api API) *Purger {
	return &Purger{
		API:     api,
		Limiter: rate.NewLimiter(rate.Every(purgeCooldown), 1),
		Now:     time.Now,
	}
}

// Run deletes every bulk-deletable message in the channel: fetch up to 100,
// filter to messages strictly younger than 14 days, bulk delete, cool down,
// repeat until a fetch comes back empty or nothing in a batch is deletable.
// A final single-message probe detects leftovers that only recreation can
// remove.
func (p *Purger) Run(ctx context.Context, channelID string) (Result, error) {
	var res Result
	for {
		if err := p.Limiter.Wait(ctx); err != nil {
			return res, err
		}

		batch, err := p.API.ChannelMessages(channelID, fetchLimit, "", "", "")
		if err != nil {
			return res, fmt.Errorf("failed to fetch messages: %w", err)
		}
		if len(batch) == 0 {
			break
		}

		now := p.Now()
		deletable := make([]string, 0, len(batch))
		for _, m := range batch {
			if now.Sub(m.Timestamp) < bulkDeleteMaxAge {
				deletable = append(deletable, m.ID)
			}
		}
		if len(deletable) == 0 {
			break
		}

		if err := p.API.ChannelMessagesBulkDelete(channelID, deletable); err != nil {
			return res, fmt.Errorf("failed to bulk delete: %w", err)
		}
		res.Deleted += len(deletable)
	}

	probe, err := p.API.ChannelMessages(channelID, 1, "", "", "")
	if err != nil {
		return res, fmt.Errorf("failed to probe for leftovers: %w", err)
	}
	res.Leftover = len(probe) > 0
	return res, nil
}

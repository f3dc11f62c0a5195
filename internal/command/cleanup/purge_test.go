package cleanup

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// fakeChannel serves messages newest-first and honors bulk deletions.
type fakeChannel struct {
	messages    []*discordgo.Message
	fetchCalls  int
	deleteCalls int
}

func (f *fakeChannel) ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error) {
	f.fetchCalls++
	if limit > len(f.messages) {
		limit = len(f.messages)
	}
	return f.messages[:limit], nil
}

func (f *fakeChannel) ChannelMessagesBulkDelete(channelID string, ids []string, options ...discordgo.RequestOption) error {
	f.deleteCalls++
	doomed := make(map[string]bool, len(ids))
	for _, id := range ids {
		doomed[id] = true
	}
	kept := f.messages[:0]
	for _, m := range f.messages {
		if !doomed[m.ID] {
			kept = append(kept, m)
		}
	}
	f.messages = kept
	return nil
}

func newTestPurger(api API, now time.Time) *Purger {
	return &Purger{
		API:     api,
		Limiter: rate.NewLimiter(rate.Inf, 1),
		Now:     func() time.Time { return now },
	}
}

func messagesAged(n int, age time.Duration, now time.Time) []*discordgo.Message {
	msgs := make([]*discordgo.Message, n)
	for i := range msgs {
		msgs[i] = &discordgo.Message{ID: fmt.Sprintf("m%d-%d", int(age.Hours()), i), Timestamp: now.Add(-age)}
	}
	return msgs
}

func TestPurgeThreeCycles(t *testing.T) {
	now := time.Now()
	ch := &fakeChannel{messages: messagesAged(250, time.Hour, now)}
	p := newTestPurger(ch, now)

	res, err := p.Run(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 250, res.Deleted)
	assert.False(t, res.Leftover)
	assert.Equal(t, 3, ch.deleteCalls, "100+100+50 across three cycles")
	// Three full fetches, one empty fetch ending the loop, one probe.
	assert.Equal(t, 5, ch.fetchCalls)
}

func TestPurgeAllMessagesTooOld(t *testing.T) {
	now := time.Now()
	ch := &fakeChannel{messages: messagesAged(10, 15*24*time.Hour, now)}
	p := newTestPurger(ch, now)

	res, err := p.Run(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Deleted)
	assert.True(t, res.Leftover)
	assert.Equal(t, 0, ch.deleteCalls)
}

func TestPurgeMixedAges(t *testing.T) {
	now := time.Now()
	msgs := messagesAged(120, time.Hour, now)
	msgs = append(msgs, messagesAged(5, 20*24*time.Hour, now)...)
	ch := &fakeChannel{messages: msgs}
	p := newTestPurger(ch, now)

	res, err := p.Run(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 120, res.Deleted)
	assert.True(t, res.Leftover, "messages older than 14 days remain")
}

func TestPurgeAgeBoundaryIsStrict(t *testing.T) {
	now := time.Now()
	ch := &fakeChannel{messages: []*discordgo.Message{
		{ID: "exact", Timestamp: now.Add(-bulkDeleteMaxAge)},
		{ID: "fresh", Timestamp: now.Add(-bulkDeleteMaxAge + time.Second)},
	}}
	p := newTestPurger(ch, now)

	res, err := p.Run(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Deleted, "a message exactly at the boundary is too old")
	assert.True(t, res.Leftover)
}

func TestPurgeEmptyChannel(t *testing.T) {
	now := time.Now()
	ch := &fakeChannel{}
	p := newTestPurger(ch, now)

	res, err := p.Run(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Deleted)
	assert.False(t, res.Leftover)
}

func TestPurgeStopsOnCancel(t *testing.T) {
	now := time.Now()
	ch := &fakeChannel{messages: messagesAged(300, time.Hour, now)}
	p := newTestPurger(ch, now)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Run(ctx, "c1")
	assert.Error(t, err)
}

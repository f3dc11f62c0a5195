package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/bot"
	"server-warden/internal/command"
	"server-warden/internal/command/welcome"
	"server-warden/pkg/cmd"
	"server-warden/pkg/textsplit"
)

// replyChunkSize leaves headroom under the protocol limit for decorations.
const replyChunkSize = 1575

// legacyRedirects maps retired text commands to their slash replacements.
var legacyRedirects = map[string]string{
	"!addrole":              "addrole",
	"!removerole":           "removerole",
	"!createrole":           "createrole",
	"!deleterole":           "deleterole",
	"!renamerole":           "renamerole",
	"!createchannel":        "createchannel",
	"!deletechannel":        "deletechannel",
	"!createprivatechannel": "createprivatechannel",
	"!senddm":               "senddm",
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[DONE] Logged in as %s, serving %d guilds", s.State.User.Username, len(r.Guilds))
}

func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	if !b.cfg.InitSlashCommands {
		return
	}
	if err := b.registerCommands(g.ID); err != nil {
		log.Printf("[ERR] Failed to register commands in guild %s: %v", g.ID, err)
	}
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	name := i.ApplicationCommandData().Name

	c, ok := cmd.DefaultRegistry.Get(name)
	if !ok {
		log.Printf("[WARN] Unknown command %q invoked", name)
		if err := bot.RespondEphemeral(s, i, command.UserMessage(command.ErrUnknownCommand)); err != nil {
			log.Printf("[ERR] Failed to reply to unknown command: %v", err)
		}
		return
	}

	sc := &command.SlashContext{
		Session: s,
		Event:   i,
		Store:   b.store,
		AI:      b.ai,
		Dir:     b.dir,
		Cfg:     b.cfg,
	}
	if i.Member != nil {
		actor, err := command.ResolveActor(b.dir, i.GuildID, i.Member)
		if err != nil {
			log.Printf("[ERR] Failed to resolve actor for %s: %v", name, err)
			b.replyError(s, i, command.ErrExternalService)
			return
		}
		sc.Actor = actor
	}

	ctx, cancel := context.WithTimeout(b.ctx, commandTimeout)
	defer cancel()

	if err := c.Run(ctx, &cmd.Invocation{Data: sc}); err != nil {
		log.Printf("[WARN] Command %s failed: %v", name, err)
		b.replyError(s, i, err)
	}
}

// replyError delivers the single user-visible failure reply, falling back to a
// followup when the interaction was already acknowledged.
func (b *Bot) replyError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	msg := command.UserMessage(err)
	if rerr := bot.RespondEphemeral(s, i, msg); rerr != nil {
		if ferr := bot.FollowupEphemeral(s, i, msg); ferr != nil {
			log.Printf("[ERR] Failed to deliver error reply: %v", ferr)
		}
	}
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if m.GuildID == "" {
		b.handleDirectMessage(s, m)
		return
	}

	// Free text is a valid non-command message; only retired bang commands
	// get a redirect.
	fields := strings.Fields(m.Content)
	if len(fields) == 0 {
		return
	}
	if slash, ok := legacyRedirects[strings.ToLower(fields[0])]; ok {
		reply := fmt.Sprintf("❌ This `!` command has been moved to a slash command. Use `/%s` instead.", slash)
		if err := bot.Message(s, m.ChannelID, reply); err != nil {
			log.Printf("[WARN] Failed to send legacy redirect: %v", err)
		}
	}
}

// handleDirectMessage routes a DM straight to the AI provider, without any
// guild context prefix.
func (b *Bot) handleDirectMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	ctx, cancel := context.WithTimeout(b.ctx, commandTimeout)
	defer cancel()

	answer, err := b.ai.Generate(ctx, m.Content)
	if err != nil {
		log.Printf("[ERR] DM chat generation failed: %v", err)
		_ = bot.Message(s, m.ChannelID, "❌ Sorry, something went wrong with the AI.")
		return
	}
	for _, chunk := range textsplit.Split(answer, replyChunkSize) {
		if err := bot.Message(s, m.ChannelID, chunk); err != nil {
			log.Printf("[ERR] Failed to send DM chat reply: %v", err)
			return
		}
	}
}

func (b *Bot) onGuildMemberAdd(s *discordgo.Session, e *discordgo.GuildMemberAdd) {
	if e.User == nil || e.User.Bot {
		return
	}

	ok, err := b.welcomes.ShouldWelcome(e.GuildID, e.User.ID)
	if err != nil {
		log.Printf("[WARN] Welcome log lookup failed for %s: %v", e.User.ID, err)
	}
	if !ok && err == nil {
		return
	}

	guildName := "the server"
	if guild, err := b.dir.Guild(e.GuildID); err == nil {
		guildName = guild.Name
	}

	// DM failure is non-fatal (the member may have DMs disabled).
	if dm, err := s.UserChannelCreate(e.User.ID); err == nil {
		if err := bot.Message(s, dm.ID, welcome.DirectMessage(guildName)); err != nil {
			log.Printf("[INFO] Could not DM welcome to %s: %v", e.User.Username, err)
		}
	} else {
		log.Printf("[INFO] Could not open DM with %s: %v", e.User.Username, err)
	}

	if cfg, err := b.store.GuildConfig(e.GuildID); err == nil && cfg.WelcomeChannelID != "" {
		if err := bot.Message(s, cfg.WelcomeChannelID, welcome.Announcement(e.User.ID)); err != nil {
			log.Printf("[WARN] Failed to announce welcome for %s: %v", e.User.Username, err)
		}
	}

	if err := b.welcomes.Mark(e.GuildID, e.User.ID); err != nil {
		log.Printf("[WARN] Failed to record welcome for %s: %v", e.User.ID, err)
	}
}

// onThreadCreate answers new threads in the configured questions forum with an
// AI response built from the guild's context prompt.
func (b *Bot) onThreadCreate(s *discordgo.Session, t *discordgo.ThreadCreate) {
	if t.ParentID == "" {
		return
	}
	parent, err := b.dir.Channel(t.ParentID)
	if err != nil || !strings.EqualFold(parent.Name, b.cfg.QuestionsForum) {
		return
	}

	if err := s.ThreadJoin(t.ID); err != nil {
		log.Printf("[WARN] Failed to join thread %s: %v", t.ID, err)
	}

	msgs, err := s.ChannelMessages(t.ID, 1, "", "", "")
	if err != nil || len(msgs) == 0 {
		return
	}
	first := msgs[0]

	prompt, err := b.store.ContextPrompt(t.GuildID, b.cfg.DefaultContext)
	if err != nil {
		prompt = b.cfg.DefaultContext
	}

	ctx, cancel := context.WithTimeout(b.ctx, commandTimeout)
	defer cancel()

	answer, err := b.ai.Generate(ctx, prompt+"\n\nUser asked: "+first.Content)
	if err != nil {
		log.Printf("[ERR] Forum responder generation failed: %v", err)
		return
	}

	reply := fmt.Sprintf("<@%s>, **AI Response** *(an instructor will respond with a full response within 1 business day)*:\n\n%s",
		first.Author.ID, answer)
	for _, chunk := range textsplit.Split(reply, replyChunkSize) {
		if err := bot.Message(s, t.ID, chunk); err != nil {
			log.Printf("[ERR] Failed to send forum response: %v", err)
			return
		}
	}
}

package discord

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeAPI struct {
	mu sync.Mutex

	responses []*discordgo.InteractionResponse
	sent      []*discordgo.MessageSend
	sentTo    []string
	overwrite []*discordgo.ApplicationCommand
	appID     string
	guildID   string

	bans     []string
	kicks    []string
	until    *time.Time
	messages []*discordgo.Message
	deleted  []string
	guild    *discordgo.Guild
	fail     error
}

func (f *fakeAPI) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses = append(f.responses, resp)
	return f.fail
}

func (f *fakeAPI) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, data)
	f.sentTo = append(f.sentTo, channelID)
	return &discordgo.Message{ChannelID: channelID, Content: data.Content}, f.fail
}

func (f *fakeAPI) GuildBanCreate(_, userID string, _ int, _ ...discordgo.RequestOption) error {
	f.bans = append(f.bans, userID)
	return f.fail
}

func (f *fakeAPI) GuildMemberDelete(_, userID string, _ ...discordgo.RequestOption) error {
	f.kicks = append(f.kicks, userID)
	return f.fail
}

func (f *fakeAPI) GuildMemberTimeout(_, _ string, until *time.Time, _ ...discordgo.RequestOption) error {
	f.until = until
	return f.fail
}

func (f *fakeAPI) ChannelMessages(_ string, limit int, _, _, _ string, _ ...discordgo.RequestOption) ([]*discordgo.Message, error) {
	if limit < len(f.messages) {
		return f.messages[:limit], f.fail
	}
	return f.messages, f.fail
}

func (f *fakeAPI) ChannelMessagesBulkDelete(_ string, ids []string, _ ...discordgo.RequestOption) error {
	f.deleted = append(f.deleted, ids...)
	return f.fail
}

func (f *fakeAPI) GuildWithCounts(guildID string, _ ...discordgo.RequestOption) (*discordgo.Guild, error) {
	if f.guild == nil {
		return nil, errors.New("unknown guild")
	}
	return f.guild, nil
}

func (f *fakeAPI) ApplicationCommandBulkOverwrite(appID, guildID string, cmds []*discordgo.ApplicationCommand, _ ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appID, f.guildID, f.overwrite = appID, guildID, cmds
	if f.fail != nil {
		return nil, f.fail
	}
	return cmds, nil
}

type fakeCache struct {
	members map[string]*discordgo.Member
	guilds  map[string]*discordgo.Guild
}

func (c *fakeCache) Member(_, userID string) (*discordgo.Member, error) {
	m, ok := c.members[userID]
	if !ok {
		return nil, discordgo.ErrStateNotFound
	}
	return m, nil
}

func (c *fakeCache) Guild(guildID string) (*discordgo.Guild, error) {
	g, ok := c.guilds[guildID]
	if !ok {
		return nil, discordgo.ErrStateNotFound
	}
	return g, nil
}

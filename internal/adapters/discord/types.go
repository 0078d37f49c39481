package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// API es el subconjunto REST de *discordgo.Session que usa el bot.
type API interface {
	InteractionRespond(i *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	GuildBanCreate(guildID, userID string, days int, options ...discordgo.RequestOption) error
	GuildMemberDelete(guildID, userID string, options ...discordgo.RequestOption) error
	GuildMemberTimeout(guildID, userID string, until *time.Time, options ...discordgo.RequestOption) error
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
	ChannelMessagesBulkDelete(channelID string, messages []string, options ...discordgo.RequestOption) error
	GuildWithCounts(guildID string, options ...discordgo.RequestOption) (*discordgo.Guild, error)
	CommandRegistrar
}

type CommandRegistrar interface {
	ApplicationCommandBulkOverwrite(appID, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// Cache lo cumple *discordgo.State.
type Cache interface {
	Member(guildID, userID string) (*discordgo.Member, error)
	Guild(guildID string) (*discordgo.Guild, error)
}

var (
	_ API   = (*discordgo.Session)(nil)
	_ Cache = (*discordgo.State)(nil)
)

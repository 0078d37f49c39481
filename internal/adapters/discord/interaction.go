package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/warabi-bot/internal/domain"
)

func toUser(u *discordgo.User) domain.User {
	if u == nil {
		return domain.User{}
	}
	return domain.User{ID: u.ID, Tag: u.String(), Bot: u.Bot}
}

// invoker: en guild viene en Member, en DM en User.
func invoker(ic *discordgo.InteractionCreate) *discordgo.User {
	if ic.Member != nil && ic.Member.User != nil {
		return ic.Member.User
	}
	return ic.User
}

func toInteraction(ic *discordgo.InteractionCreate) domain.Interaction {
	in := domain.Interaction{
		Type:      domain.InteractionOther,
		GuildID:   ic.GuildID,
		ChannelID: ic.ChannelID,
		User:      toUser(invoker(ic)),
	}
	if ic.Type != discordgo.InteractionApplicationCommand {
		return in
	}
	data := ic.ApplicationCommandData()
	in.Type = domain.InteractionCommand
	in.Command = data.Name
	in.Options = make(map[string]any, len(data.Options))
	for _, o := range data.Options {
		switch o.Type {
		case discordgo.ApplicationCommandOptionString:
			in.Options[o.Name] = o.StringValue()
		case discordgo.ApplicationCommandOptionInteger:
			in.Options[o.Name] = o.IntValue()
		case discordgo.ApplicationCommandOptionUser, discordgo.ApplicationCommandOptionChannel:
			// sin sesión: UserValue/ChannelValue harían REST
			if id, ok := o.Value.(string); ok {
				in.Options[o.Name] = id
			}
		}
	}
	if data.Resolved != nil && len(data.Resolved.Users) > 0 {
		in.Users = make(map[string]domain.User, len(data.Resolved.Users))
		for id, u := range data.Resolved.Users {
			in.Users[id] = toUser(u)
		}
	}
	return in
}

func toMessage(m *discordgo.Message) domain.Message {
	return domain.Message{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
		Content:   m.Content,
		Author:    toUser(m.Author),
	}
}

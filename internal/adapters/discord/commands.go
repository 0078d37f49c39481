package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/warabi-bot/internal/domain"
)

var optionTypes = map[domain.ParamKind]discordgo.ApplicationCommandOptionType{
	domain.ParamUser:    discordgo.ApplicationCommandOptionUser,
	domain.ParamString:  discordgo.ApplicationCommandOptionString,
	domain.ParamInteger: discordgo.ApplicationCommandOptionInteger,
	domain.ParamChannel: discordgo.ApplicationCommandOptionChannel,
}

// Commands traduce el catálogo a la forma que espera la API de Discord.
func Commands(descs []domain.Descriptor) []*discordgo.ApplicationCommand {
	out := make([]*discordgo.ApplicationCommand, 0, len(descs))
	for _, d := range descs {
		cmd := &discordgo.ApplicationCommand{
			Name:        d.Name,
			Description: d.Description,
		}
		if d.Permissions != 0 {
			perms := d.Permissions
			cmd.DefaultMemberPermissions = &perms
		}
		for _, p := range d.Params {
			opt := &discordgo.ApplicationCommandOption{
				Type:        optionTypes[p.Kind],
				Name:        p.Name,
				Description: p.Description,
				Required:    p.Required,
			}
			if p.Min != nil {
				lo := float64(*p.Min)
				opt.MinValue = &lo
			}
			if p.Kind == domain.ParamChannel {
				opt.ChannelTypes = []discordgo.ChannelType{discordgo.ChannelTypeGuildText}
			}
			cmd.Options = append(cmd.Options, opt)
		}
		out = append(out, cmd)
	}
	return out
}

// PushCatalog sobrescribe el catálogo completo en una sola llamada.
// guildID vacío registra comandos globales.
func PushCatalog(ctx context.Context, api CommandRegistrar, appID, guildID string, descs []domain.Descriptor) (int, error) {
	created, err := api.ApplicationCommandBulkOverwrite(appID, guildID, Commands(descs), discordgo.WithContext(ctx))
	if err != nil {
		return 0, fmt.Errorf("registrando comandos: %w", err)
	}
	return len(created), nil
}

// Registrar es lo que necesita RegisterCatalog fuera del gateway.
type Registrar interface {
	CommandRegistrar
	User(userID string, options ...discordgo.RequestOption) (*discordgo.User, error)
}

// RegisterCatalog sube el catálogo sólo por REST. appID vacío usa el del bot.
func RegisterCatalog(ctx context.Context, api Registrar, appID, guildID string, descs []domain.Descriptor) (int, error) {
	if appID == "" {
		u, err := api.User("@me", discordgo.WithContext(ctx))
		if err != nil {
			return 0, fmt.Errorf("resolviendo application id: %w", err)
		}
		appID = u.ID
	}
	return PushCatalog(ctx, api, appID, guildID, descs)
}

var _ Registrar = (*discordgo.Session)(nil)

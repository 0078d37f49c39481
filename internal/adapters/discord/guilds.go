package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/warabi-bot/internal/domain"
)

var ErrInvalidLimit = errors.New("message limit must be positive")

// Guilds implementa service.Guilds sobre la sesión y su caché.
type Guilds struct {
	api   API
	cache Cache
}

func NewGuilds(api API, cache Cache) *Guilds {
	return &Guilds{api: api, cache: cache}
}

// Member sólo mira la caché, como el bot original.
func (g *Guilds) Member(_ context.Context, guildID, userID string) (domain.Member, error) {
	m, err := g.cache.Member(guildID, userID)
	if errors.Is(err, discordgo.ErrStateNotFound) || (err == nil && m == nil) {
		return domain.Member{}, domain.ErrMemberNotFound
	}
	if err != nil {
		return domain.Member{}, err
	}
	u := toUser(m.User)
	if u.ID == "" {
		u = domain.User{ID: userID, Tag: userID}
	}
	return domain.Member{GuildID: guildID, User: u}, nil
}

func (g *Guilds) Guild(ctx context.Context, guildID string) (domain.Guild, error) {
	if gd, err := g.cache.Guild(guildID); err == nil && gd != nil {
		return domain.Guild{ID: gd.ID, Name: gd.Name, MemberCount: gd.MemberCount}, nil
	}
	gd, err := g.api.GuildWithCounts(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return domain.Guild{}, err
	}
	return domain.Guild{ID: gd.ID, Name: gd.Name, MemberCount: gd.ApproximateMemberCount}, nil
}

func (g *Guilds) Ban(ctx context.Context, guildID, userID string) error {
	return g.api.GuildBanCreate(guildID, userID, 0, discordgo.WithContext(ctx))
}

func (g *Guilds) Kick(ctx context.Context, guildID, userID string) error {
	return g.api.GuildMemberDelete(guildID, userID, discordgo.WithContext(ctx))
}

func (g *Guilds) Timeout(ctx context.Context, guildID, userID string, d time.Duration) error {
	until := time.Now().Add(d)
	return g.api.GuildMemberTimeout(guildID, userID, &until, discordgo.WithContext(ctx))
}

// RecentMessageIDs exige limit > 0: discordgo omite el parámetro si no y
// Discord devuelve los últimos 50.
func (g *Guilds) RecentMessageIDs(ctx context.Context, channelID string, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}
	msgs, err := g.api.ChannelMessages(channelID, limit, "", "", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(msgs))
	for _, m := range msgs {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

func (g *Guilds) BulkDelete(ctx context.Context, channelID string, messageIDs []string) error {
	return g.api.ChannelMessagesBulkDelete(channelID, messageIDs, discordgo.WithContext(ctx))
}

package discord

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/warabi-bot/internal/domain"
)

func TestGuildsMember(t *testing.T) {
	cache := &fakeCache{members: map[string]*discordgo.Member{
		"u1": {User: &discordgo.User{ID: "u1", Username: "alice", Discriminator: "0"}},
	}}
	g := NewGuilds(&fakeAPI{}, cache)

	m, err := g.Member(context.Background(), "g1", "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.Member{GuildID: "g1", User: domain.User{ID: "u1", Tag: "alice"}}, m)

	_, err = g.Member(context.Background(), "g1", "ghost")
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestGuildsGuildFallsBackToREST(t *testing.T) {
	api := &fakeAPI{guild: &discordgo.Guild{ID: "g2", Name: "remote", ApproximateMemberCount: 42}}
	cache := &fakeCache{guilds: map[string]*discordgo.Guild{
		"g1": {ID: "g1", Name: "cached", MemberCount: 7},
	}}
	g := NewGuilds(api, cache)

	got, err := g.Guild(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, domain.Guild{ID: "g1", Name: "cached", MemberCount: 7}, got)

	got, err = g.Guild(context.Background(), "g2")
	require.NoError(t, err)
	assert.Equal(t, domain.Guild{ID: "g2", Name: "remote", MemberCount: 42}, got)
}

func TestGuildsModeration(t *testing.T) {
	api := &fakeAPI{messages: []*discordgo.Message{{ID: "m1"}, {ID: "m2"}, {ID: "m3"}}}
	g := NewGuilds(api, &fakeCache{})
	ctx := context.Background()

	require.NoError(t, g.Ban(ctx, "g1", "u1"))
	require.NoError(t, g.Kick(ctx, "g1", "u2"))
	assert.Equal(t, []string{"u1"}, api.bans)
	assert.Equal(t, []string{"u2"}, api.kicks)

	before := time.Now()
	require.NoError(t, g.Timeout(ctx, "g1", "u3", time.Minute))
	require.NotNil(t, api.until)
	assert.WithinDuration(t, before.Add(time.Minute), *api.until, 5*time.Second)

	ids, err := g.RecentMessageIDs(ctx, "c1", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"m1", "m2"}, ids)
	require.NoError(t, g.BulkDelete(ctx, "c1", ids))
	assert.Equal(t, []string{"m1", "m2"}, api.deleted)
}

func TestGuildsRecentMessageIDsRejectsNonPositiveLimit(t *testing.T) {
	api := &fakeAPI{messages: []*discordgo.Message{{ID: "m1"}, {ID: "m2"}}}
	g := NewGuilds(api, &fakeCache{})

	for _, limit := range []int{0, -3} {
		ids, err := g.RecentMessageIDs(context.Background(), "c1", limit)
		assert.ErrorIs(t, err, ErrInvalidLimit)
		assert.Empty(t, ids)
	}
	assert.Empty(t, api.deleted)
}

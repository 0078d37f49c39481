package discord

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/warabi-bot/internal/app/service"
	"github.com/jose-valero/warabi-bot/internal/domain"
)

type staticAsker string

func (a staticAsker) Ask(context.Context, string) (string, error) { return string(a), nil }

func testRouter(t *testing.T, api *fakeAPI, channels *service.AIChannels) *Router {
	t.Helper()
	reg := service.NewRegistry()
	ping := domain.Descriptor{Name: "ping", Description: "p"}
	require.NoError(t, reg.Register(ping, service.HandlerFunc(func(context.Context, domain.Interaction) (domain.Reply, error) {
		return domain.Reply{Content: service.TextPong}, nil
	})))
	log := discardLogger()
	return newRouter(api, "g1", reg.Descriptors(),
		service.NewDispatcher(reg, log),
		service.NewWatcher(channels, staticAsker("回答"), log),
		channels, log)
}

func TestRouterInteraction(t *testing.T) {
	api := &fakeAPI{}
	r := testRouter(t, api, service.NewAIChannels(nil))

	r.onInteraction(nil, slash("ping"))
	require.Len(t, api.responses, 1)
	assert.Equal(t, "Pong!", api.responses[0].Data.Content)

	r.onInteraction(nil, slash("nope"))
	assert.Len(t, api.responses, 1)
}

func TestRouterMessage(t *testing.T) {
	api := &fakeAPI{}
	channels := service.NewAIChannels(nil)
	_, err := channels.Add(context.Background(), domain.AIChannel{ChannelID: "ai"})
	require.NoError(t, err)
	r := testRouter(t, api, channels)

	r.onMessage(nil, &discordgo.MessageCreate{Message: &discordgo.Message{
		ID: "m1", ChannelID: "c1", Content: "わらびもち",
		Author: &discordgo.User{ID: "b1", Bot: true},
	}})
	r.onMessage(nil, &discordgo.MessageCreate{Message: &discordgo.Message{
		ID: "m2", ChannelID: "ai", Content: "質問",
		Author: &discordgo.User{ID: "u1"},
	}})
	r.onMessage(nil, &discordgo.MessageCreate{Message: &discordgo.Message{ID: "m3", ChannelID: "ai"}})

	require.Len(t, api.sent, 2)
	assert.Equal(t, "なんやねん", api.sent[0].Content)
	assert.Equal(t, "回答", api.sent[1].Content)
	assert.Equal(t, []string{"c1", "ai"}, api.sentTo)
}

func TestRouterReadyRunsOnce(t *testing.T) {
	api := &fakeAPI{}
	r := testRouter(t, api, service.NewAIChannels(nil))
	ready := &discordgo.Ready{
		User:        &discordgo.User{ID: "bot", Username: "warabi"},
		Application: &discordgo.Application{ID: "app"},
		Guilds:      []*discordgo.Guild{{ID: "g1"}},
	}

	r.onReady(nil, ready)
	assert.Equal(t, "app", api.appID)
	assert.Equal(t, "g1", api.guildID)
	require.Len(t, api.overwrite, 1)
	assert.Equal(t, "ping", api.overwrite[0].Name)

	api.appID = ""
	r.onReady(nil, ready)
	assert.Empty(t, api.appID)
}

package discord

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/lmittmann/tint"

	"github.com/jose-valero/warabi-bot/internal/app/service"
	"github.com/jose-valero/warabi-bot/internal/domain"
)

type Router struct {
	s       *discordgo.Session
	api     API
	guildID string

	catalog    []domain.Descriptor
	dispatcher *service.Dispatcher
	watcher    *service.Watcher
	channels   *service.AIChannels
	log        *slog.Logger

	readyOnce sync.Once
}

func NewRouter(
	s *discordgo.Session,
	guildID string,
	catalog []domain.Descriptor,
	dispatcher *service.Dispatcher,
	watcher *service.Watcher,
	channels *service.AIChannels,
	log *slog.Logger,
) *Router {
	r := newRouter(s, guildID, catalog, dispatcher, watcher, channels, log)
	r.s = s
	return r
}

func newRouter(
	api API,
	guildID string,
	catalog []domain.Descriptor,
	dispatcher *service.Dispatcher,
	watcher *service.Watcher,
	channels *service.AIChannels,
	log *slog.Logger,
) *Router {
	return &Router{
		api:        api,
		guildID:    guildID,
		catalog:    catalog,
		dispatcher: dispatcher,
		watcher:    watcher,
		channels:   channels,
		log:        log.With("component", "router"),
	}
}

// Handlers engancha los eventos del gateway. Llamar antes de Open.
func (r *Router) Handlers() {
	r.s.AddHandler(r.onReady)
	r.s.AddHandler(r.onInteraction)
	r.s.AddHandler(r.onMessage)
}

// onReady registra el catálogo y restaura los canales de IA, una vez por proceso.
func (r *Router) onReady(_ *discordgo.Session, ev *discordgo.Ready) {
	r.readyOnce.Do(func() {
		ctx := context.Background()
		appID := ev.User.ID
		if ev.Application != nil && ev.Application.ID != "" {
			appID = ev.Application.ID
		}
		r.log.Info("✅ conectado", "user", ev.User.Username, "id", ev.User.ID, "guilds", len(ev.Guilds))

		n, err := PushCatalog(ctx, r.api, appID, r.guildID, r.catalog)
		if err != nil {
			r.log.Error("catalog push failed", tint.Err(err))
		} else {
			r.log.Info("✅ comandos registrados", "count", n, "guild", r.guildID)
		}

		guildIDs := make([]string, 0, len(ev.Guilds))
		for _, g := range ev.Guilds {
			guildIDs = append(guildIDs, g.ID)
		}
		restored, err := r.channels.Restore(ctx, guildIDs)
		if err != nil {
			r.log.Error("ai channel restore failed", tint.Err(err))
			return
		}
		if restored > 0 {
			r.log.Info("ai channels restored", "count", restored)
		}
	})
}

func (r *Router) onInteraction(_ *discordgo.Session, ic *discordgo.InteractionCreate) {
	in := toInteraction(ic)
	if in.Type == domain.InteractionCommand {
		defer step(r.log, "slash."+in.Command)()
	}
	r.dispatcher.Dispatch(context.Background(), in, &interactionResponder{api: r.api, ic: ic.Interaction})
}

func (r *Router) onMessage(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Message == nil || m.Author == nil {
		return
	}
	r.watcher.Handle(context.Background(), toMessage(m.Message), &messageReplier{api: r.api, msg: m.Message})
}

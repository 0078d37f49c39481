package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lmittmann/tint"

	"github.com/jose-valero/warabi-bot/internal/domain"
)

type Dispatcher struct {
	reg *Registry
	log *slog.Logger
}

func NewDispatcher(reg *Registry, log *slog.Logger) *Dispatcher {
	return &Dispatcher{reg: reg, log: log.With("component", "dispatcher")}
}

// Dispatch ejecuta a lo sumo un handler y manda exactamente una respuesta:
// la del handler o, si falla, el error genérico efímero.
func (d *Dispatcher) Dispatch(ctx context.Context, in domain.Interaction, out Responder) {
	if in.Type != domain.InteractionCommand {
		return
	}
	h, err := d.reg.Resolve(in.Command)
	if err != nil {
		d.log.DebugContext(ctx, "unknown command ignored", "command", in.Command)
		return
	}

	d.log.InfoContext(ctx, "slash command",
		"command", in.Command, "user", in.User.ID, "guild", in.GuildID, "channel", in.ChannelID)

	reply, err := invoke(ctx, h, in)
	if err != nil {
		d.log.ErrorContext(ctx, "command failed", "command", in.Command, tint.Err(err))
		reply = domain.Reply{Content: TextGenericError, Ephemeral: true}
	}
	if err := out.Respond(ctx, reply); err != nil {
		d.log.ErrorContext(ctx, "reply failed", "command", in.Command, tint.Err(err))
	}
}

var errPanic = errors.New("handler panic")

func invoke(ctx context.Context, h Handler, in domain.Interaction) (reply domain.Reply, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", errPanic, rec)
		}
	}()
	return h.Handle(ctx, in)
}

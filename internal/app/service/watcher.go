package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lmittmann/tint"

	"github.com/jose-valero/warabi-bot/internal/domain"
)

// Watcher mira cada mensaje de texto. Las dos etapas son independientes y
// pueden responder las dos al mismo mensaje.
type Watcher struct {
	channels *AIChannels
	ai       Asker
	log      *slog.Logger
}

func NewWatcher(channels *AIChannels, ai Asker, log *slog.Logger) *Watcher {
	return &Watcher{channels: channels, ai: ai, log: log.With("component", "watcher")}
}

func (w *Watcher) Handle(ctx context.Context, msg domain.Message, out MessageReplier) {
	w.Trigger(ctx, msg, out)
	w.Relay(ctx, msg, out)
}

// Trigger contesta la frase fija. No filtra bots.
func (w *Watcher) Trigger(ctx context.Context, msg domain.Message, out MessageReplier) bool {
	if !strings.Contains(msg.Content, TriggerPhrase) {
		return false
	}
	if err := out.Reply(ctx, TriggerReply); err != nil {
		w.log.ErrorContext(ctx, "trigger reply failed", "channel", msg.ChannelID, tint.Err(err))
	}
	return true
}

// Relay manda el texto completo al servicio de IA si el canal está en el set.
// Los mensajes de bots no pasan, para no contestarse a sí mismo.
func (w *Watcher) Relay(ctx context.Context, msg domain.Message, out MessageReplier) bool {
	if msg.Author.Bot || !w.channels.Has(msg.ChannelID) {
		return false
	}
	answer, err := w.ai.Ask(ctx, msg.Content)
	if err != nil {
		w.log.ErrorContext(ctx, "ai relay failed", "channel", msg.ChannelID, tint.Err(err))
		answer = TextAIFailure
	}
	if err := out.Reply(ctx, answer); err != nil {
		w.log.ErrorContext(ctx, "ai reply failed", "channel", msg.ChannelID, tint.Err(err))
	}
	return true
}

package service

import (
	"context"
	"time"

	"github.com/jose-valero/warabi-bot/internal/domain"
)

// Lo implementa internal/adapters/discord (sesión + caché de estado).
type Guilds interface {
	// Member busca sólo en la caché; domain.ErrMemberNotFound si no está.
	Member(ctx context.Context, guildID, userID string) (domain.Member, error)
	Guild(ctx context.Context, guildID string) (domain.Guild, error)
	Ban(ctx context.Context, guildID, userID string) error
	Kick(ctx context.Context, guildID, userID string) error
	Timeout(ctx context.Context, guildID, userID string, d time.Duration) error
	RecentMessageIDs(ctx context.Context, channelID string, limit int) ([]string, error)
	BulkDelete(ctx context.Context, channelID string, messageIDs []string) error
}

// Lo implementan internal/adapters/gemimi y internal/adapters/openai.
type Asker interface {
	Ask(ctx context.Context, question string) (string, error)
}

// Lo implementa internal/adapters/ipapi.
type IPLocator interface {
	Lookup(ctx context.Context, ip string) (domain.IPInfo, error)
}

// Lo implementa internal/adapters/qrcode.
type QREncoder interface {
	PNG(content string) ([]byte, error)
}

// Lo implementa internal/infra/storage.ChannelRepo (opcional).
type ChannelRepo interface {
	Add(ctx context.Context, ch domain.AIChannel) (bool, error)
	ListForGuilds(ctx context.Context, guildIDs []string) ([]domain.AIChannel, error)
}

// Responder contesta una interacción. Una llamada por interacción.
type Responder interface {
	Respond(ctx context.Context, r domain.Reply) error
}

// MessageReplier responde citando el mensaje entrante.
type MessageReplier interface {
	Reply(ctx context.Context, content string) error
}

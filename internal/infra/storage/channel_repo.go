package storage

import (
	"context"
	"database/sql"
	"time"

	pq "github.com/lib/pq"

	"github.com/jose-valero/warabi-bot/internal/domain"
)

// ChannelRepo persiste el set de canales de IA. No hay borrado.
type ChannelRepo struct{ db *sql.DB }

func NewChannelRepo(db *sql.DB) *ChannelRepo { return &ChannelRepo{db: db} }

// Add es idempotente: devuelve false si el canal ya estaba.
func (r *ChannelRepo) Add(ctx context.Context, ch domain.AIChannel) (bool, error) {
	addedAt := ch.AddedAt
	if addedAt.IsZero() {
		addedAt = time.Now()
	}
	res, err := r.db.ExecContext(ctx, `
INSERT INTO ai_channels (channel_id, guild_id, added_by, added_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (channel_id) DO NOTHING
`, ch.ChannelID, ch.GuildID, ch.AddedBy, addedAt)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListForGuilds: canales de los guilds donde está el bot ahora mismo.
func (r *ChannelRepo) ListForGuilds(ctx context.Context, guildIDs []string) ([]domain.AIChannel, error) {
	out := []domain.AIChannel{}
	if len(guildIDs) == 0 {
		return out, nil
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT channel_id, guild_id, added_by, added_at
  FROM ai_channels
 WHERE guild_id = ANY($1)
 ORDER BY added_at
`, pq.Array(guildIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var ch domain.AIChannel
		if err := rows.Scan(&ch.ChannelID, &ch.GuildID, &ch.AddedBy, &ch.AddedAt); err != nil {
			return nil, err
		}
		out = append(out, ch)
	}
	return out, rows.Err()
}

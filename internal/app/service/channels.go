package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/jose-valero/warabi-bot/internal/domain"
)

// AIChannels es el conjunto de canales con relay de IA. Sólo crece; no hay
// operación de baja. Con repo nil vive lo que vive el proceso.
type AIChannels struct {
	mu   sync.RWMutex
	ids  map[string]struct{}
	repo ChannelRepo
}

func NewAIChannels(repo ChannelRepo) *AIChannels {
	return &AIChannels{ids: map[string]struct{}{}, repo: repo}
}

// Add devuelve true si el canal no estaba. Con repo, persiste antes de publicar en memoria.
func (c *AIChannels) Add(ctx context.Context, ch domain.AIChannel) (bool, error) {
	if ch.ChannelID == "" {
		return false, fmt.Errorf("ai channel: empty channel id")
	}
	if c.repo != nil {
		if _, err := c.repo.Add(ctx, ch); err != nil {
			return false, fmt.Errorf("ai channel persist: %w", err)
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.ids[ch.ChannelID]; ok {
		return false, nil
	}
	c.ids[ch.ChannelID] = struct{}{}
	return true, nil
}

func (c *AIChannels) Has(channelID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.ids[channelID]
	return ok
}

func (c *AIChannels) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.ids)
}

// Restore recarga desde el repo los canales de los guilds indicados.
// Sin repo es un no-op.
func (c *AIChannels) Restore(ctx context.Context, guildIDs []string) (int, error) {
	if c.repo == nil || len(guildIDs) == 0 {
		return 0, nil
	}
	chans, err := c.repo.ListForGuilds(ctx, guildIDs)
	if err != nil {
		return 0, fmt.Errorf("ai channel restore: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, ch := range chans {
		if _, ok := c.ids[ch.ChannelID]; !ok {
			c.ids[ch.ChannelID] = struct{}{}
			n++
		}
	}
	return n, nil
}

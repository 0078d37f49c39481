package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/jose-valero/warabi-bot/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeGuilds struct {
	members  map[string]domain.Member
	guild    domain.Guild
	messages []string
	fail     error

	calls    []string
	timeoutD time.Duration
	deleted  []string
	fetchedN int
}

func (f *fakeGuilds) Member(_ context.Context, guildID, userID string) (domain.Member, error) {
	m, ok := f.members[userID]
	if !ok {
		return domain.Member{}, domain.ErrMemberNotFound
	}
	m.GuildID = guildID
	return m, nil
}

func (f *fakeGuilds) Guild(_ context.Context, guildID string) (domain.Guild, error) {
	if f.fail != nil {
		return domain.Guild{}, f.fail
	}
	g := f.guild
	g.ID = guildID
	return g, nil
}

func (f *fakeGuilds) Ban(_ context.Context, _, userID string) error {
	f.calls = append(f.calls, "ban:"+userID)
	return f.fail
}

func (f *fakeGuilds) Kick(_ context.Context, _, userID string) error {
	f.calls = append(f.calls, "kick:"+userID)
	return f.fail
}

func (f *fakeGuilds) Timeout(_ context.Context, _, userID string, d time.Duration) error {
	f.calls = append(f.calls, "timeout:"+userID)
	f.timeoutD = d
	return f.fail
}

func (f *fakeGuilds) RecentMessageIDs(_ context.Context, _ string, limit int) ([]string, error) {
	f.fetchedN = limit
	if limit < len(f.messages) {
		return f.messages[:limit], nil
	}
	return f.messages, nil
}

func (f *fakeGuilds) BulkDelete(_ context.Context, _ string, ids []string) error {
	f.deleted = append(f.deleted, ids...)
	return f.fail
}

type fakeAsker struct {
	mu        sync.Mutex
	questions []string
	answer    string
	err       error
}

func (f *fakeAsker) Ask(_ context.Context, q string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.questions = append(f.questions, q)
	return f.answer, f.err
}

type fakeIP struct {
	info domain.IPInfo
	err  error
}

func (f fakeIP) Lookup(context.Context, string) (domain.IPInfo, error) { return f.info, f.err }

type fakeQR struct{ err error }

func (f fakeQR) PNG(content string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("png:" + content), nil
}

type recordResponder struct {
	replies []domain.Reply
	err     error
}

func (r *recordResponder) Respond(_ context.Context, rep domain.Reply) error {
	r.replies = append(r.replies, rep)
	return r.err
}

type recordReplier struct{ replies []string }

func (r *recordReplier) Reply(_ context.Context, content string) error {
	r.replies = append(r.replies, content)
	return nil
}

type memRepo struct {
	rows map[string]domain.AIChannel
	err  error
}

func (m *memRepo) Add(_ context.Context, ch domain.AIChannel) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.rows[ch.ChannelID]; ok {
		return false, nil
	}
	m.rows[ch.ChannelID] = ch
	return true, nil
}

func (m *memRepo) ListForGuilds(_ context.Context, guildIDs []string) ([]domain.AIChannel, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.AIChannel
	for _, ch := range m.rows {
		for _, g := range guildIDs {
			if ch.GuildID == g {
				out = append(out, ch)
			}
		}
	}
	return out, nil
}

var errBoom = errors.New("boom")

func cmd(name CommandName, opts map[string]any) domain.Interaction {
	return domain.Interaction{
		Type:      domain.InteractionCommand,
		Command:   string(name),
		GuildID:   "g1",
		ChannelID: "c1",
		User:      domain.User{ID: "u-invoker", Tag: "invoker"},
		Options:   opts,
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/lmittmann/tint"

	"github.com/jose-valero/warabi-bot/internal/domain"
)

// Commands agrupa los handlers de los slash commands. Son stateless salvo
// chatset, que escribe en AIChannels.
type Commands struct {
	guilds   Guilds
	ip       IPLocator
	qr       QREncoder
	channels *AIChannels
	log      *slog.Logger
}

func NewCommands(guilds Guilds, ip IPLocator, qr QREncoder, channels *AIChannels, log *slog.Logger) *Commands {
	return &Commands{guilds: guilds, ip: ip, qr: qr, channels: channels, log: log.With("component", "commands")}
}

// Entries empareja cada descriptor del Catalog con su handler.
func (c *Commands) Entries() []Entry {
	handlers := map[CommandName]HandlerFunc{
		CmdPing:       c.ping,
		CmdBan:        c.moderate(c.guilds.Ban, "🔨 %s をBANしました。"),
		CmdKick:       c.moderate(c.guilds.Kick, "👢 %s をキックしました。"),
		CmdTimeout:    c.timeout,
		CmdClear:      c.clear,
		CmdServerInfo: c.serverInfo,
		CmdUserInfo:   c.userInfo,
		CmdIPInfo:     c.ipInfo,
		CmdQRCode:     c.qrCode,
		CmdChatSet:    c.chatSet,
	}
	out := make([]Entry, 0, len(AllCommands))
	for _, name := range AllCommands {
		out = append(out, Entry{Descriptor: Catalog[name], Handler: handlers[name]})
	}
	return out
}

func (c *Commands) ping(context.Context, domain.Interaction) (domain.Reply, error) {
	return domain.Reply{Content: TextPong}, nil
}

// target resuelve el miembro de la opción "target" desde la caché.
// found=false significa que hay que contestar "no encontrado".
func (c *Commands) target(ctx context.Context, in domain.Interaction) (m domain.Member, found bool, err error) {
	u, ok := in.ResolvedUser("target")
	if !ok {
		return domain.Member{}, false, fmt.Errorf("%s: missing target option", in.Command)
	}
	m, err = c.guilds.Member(ctx, in.GuildID, u.ID)
	if errors.Is(err, domain.ErrMemberNotFound) {
		return domain.Member{}, false, nil
	}
	if err != nil {
		return domain.Member{}, false, err
	}
	return m, true, nil
}

func (c *Commands) moderate(action func(ctx context.Context, guildID, userID string) error, done string) HandlerFunc {
	return func(ctx context.Context, in domain.Interaction) (domain.Reply, error) {
		m, found, err := c.target(ctx, in)
		if err != nil {
			return domain.Reply{}, err
		}
		if !found {
			return domain.Reply{Content: TextMemberNotFound}, nil
		}
		if err := action(ctx, in.GuildID, m.User.ID); err != nil {
			return domain.Reply{}, fmt.Errorf("%s %s: %w", in.Command, m.User.ID, err)
		}
		return domain.Reply{Content: fmt.Sprintf(done, m.User.Tag)}, nil
	}
}

// timeout no acota los segundos salvo el desborde; el rango lo valida Discord.
func (c *Commands) timeout(ctx context.Context, in domain.Interaction) (domain.Reply, error) {
	secs, ok := in.Int("seconds")
	if !ok {
		return domain.Reply{}, errors.New("timeout: missing seconds option")
	}
	// fuera de este rango la multiplicación desborda int64
	if secs < 0 || secs > math.MaxInt64/int64(time.Second) {
		return domain.Reply{}, fmt.Errorf("timeout: %d seconds out of range", secs)
	}
	m, found, err := c.target(ctx, in)
	if err != nil {
		return domain.Reply{}, err
	}
	if !found {
		return domain.Reply{Content: TextMemberNotFound}, nil
	}
	d := time.Duration(secs*1000) * time.Millisecond
	if err := c.guilds.Timeout(ctx, in.GuildID, m.User.ID, d); err != nil {
		return domain.Reply{}, fmt.Errorf("timeout %s: %w", m.User.ID, err)
	}
	return domain.Reply{Content: fmt.Sprintf("⏱️ %s を%d秒間タイムアウトしました。", m.User.Tag, secs)}, nil
}

// clear no acota amount; los límites los pone Discord.
func (c *Commands) clear(ctx context.Context, in domain.Interaction) (domain.Reply, error) {
	amount, ok := in.Int("amount")
	if !ok {
		return domain.Reply{}, errors.New("clear: missing amount option")
	}
	ids, err := c.guilds.RecentMessageIDs(ctx, in.ChannelID, int(amount))
	if err != nil {
		return domain.Reply{}, fmt.Errorf("clear fetch: %w", err)
	}
	if err := c.guilds.BulkDelete(ctx, in.ChannelID, ids); err != nil {
		return domain.Reply{}, fmt.Errorf("clear delete: %w", err)
	}
	return domain.Reply{Content: fmt.Sprintf("🧹 %d件のメッセージを削除しました。", len(ids)), Ephemeral: true}, nil
}

func (c *Commands) serverInfo(ctx context.Context, in domain.Interaction) (domain.Reply, error) {
	g, err := c.guilds.Guild(ctx, in.GuildID)
	if err != nil {
		return domain.Reply{}, fmt.Errorf("serverinfo: %w", err)
	}
	return domain.Reply{Content: fmt.Sprintf("**サーバー名:** %s\n**メンバー数:** %d", g.Name, g.MemberCount)}, nil
}

func (c *Commands) userInfo(_ context.Context, in domain.Interaction) (domain.Reply, error) {
	u, ok := in.ResolvedUser("target")
	if !ok {
		return domain.Reply{}, errors.New("userinfo: missing target option")
	}
	return domain.Reply{Content: fmt.Sprintf("**ユーザー:** %s\n**ID:** %s", u.Tag, u.ID)}, nil
}

func (c *Commands) ipInfo(ctx context.Context, in domain.Interaction) (domain.Reply, error) {
	ip, _ := in.String("ip")
	info, err := c.ip.Lookup(ctx, ip)
	if err != nil {
		c.log.ErrorContext(ctx, "ip lookup failed", "ip", ip, tint.Err(err))
		return domain.Reply{Content: TextIPFailure}, nil
	}
	return domain.Reply{Content: fmt.Sprintf(
		"🌐 **IP:** %s\n**国:** %s\n**都市:** %s\n**ISP:** %s",
		info.Query, info.Country, info.City, info.ISP,
	)}, nil
}

func (c *Commands) qrCode(ctx context.Context, in domain.Interaction) (domain.Reply, error) {
	u, _ := in.String("url")
	png, err := c.qr.PNG(u)
	if err != nil {
		c.log.ErrorContext(ctx, "qr encode failed", "url", u, tint.Err(err))
		return domain.Reply{Content: TextQRFailure}, nil
	}
	return domain.Reply{
		Content: "📱 QRコードを生成しました: " + u,
		Files:   []domain.File{{Name: "qrcode.png", ContentType: "image/png", Data: png}},
	}, nil
}

func (c *Commands) chatSet(ctx context.Context, in domain.Interaction) (domain.Reply, error) {
	ch, ok := in.String("channel")
	if !ok || ch == "" {
		return domain.Reply{}, errors.New("chatset: missing channel option")
	}
	added, err := c.channels.Add(ctx, domain.AIChannel{
		ChannelID: ch,
		GuildID:   in.GuildID,
		AddedBy:   in.User.ID,
		AddedAt:   time.Now(),
	})
	if err != nil {
		return domain.Reply{}, err
	}
	if !added {
		return domain.Reply{Content: fmt.Sprintf("ℹ️ <#%s> はすでにAIチャットチャンネルです。", ch)}, nil
	}
	return domain.Reply{Content: fmt.Sprintf("✅ <#%s> をAIチャットチャンネルに設定しました。", ch)}, nil
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jose-valero/warabi-bot/internal/adapters/discord"
	"github.com/jose-valero/warabi-bot/internal/adapters/gemimi"
	"github.com/jose-valero/warabi-bot/internal/adapters/httpliveness"
	"github.com/jose-valero/warabi-bot/internal/adapters/ipapi"
	"github.com/jose-valero/warabi-bot/internal/adapters/openai"
	"github.com/jose-valero/warabi-bot/internal/adapters/qrcode"
	"github.com/jose-valero/warabi-bot/internal/app/service"
	"github.com/jose-valero/warabi-bot/internal/infra/config"
	"github.com/jose-valero/warabi-bot/internal/infra/logging"
	"github.com/jose-valero/warabi-bot/internal/infra/storage"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Conecta al gateway y atiende eventos hasta SIGINT/SIGTERM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBot(cmd.Context())
		},
	}
}

func newAsker(cfg config.Config) service.Asker {
	hc := &http.Client{Timeout: cfg.AITimeout}
	if cfg.AIProvider == "openai" {
		return openai.New(cfg.AIKey, cfg.OpenAIURL, cfg.OpenAIModel, openai.WithHTTPClient(hc))
	}
	return gemimi.New(cfg.AIKey, gemimi.WithEndpoint(cfg.AIEndpoint), gemimi.WithHTTPClient(hc))
}

func runBot(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	discordgo.Logger = logging.DiscordgoLogger(log)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// DB opcional: sin DATABASE_URL el set de canales vive en memoria
	var repo service.ChannelRepo
	if cfg.DatabaseURL != "" {
		db, err := storage.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		applied, err := storage.Migrate(ctx, db, log)
		if err != nil {
			return err
		}
		log.Info("✅ DB lista y migrada", "applied", applied)
		repo = storage.NewChannelRepo(db)
	}
	channels := service.NewAIChannels(repo)

	s, err := discordgo.New(cfg.BotAuth())
	if err != nil {
		return fmt.Errorf("discord session: %w", err)
	}
	s.LogLevel = logging.SessionLevel(cfg.LogLevel)
	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent |
		discordgo.IntentsGuildMembers

	cmds := service.NewCommands(
		discord.NewGuilds(s, s.State),
		ipapi.New(ipapi.WithURLTemplate(cfg.IPLookupURL)),
		qrcode.New(),
		channels,
		log,
	)
	reg, err := service.BuildRegistry(cmds.Entries())
	if err != nil {
		return fmt.Errorf("registry: %w", err)
	}

	r := discord.NewRouter(
		s,
		cfg.DiscordGuild,
		reg.Descriptors(),
		service.NewDispatcher(reg, log),
		service.NewWatcher(channels, newAsker(cfg), log),
		channels,
		log,
	)
	r.Handlers()

	if err := s.Open(); err != nil {
		return fmt.Errorf("discord open: %w", err)
	}
	defer s.Close()

	g, gctx := errgroup.WithContext(ctx)
	if cfg.HTTPAddr != "" {
		web := httpliveness.New(log)
		g.Go(func() error { return web.Start(gctx, cfg.HTTPAddr) })
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Info("apagando", "cause", context.Cause(gctx))
		return nil
	})
	return g.Wait()
}


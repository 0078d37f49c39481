package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/bwmarrin/discordgo"
	"github.com/lmittmann/tint"

	"github.com/jose-valero/warabi-bot/internal/adapters/discord"
	"github.com/jose-valero/warabi-bot/internal/app/service"
	"github.com/jose-valero/warabi-bot/internal/infra/config"
	"github.com/jose-valero/warabi-bot/internal/infra/logging"
)

type result struct {
	Registered int    `json:"registered"`
	Guild      string `json:"guild,omitempty"`
}

// handler no lee .env: en Lambda todo viene del entorno.
func handler(ctx context.Context) (result, error) {
	cfg, err := config.RegistrationFromEnv()
	if err != nil {
		return result{}, err
	}
	log := logging.New(os.Stdout, cfg.LogLevel, "json")

	s, err := discordgo.New(cfg.BotAuth())
	if err != nil {
		return result{}, fmt.Errorf("discord session: %w", err)
	}
	n, err := discord.RegisterCatalog(ctx, s, cfg.AppID, cfg.DiscordGuild, service.CatalogDescriptors())
	if err != nil {
		log.Error("register failed", tint.Err(err))
		return result{}, err
	}
	log.Info("catalog registered", "count", n, "guild", cfg.DiscordGuild)
	return result{Registered: n, Guild: cfg.DiscordGuild}, nil
}

func main() { lambda.Start(handler) }

package main

import (
	"fmt"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/jose-valero/warabi-bot/internal/adapters/discord"
	"github.com/jose-valero/warabi-bot/internal/app/service"
	"github.com/jose-valero/warabi-bot/internal/infra/config"
	"github.com/jose-valero/warabi-bot/internal/infra/logging"
)

func newRegisterCmd() *cobra.Command {
	var appID string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Sube el catálogo de comandos por REST y termina",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadRegistration()
			if err != nil {
				return err
			}
			if appID != "" {
				cfg.AppID = appID
			}
			log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

			s, err := discordgo.New(cfg.BotAuth())
			if err != nil {
				return fmt.Errorf("discord session: %w", err)
			}
			n, err := discord.RegisterCatalog(cmd.Context(), s, cfg.AppID, cfg.DiscordGuild, service.CatalogDescriptors())
			if err != nil {
				log.Error("register failed", tint.Err(err))
				return err
			}
			log.Info("✅ comandos registrados", "count", n, "guild", cfg.DiscordGuild)
			return nil
		},
	}
	cmd.Flags().StringVar(&appID, "app-id", "", "application ID (pisa DISCORD_APP_ID)")
	return cmd
}

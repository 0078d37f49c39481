package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DiscordToken string `env:"DISCORD_BOT_TOKEN,required,notEmpty"`
	DiscordGuild string `env:"DISCORD_GUILD_ID"` // vacío = comandos globales

	AIKey       string        `env:"GEMIMI_API_KEY,required,notEmpty"`
	AIEndpoint  string        `env:"GEMIMI_API_URL" envDefault:"https://gemimi-api.example.com/ask"`
	AIProvider  string        `env:"AI_PROVIDER" envDefault:"gemimi"` // gemimi | openai
	AITimeout   time.Duration `env:"AI_TIMEOUT" envDefault:"60s"`
	OpenAIModel string        `env:"OPENAI_MODEL"`
	OpenAIURL   string        `env:"OPENAI_BASE_URL"`

	IPLookupURL string `env:"IP_LOOKUP_URL" envDefault:"http://ip-api.com/json/%s"`

	HTTPAddr    string `env:"HTTP_ADDR"`    // liveness; vacío = apagado
	DatabaseURL string `env:"DATABASE_URL"` // opcional, persiste los canales de IA

	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFormat string     `env:"LOG_FORMAT" envDefault:"text"`
}

// Load lee .env si existe y después el entorno.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	switch cfg.AIProvider {
	case "gemimi", "openai":
	default:
		return Config{}, fmt.Errorf("config: unknown AI_PROVIDER %q", cfg.AIProvider)
	}
	return cfg, nil
}

// BotAuth devuelve el token con el prefijo "Bot ".
func (c Config) BotAuth() string { return botAuth(c.DiscordToken) }

func botAuth(token string) string {
	auth := strings.TrimSpace(token)
	if !strings.HasPrefix(strings.ToLower(auth), "bot ") {
		auth = "Bot " + auth
	}
	return auth
}

// Registration es lo único que necesita subir el catálogo: sin claves de IA.
type Registration struct {
	DiscordToken string `env:"DISCORD_BOT_TOKEN,required,notEmpty"`
	DiscordGuild string `env:"DISCORD_GUILD_ID"`
	AppID        string `env:"DISCORD_APP_ID"` // vacío = el usuario del bot

	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFormat string     `env:"LOG_FORMAT" envDefault:"text"`
}

func LoadRegistration() (Registration, error) {
	_ = godotenv.Load()
	return RegistrationFromEnv()
}

func RegistrationFromEnv() (Registration, error) {
	r, err := env.ParseAs[Registration]()
	if err != nil {
		return Registration{}, fmt.Errorf("config: %w", err)
	}
	return r, nil
}

func (r Registration) BotAuth() string { return botAuth(r.DiscordToken) }

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	ErrMissingDatabaseURL        = errors.New("DATABASE_URL não configurada")
	ErrMissingDatabaseCredential = errors.New("DATABASE_USER/DATABASE_PASSWORD não configurados")
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Webhook          Webhook          `mapstructure:",squash"`
	FreshnessMonitor FreshnessMonitor `mapstructure:",squash"`
}

type App struct {
	LogLevel string         `mapstructure:"log_level"`
	Timezone string         `mapstructure:"app_timezone"`
	Location *time.Location `mapstructure:"-"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN         string `mapstructure:"-"`
	Driver      string `mapstructure:"database_driver"`
	Password    string `mapstructure:"database_password"`
	URL         string `mapstructure:"database_url"`
	User        string `mapstructure:"database_user"`
	AutoMigrate bool   `mapstructure:"database_auto_migrate"`
}

type Webhook struct {
	APIKey string `mapstructure:"webhook_api_key"`
}

type FreshnessMonitor struct {
	CronSchedule   string `mapstructure:"freshness_monitor_cron"`
	StaleAfterDays int    `mapstructure:"freshness_monitor_stale_after_days"`
	Enabled        bool   `mapstructure:"freshness_monitor_enabled"`
}

// SetDefaults não define credenciais do banco: sem elas a aplicação não sobe
func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8000")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_TIMEZONE", "America/Sao_Paulo")

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DATABASE_USER", "")
	v.SetDefault("DATABASE_PASSWORD", "")
	v.SetDefault("DATABASE_AUTO_MIGRATE", true)

	v.SetDefault("WEBHOOK_API_KEY", "")

	v.SetDefault("FRESHNESS_MONITOR_CRON", "0 * * * *")   // A cada hora cheia
	v.SetDefault("FRESHNESS_MONITOR_STALE_AFTER_DAYS", 1) // Sem dados de ontem para cá
	v.SetDefault("FRESHNESS_MONITOR_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	return Load(v)
}

// Load decodifica e valida a configuração a partir de uma instância do viper
func Load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	// AutomaticEnv só resolve chaves conhecidas pelo Unmarshal se elas tiverem default
	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.App.Location = loadLocation(config.App.Timezone)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if strings.TrimSpace(config.Webhook.APIKey) == "" {
		logrus.Warn("WEBHOOK_API_KEY não configurada: todas as ingestões serão rejeitadas com 401")
	}

	return config, nil
}

// Validate falha quando o acesso ao banco não está configurado
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.URL) == "" {
		return ErrMissingDatabaseURL
	}

	if strings.TrimSpace(c.Database.User) == "" || c.Database.Password == "" {
		return ErrMissingDatabaseCredential
	}

	return nil
}

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		logrus.Warnf("Fuso horário inválido: %s, usando UTC", name)
		return time.UTC
	}
	return loc
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}

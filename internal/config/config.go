package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Meta              Meta              `mapstructure:",squash"`
	OpenAI            OpenAI            `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	DailySnapshotSync DailySnapshotSync `mapstructure:",squash"`
	Diagnostics       Diagnostics       `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"meta_url"`
	Version     string `mapstructure:"meta_version"`
	AccessToken string `mapstructure:"meta_access_token"`
	AdAccountID string `mapstructure:"meta_ad_account_id"`
	PixelID     string `mapstructure:"meta_pixel_id"`
}

type OpenAI struct {
	APIKey         string  `mapstructure:"openai_api_key"`
	Model          string  `mapstructure:"openai_model"`
	URL            string  `mapstructure:"openai_url"`
	Temperature    float64 `mapstructure:"openai_temperature"`
	TimeoutSeconds int     `mapstructure:"openai_timeout_seconds"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type DailySnapshotSync struct {
	CronSchedule string `mapstructure:"daily_snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"daily_snapshot_sync_enabled"`
}

// Diagnostics concentra os limiares e bases de confiança do motor de
// diagnósticos. São constantes herdadas sem derivação estatística
// documentada, então ficam configuráveis em vez de fixas no código.
type Diagnostics struct {
	WindowDays int `mapstructure:"diagnostics_window_days"`

	FatigueHighPct   float64 `mapstructure:"diagnostics_fatigue_high_pct"`
	FatigueMediumPct float64 `mapstructure:"diagnostics_fatigue_medium_pct"`

	SaturationHighPct   float64 `mapstructure:"diagnostics_saturation_high_pct"`
	SaturationMediumPct float64 `mapstructure:"diagnostics_saturation_medium_pct"`

	ConcentrationHighRatio   float64 `mapstructure:"diagnostics_concentration_high_ratio"`
	ConcentrationMediumRatio float64 `mapstructure:"diagnostics_concentration_medium_ratio"`
	ConcentrationHighHHI     float64 `mapstructure:"diagnostics_concentration_high_hhi"`
	ConcentrationMediumHHI   float64 `mapstructure:"diagnostics_concentration_medium_hhi"`

	AuctionHighChangePct       float64 `mapstructure:"diagnostics_auction_high_change_pct"`
	AuctionMediumChangePct     float64 `mapstructure:"diagnostics_auction_medium_change_pct"`
	AuctionHighVolatilityPct   float64 `mapstructure:"diagnostics_auction_high_volatility_pct"`
	AuctionMediumVolatilityPct float64 `mapstructure:"diagnostics_auction_medium_volatility_pct"`

	TrackingHighDecline   float64 `mapstructure:"diagnostics_tracking_high_decline"`
	TrackingMediumDecline float64 `mapstructure:"diagnostics_tracking_medium_decline"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adanalyst")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("META_AD_ACCOUNT_ID", "")
	viper.SetDefault("META_PIXEL_ID", "")

	viper.SetDefault("OPENAI_URL", "https://api.openai.com/v1/chat/completions")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4-turbo-preview")
	viper.SetDefault("OPENAI_TEMPERATURE", 0.3)
	viper.SetDefault("OPENAI_TIMEOUT_SECONDS", 120)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults para o job diário de coleta e análise
	viper.SetDefault("DAILY_SNAPSHOT_SYNC_CRON", "0 1 * * *") // Todos os dias à 1h da manhã
	viper.SetDefault("DAILY_SNAPSHOT_SYNC_ENABLED", false)

	// Limiares do motor de diagnósticos (valores herdados do sistema original)
	viper.SetDefault("DIAGNOSTICS_WINDOW_DAYS", 7)
	viper.SetDefault("DIAGNOSTICS_FATIGUE_HIGH_PCT", 30.0)
	viper.SetDefault("DIAGNOSTICS_FATIGUE_MEDIUM_PCT", 15.0)
	viper.SetDefault("DIAGNOSTICS_SATURATION_HIGH_PCT", -20.0)
	viper.SetDefault("DIAGNOSTICS_SATURATION_MEDIUM_PCT", -10.0)
	viper.SetDefault("DIAGNOSTICS_CONCENTRATION_HIGH_RATIO", 0.7)
	viper.SetDefault("DIAGNOSTICS_CONCENTRATION_MEDIUM_RATIO", 0.5)
	viper.SetDefault("DIAGNOSTICS_CONCENTRATION_HIGH_HHI", 0.5)
	viper.SetDefault("DIAGNOSTICS_CONCENTRATION_MEDIUM_HHI", 0.3)
	viper.SetDefault("DIAGNOSTICS_AUCTION_HIGH_CHANGE_PCT", 25.0)
	viper.SetDefault("DIAGNOSTICS_AUCTION_MEDIUM_CHANGE_PCT", 15.0)
	viper.SetDefault("DIAGNOSTICS_AUCTION_HIGH_VOLATILITY_PCT", 20.0)
	viper.SetDefault("DIAGNOSTICS_AUCTION_MEDIUM_VOLATILITY_PCT", 15.0)
	viper.SetDefault("DIAGNOSTICS_TRACKING_HIGH_DECLINE", 0.15)
	viper.SetDefault("DIAGNOSTICS_TRACKING_MEDIUM_DECLINE", 0.08)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

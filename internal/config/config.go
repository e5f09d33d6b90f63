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
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	LegacyStore     LegacyStore     `mapstructure:",squash"`
	SalesSync       SalesSync       `mapstructure:",squash"`
	InstrumentsSync InstrumentsSync `mapstructure:",squash"`
	Certificate     Certificate     `mapstructure:",squash"`
	SecretKey       string          `mapstructure:"secret_key"`
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

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// LegacyStore aponta para a API do sistema antigo da loja, que ainda é a
// origem dos feeds de vendas e de instrumentos
type LegacyStore struct {
	URL         string `mapstructure:"legacy_store_url"`
	AccessToken string `mapstructure:"legacy_store_access_token"`
}

type SalesSync struct {
	CronSchedule        string `mapstructure:"sales_sync_cron"`
	LookbackDays        int    `mapstructure:"sales_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"sales_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"sales_sync_enabled"`
}

type InstrumentsSync struct {
	CronSchedule string `mapstructure:"instruments_sync_cron"`
	Enabled      bool   `mapstructure:"instruments_sync_enabled"`
}

// Certificate carrega a identidade impressa nos certificados de autenticidade
type Certificate struct {
	IssuerName string `mapstructure:"certificate_issuer_name"`
	IssuerCity string `mapstructure:"certificate_issuer_city"`
	Appraiser  string `mapstructure:"certificate_appraiser"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/atelier")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("LEGACY_STORE_URL", "http://localhost:4000/api")
	viper.SetDefault("LEGACY_STORE_ACCESS_TOKEN", "your_access_token")

	// Defaults para sincronização com o sistema antigo
	viper.SetDefault("SALES_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("SALES_SYNC_LOOKBACK_DAYS", 7)         // 7 dias para buscar vendas
	viper.SetDefault("SALES_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("SALES_SYNC_ENABLED", false)

	viper.SetDefault("INSTRUMENTS_SYNC_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("INSTRUMENTS_SYNC_ENABLED", false)

	viper.SetDefault("CERTIFICATE_ISSUER_NAME", "Atelier de Instrumentos")
	viper.SetDefault("CERTIFICATE_ISSUER_CITY", "São Paulo")
	viper.SetDefault("CERTIFICATE_APPRAISER", "")

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
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
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

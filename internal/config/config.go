package config

import (
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

// Drivers de record store suportados
const (
	RecordStoreAirtable = "airtable"
	RecordStorePostgres = "postgres"
)

type Config struct {
	App                   App                   `mapstructure:",squash"`
	Server                Server                `mapstructure:",squash"`
	Database              Database              `mapstructure:",squash"`
	Airtable              Airtable              `mapstructure:",squash"`
	RecordStore           RecordStore           `mapstructure:",squash"`
	Directory             Directory             `mapstructure:",squash"`
	Analytics             Analytics             `mapstructure:",squash"`
	Auth                  Auth                  `mapstructure:",squash"`
	PlatformDirectorySync PlatformDirectorySync `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"database_conn_max_idle_time"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Airtable struct {
	URL                string        `mapstructure:"airtable_url"`
	APIKey             string        `mapstructure:"airtable_api_key"`
	BaseID             string        `mapstructure:"airtable_base_id"`
	SalesTableID       string        `mapstructure:"airtable_sales_table_id"`
	PlatformTableID    string        `mapstructure:"airtable_platform_table_id"`
	MaxSalesRecords    int           `mapstructure:"airtable_max_sales_records"`
	MaxPlatformRecords int           `mapstructure:"airtable_max_platform_records"`
	Timeout            time.Duration `mapstructure:"airtable_timeout"`
}

type RecordStore struct {
	Driver string `mapstructure:"record_store_driver"`
}

// Directory configura as tabelas de resolução. PlatformMapping usa o formato
// "recID:Nome" separado por vírgulas.
type Directory struct {
	PlatformMapping []string `mapstructure:"platform_mapping"`
	AgeGroups       []string `mapstructure:"age_groups"`
	Genders         []string `mapstructure:"genders"`
}

type Analytics struct {
	RequestSnapshot  bool `mapstructure:"analytics_request_snapshot"`
	OverviewWorkers  int  `mapstructure:"analytics_overview_workers"`
	DefaultPageLimit int  `mapstructure:"analytics_default_page_limit"`
	MaxPageLimit     int  `mapstructure:"analytics_max_page_limit"`
	TopN             int  `mapstructure:"analytics_top_n"`
}

type App struct {
	LogLevel      string `mapstructure:"log_level"`
	LogFile       string `mapstructure:"log_file"`
	LogMaxSizeMB  int    `mapstructure:"log_max_size_mb"`
	LogMaxBackups int    `mapstructure:"log_max_backups"`
	LogMaxAgeDays int    `mapstructure:"log_max_age_days"`
}

type Auth struct {
	Enabled      bool          `mapstructure:"auth_enabled"`
	Secret       string        `mapstructure:"auth_secret"`
	Email        string        `mapstructure:"auth_email"`
	PasswordHash string        `mapstructure:"auth_password_hash"`
	TokenTTL     time.Duration `mapstructure:"auth_token_ttl"`
}

type PlatformDirectorySync struct {
	CronSchedule string `mapstructure:"platform_directory_sync_cron"`
	Enabled      bool   `mapstructure:"platform_directory_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/furusato?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_IDLE_TIME", "5m")
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("AIRTABLE_URL", "https://api.airtable.com/v0")
	viper.SetDefault("AIRTABLE_API_KEY", "")
	viper.SetDefault("AIRTABLE_BASE_ID", "appNdJ75OD4xUiHEq")
	viper.SetDefault("AIRTABLE_SALES_TABLE_ID", "tblthgeljeKsEteau")
	viper.SetDefault("AIRTABLE_PLATFORM_TABLE_ID", "tblRzKxxlatgPFJoE")
	viper.SetDefault("AIRTABLE_MAX_SALES_RECORDS", 1000)  // Limite de projeto, não paginamos além disso
	viper.SetDefault("AIRTABLE_MAX_PLATFORM_RECORDS", 100) // Tabela pequena
	viper.SetDefault("AIRTABLE_TIMEOUT", "30s")

	viper.SetDefault("RECORD_STORE_DRIVER", RecordStoreAirtable)

	viper.SetDefault("PLATFORM_MAPPING", "rec5y6uYA61ufVnPY:ふるさとチョイス,recE2xXek8GyjVaQk:さとふる,recdIdd4rOYpkcaSB:楽天ふるさと納税")
	viper.SetDefault("AGE_GROUPS", "20代,30代,40代,50代,60代,70代以上")
	viper.SetDefault("GENDERS", "男性,女性")

	viper.SetDefault("ANALYTICS_REQUEST_SNAPSHOT", true) // Reaproveita a leitura dentro da mesma requisição
	viper.SetDefault("ANALYTICS_OVERVIEW_WORKERS", 4)
	viper.SetDefault("ANALYTICS_DEFAULT_PAGE_LIMIT", 20)
	viper.SetDefault("ANALYTICS_MAX_PAGE_LIMIT", 100)
	viper.SetDefault("ANALYTICS_TOP_N", 10) // Rankings de produtos e províncias

	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_EMAIL", "")
	viper.SetDefault("AUTH_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("PLATFORM_DIRECTORY_SYNC_CRON", "0 * * * *") // A cada hora
	viper.SetDefault("PLATFORM_DIRECTORY_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("LOG_FILE", "")
	viper.SetDefault("LOG_MAX_SIZE_MB", 50)
	viper.SetDefault("LOG_MAX_BACKUPS", 5)
	viper.SetDefault("LOG_MAX_AGE_DAYS", 14)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	if err := Decode(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Decode aplica os valores do viper na struct e completa os campos derivados
func Decode(config *Config) error {
	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	config.RecordStore.Driver = strings.ToLower(strings.TrimSpace(config.RecordStore.Driver))
	if config.RecordStore.Driver != RecordStoreAirtable && config.RecordStore.Driver != RecordStorePostgres {
		return fmt.Errorf("config: record store driver inválido: %q", config.RecordStore.Driver)
	}

	if config.Auth.Enabled && (config.Auth.Email == "" || config.Auth.PasswordHash == "") {
		return fmt.Errorf("config: AUTH_EMAIL e AUTH_PASSWORD_HASH são obrigatórios com autenticação habilitada")
	}

	return nil
}

// PlatformPairs converte PLATFORM_MAPPING ("id:nome,...") em um mapa id -> nome.
// Itens sem ':' ou com partes vazias são ignorados.
func (d Directory) PlatformPairs() map[string]string {
	pairs := make(map[string]string, len(d.PlatformMapping))
	for _, item := range d.PlatformMapping {
		id, name, found := strings.Cut(strings.TrimSpace(item), ":")
		id = strings.TrimSpace(id)
		name = strings.TrimSpace(name)
		if !found || id == "" || name == "" {
			logrus.WithField("item", item).Warn("Mapeamento de plataforma ignorado")
			continue
		}
		pairs[id] = name
	}
	return pairs
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
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Log     LogConfig
	DB      DBConfig
	JWT     JWTConfig
	Auth    AuthConfig
	HTTP    HTTPConfig
	Swagger SwaggerConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel del logger estructurado.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	AutoMigrate bool
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AuthConfig parámetros del hash de contraseñas.
type AuthConfig struct {
	BcryptCost int
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host     string
	Port     int
	BasePath string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SwaggerConfig controla la UI de documentación en /docs.
type SwaggerConfig struct {
	Enabled  bool
	FilePath string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. JWT_SECRET es obligatorio.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "claims-api"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "claims"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    getInt(v, "DB_MAX_CONNS", 25),
			MinConns:    getInt(v, "DB_MIN_CONNS", 2),
			AutoMigrate: getBool(v, "DB_AUTO_MIGRATE", true),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 24*60),
			Issuer:     getString(v, "JWT_ISSUER", "claims-api"),
		},
		Auth: AuthConfig{
			BcryptCost: getInt(v, "BCRYPT_COST", 10),
		},
		HTTP: HTTPConfig{
			Host:     getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:     getInt(v, "HTTP_PORT", 4000),
			BasePath: getString(v, "HTTP_BASE_PATH", "/api"),
		},
		Swagger: SwaggerConfig{
			Enabled:  getBool(v, "SWAGGER_ENABLED", true),
			FilePath: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET es obligatorio")
	}
	if cfg.JWT.Expiration <= 0 {
		return nil, fmt.Errorf("config: JWT_EXPIRATION_MINUTES debe ser positivo, recibido %d", cfg.JWT.Expiration)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return n
	default:
		return v.GetInt(key)
	}
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}

package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la consola (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	JWT     JWTConfig
	Session SessionConfig
	DB      DBConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env            string // development, staging, production
	Name           string
	LogLevel       string
	CurrencyLocale string // etiqueta BCP 47 usada para mostrar importes (es-ES)
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig ubicación del backend REST de MemberFlow.
type BackendConfig struct {
	BaseURL string // incluye el prefijo /api/v1
	Timeout time.Duration
}

// JWTConfig verificación opcional del token emitido por el backend.
// Con Secret vacío el token solo se decodifica (sin verificar firma).
type JWTConfig struct {
	Secret string
	Issuer string
}

// SessionConfig almacenamiento de sesiones de la consola.
type SessionConfig struct {
	Driver       string // sqlite | postgres
	SQLitePath   string
	TTL          time.Duration
	CookieName   string
	CookieSecure bool
	JanitorEvery time.Duration
}

// DBConfig configuración de PostgreSQL (solo con Session.Driver = postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
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

// Load lee la configuración desde variables de entorno, .env y opcionalmente config.env.
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_BASE_URL, SESSION_DRIVER, etc.
func Load() (*Config, error) {
	// .env no es obligatorio; godotenv no sobrescribe variables ya definidas.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:            getString(v, "APP_ENV", "development"),
			Name:           getString(v, "APP_NAME", "memberflow-console"),
			LogLevel:       getString(v, "LOG_LEVEL", "info"),
			CurrencyLocale: getString(v, "CURRENCY_LOCALE", "es-ES"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Backend: BackendConfig{
			BaseURL: strings.TrimRight(getString(v, "BACKEND_BASE_URL", "http://localhost:8080/api/v1"), "/"),
			Timeout: time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
			Issuer: getString(v, "JWT_ISSUER", ""),
		},
		Session: SessionConfig{
			Driver:       strings.ToLower(getString(v, "SESSION_DRIVER", "sqlite")),
			SQLitePath:   getString(v, "SESSION_SQLITE_PATH", "memberflow_console.db"),
			TTL:          time.Duration(getInt(v, "SESSION_TTL_MINUTES", 600)) * time.Minute,
			CookieName:   getString(v, "SESSION_COOKIE_NAME", "mf_session"),
			CookieSecure: getBool(v, "SESSION_COOKIE_SECURE", false),
			JanitorEvery: time.Duration(getInt(v, "SESSION_JANITOR_MINUTES", 15)) * time.Minute,
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "memberflow_console"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: BACKEND_BASE_URL inválida: %q", c.Backend.BaseURL)
	}
	switch c.Session.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("config: SESSION_DRIVER desconocido: %q", c.Session.Driver)
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("config: BACKEND_TIMEOUT_SECONDS debe ser positivo")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("config: SESSION_TTL_MINUTES debe ser positivo")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
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
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}

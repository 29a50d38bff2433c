package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo). Se construye una vez en main y se inyecta por
// constructor: ningún paquete lee configuración global.
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Store   StoreConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Options OptionsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
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

// StoreConfig selección del backend de persistencia.
type StoreConfig struct {
	Driver  string // "blob" (archivos JSON por colección) o "postgres"
	DataDir string // directorio del blob store cuando Driver == "blob"
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

// RedisConfig caché de vistas. Addr vacío desactiva la caché (modo Noop).
type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	TTLSeconds int
}

// Enabled indica si hay un Redis configurado.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// OptionsConfig catálogos del tablero: equipos, categorías y ubicaciones
// válidas. El primer equipo de la lista es el default para valores desconocidos.
type OptionsConfig struct {
	Teams           []string
	Categories      []string
	Locations       []string
	DefaultCurrency string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, STORE_DRIVER, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "rocketry-hub"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Store: StoreConfig{
			Driver:  getString(v, "STORE_DRIVER", "blob"),
			DataDir: getString(v, "STORE_DATA_DIR", "./data"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "rocketry_hub"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:       getString(v, "REDIS_ADDR", ""),
			Password:   getString(v, "REDIS_PASSWORD", ""),
			DB:         getInt(v, "REDIS_DB", 0),
			TTLSeconds: getInt(v, "REDIS_TTL_SECONDS", 300),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "rocketry-hub"),
		},
		Options: OptionsConfig{
			Teams:           getStrings(v, "OPTIONS_TEAMS", []string{"Avionics", "Telemetry", "Parachute", "Recovery"}),
			Categories:      getStrings(v, "OPTIONS_CATEGORIES", []string{"electronics", "structural", "propulsion", "recovery", "consumables"}),
			Locations:       getStrings(v, "OPTIONS_LOCATIONS", []string{"lab", "hangar", "storage"}),
			DefaultCurrency: getString(v, "OPTIONS_DEFAULT_CURRENCY", "USD"),
		},
	}

	if cfg.Store.Driver != "blob" && cfg.Store.Driver != "postgres" {
		return nil, fmt.Errorf("config: STORE_DRIVER desconocido: %q", cfg.Store.Driver)
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
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

// getStrings lee una lista separada por comas ("Avionics,Telemetry,...").
func getStrings(v *viper.Viper, key string, def []string) []string {
	if !v.IsSet(key) {
		return def
	}
	parts := strings.Split(v.GetString(key), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

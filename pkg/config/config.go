package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	WMS  WMSConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env             string // development, staging, production
	Name            string
	LogLevel        string
	DebugEnvEnabled bool // expone GET /debug-env (contraseña enmascarada)
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

// WMSConfig conexión a la API REST del WMS y códigos fijos del esquema.
// La ausencia de BaseURL/User/Password no se valida al arrancar: se manifiesta
// como una llamada fallida o vacía al momento de la petición.
type WMSConfig struct {
	BaseURL  string
	User     string
	Password string
	Timeout  time.Duration

	CompanyCode      string
	ReplenZone       string
	ActivityShipped  string
	ActivityReceived string
	ActivityPutaway  string
}

// MaskedPassword devuelve "******" si hay contraseña configurada, o vacío.
func (c WMSConfig) MaskedPassword() string {
	if c.Password == "" {
		return ""
	}
	return "******"
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, WMS_BASE_URL, etc.
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
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v), nil
}

// fromViper construye Config a partir de una instancia de Viper ya poblada.
func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:             getString(v, "APP_ENV", "development"),
			Name:            getString(v, "APP_NAME", "wms-gateway"),
			LogLevel:        getString(v, "LOG_LEVEL", "info"),
			DebugEnvEnabled: getBool(v, "DEBUG_ENV_ENABLED", false),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 10000),
		},
		WMS: WMSConfig{
			BaseURL:          strings.TrimRight(getString(v, "WMS_BASE_URL", ""), "/"),
			User:             getString(v, "WMS_USER", ""),
			Password:         getString(v, "WMS_PASSWORD", ""),
			Timeout:          time.Duration(getInt(v, "WMS_TIMEOUT_SECONDS", 30)) * time.Second,
			CompanyCode:      getString(v, "WMS_COMPANY_CODE", ""),
			ReplenZone:       getString(v, "WMS_REPLEN_ZONE", "PFACE"),
			ActivityShipped:  getString(v, "WMS_ACTIVITY_SHIPPED", ""),
			ActivityReceived: getString(v, "WMS_ACTIVITY_RECEIVED", ""),
			ActivityPutaway:  getString(v, "WMS_ACTIVITY_PUTAWAY", ""),
		},
	}
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

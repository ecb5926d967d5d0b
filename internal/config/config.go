package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Database DatabaseConfig `toml:"database"`
	Session  SessionConfig  `toml:"session"`
	Admin    AdminConfig    `toml:"admin"`
	Uploads  UploadsConfig  `toml:"uploads"`

	App      AppConfig      `toml:"app"`
	Contact  ContactConfig  `toml:"contact"`
	Social   SocialConfig   `toml:"social"`
	SEO      SEOConfig      `toml:"seo"`
	Business BusinessConfig `toml:"business"`
	Images   ImagesConfig   `toml:"images"`
	Catalog  CatalogConfig  `toml:"catalog"`

	Mpesa  MpesaConfig  `toml:"mpesa"`
	Resend ResendConfig `toml:"resend"`
	SMTP   SMTPConfig   `toml:"smtp"`
}

type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	IdleTimeout     int      `toml:"idle_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	AllowedOrigins  []string `toml:"allowed_origins"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig параметры подключения к PostgreSQL
// Пустой host отключает хранение бронирований
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

type SessionConfig struct {
	Lifetime   int    `toml:"lifetime"` // в минутах
	CookieName string `toml:"cookie_name"`
	Secure     bool   `toml:"secure"`
}

type AdminConfig struct {
	Token string `toml:"token"`
}

type UploadsConfig struct {
	Dir         string `toml:"dir"`
	MaxFileSize int64  `toml:"max_file_size"` // в байтах
}

type AppConfig struct {
	Name        string `toml:"name"`
	URL         string `toml:"url"`
	Description string `toml:"description"`
}

type ContactConfig struct {
	Email string `toml:"email"`
	Phone string `toml:"phone"`
}

type SocialConfig struct {
	Instagram string `toml:"instagram"`
	Twitter   string `toml:"twitter"`
	LinkedIn  string `toml:"linkedin"`
	TikTok    string `toml:"tiktok"`
}

type SEOConfig struct {
	GoogleVerification string `toml:"google_verification"`
	SiteURL            string `toml:"site_url"`
	TwitterHandle      string `toml:"twitter_handle"`
}

type BusinessConfig struct {
	Name      string  `toml:"name"`
	Email     string  `toml:"email"`
	Phone     string  `toml:"phone"`
	Location  string  `toml:"location"`
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`
}

type ImagesConfig struct {
	NomadSuite      string `toml:"nomad_suite"`
	MinimalistSuite string `toml:"minimalist_suite"`
	WellnessSuite   string `toml:"wellness_suite"`
	PauseSuite      string `toml:"pause_suite"`
}

// CatalogConfig источник каталога номеров
// Без файла используется встроенный каталог
type CatalogConfig struct {
	File string `toml:"file"`
}

type MpesaConfig struct {
	Env            string `toml:"env"` // sandbox | production
	ConsumerKey    string `toml:"consumer_key"`
	ConsumerSecret string `toml:"consumer_secret"`
	Shortcode      string `toml:"shortcode"`
	Passkey        string `toml:"passkey"`
	CallbackURL    string `toml:"callback_url"`
	Timeout        int    `toml:"timeout"`
}

type ResendConfig struct {
	APIKey    string `toml:"api_key"`
	FromEmail string `toml:"from_email"`
	BaseURL   string `toml:"base_url"`
	Timeout   int    `toml:"timeout"`
}

type SMTPConfig struct {
	Host      string `toml:"host"`
	Port      int    `toml:"port"`
	Username  string `toml:"username"`
	Password  string `toml:"password"`
	FromEmail string `toml:"from_email"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// Enabled платежи включаются ключом приложения, как и на сайте
func (c MpesaConfig) Enabled() bool {
	return c.ConsumerKey != ""
}

func (c MpesaConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func (c ResendConfig) Enabled() bool {
	return c.APIKey != ""
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != ""
}

func (c AdminConfig) Enabled() bool {
	return c.Token != ""
}

// Load читает конфигурацию из TOML файла и переменных окружения
// Отсутствующий файл не является ошибкой: используются значения по умолчанию
func Load(path string) (*Config, error) {
	// .env опционален, ошибки чтения игнорируем
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			var pathErr *fs.PathError
			switch {
			case errors.As(err, &pathErr) && errors.Is(err, fs.ErrNotExist):
				// работаем на значениях по умолчанию
			case errors.As(err, &pathErr):
				return nil, fmt.Errorf("%w: %s: %v", ErrReadFile, path, err)
			default:
				return nil, fmt.Errorf("%w: %s: %v", ErrParseFile, path, err)
			}
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"app.name", c.App.Name},
		{"app.url", c.App.URL},
		{"business.name", c.Business.Name},
		{"business.email", c.Business.Email},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingRequired, r.key)
		}
	}

	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidValue, c.Server.HTTPPort)
	}

	return nil
}

type lookupFunc func(key string) (string, bool)

// applyEnv переопределяет значения из окружения (секреты и идентичность сайта)
func (c *Config) applyEnv(lookup lookupFunc) error {
	strs := map[string]*string{
		"APP_NAME":                 &c.App.Name,
		"APP_URL":                  &c.App.URL,
		"APP_DESCRIPTION":          &c.App.Description,
		"CONTACT_EMAIL":            &c.Contact.Email,
		"CONTACT_PHONE":            &c.Contact.Phone,
		"SITE_URL":                 &c.SEO.SiteURL,
		"GOOGLE_VERIFICATION_CODE": &c.SEO.GoogleVerification,
		"BUSINESS_NAME":            &c.Business.Name,
		"BUSINESS_EMAIL":           &c.Business.Email,
		"BUSINESS_PHONE":           &c.Business.Phone,
		"BUSINESS_LOCATION":        &c.Business.Location,

		"LOG_LEVEL":   &c.Logs.Level,
		"DB_HOST":     &c.Database.Host,
		"DB_USER":     &c.Database.User,
		"DB_PASSWORD": &c.Database.Password,
		"DB_NAME":     &c.Database.DBName,
		"ADMIN_TOKEN": &c.Admin.Token,

		"MPESA_ENV":             &c.Mpesa.Env,
		"MPESA_CONSUMER_KEY":    &c.Mpesa.ConsumerKey,
		"MPESA_CONSUMER_SECRET": &c.Mpesa.ConsumerSecret,
		"MPESA_SHORTCODE":       &c.Mpesa.Shortcode,
		"MPESA_PASSKEY":         &c.Mpesa.Passkey,
		"MPESA_CALLBACK_URL":    &c.Mpesa.CallbackURL,

		"RESEND_API_KEY":    &c.Resend.APIKey,
		"RESEND_FROM_EMAIL": &c.Resend.FromEmail,

		"SMTP_HOST":     &c.SMTP.Host,
		"SMTP_USERNAME": &c.SMTP.Username,
		"SMTP_PASSWORD": &c.SMTP.Password,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	ints := map[string]*int{
		"HTTP_PORT": &c.Server.HTTPPort,
		"DB_PORT":   &c.Database.Port,
		"SMTP_PORT": &c.SMTP.Port,
	}
	for key, dst := range ints {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, v)
		}
		*dst = n
	}

	floats := map[string]*float64{
		"BUSINESS_LATITUDE":  &c.Business.Latitude,
		"BUSINESS_LONGITUDE": &c.Business.Longitude,
	}
	for key, dst := range floats {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, v)
		}
		*dst = f
	}

	return nil
}

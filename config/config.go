package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultAPITimeout         = 10 * time.Second
	defaultSessionCookie      = "access_token"
	defaultSessionMaxAge      = 7 * 24 * time.Hour
	defaultFlashTTL           = 5 * time.Minute
	defaultMutationRetention  = 5 * time.Minute
	defaultQRCodeSize         = 256
	defaultOrderPageSize      = 10
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	SecretKey struct {
		// Flash signs the one-shot flash cookie.
		Flash string `json:"flash" yaml:"flash"`
	} `json:"secretKey" yaml:"secretKey"`

	// API is the external SocksFlow API every business operation goes to
	API *APIConfig `json:"api" yaml:"api"`

	// Session configures the token cookie
	Session *SessionConfig `json:"session" yaml:"session"`

	// Profile configures profile completeness
	Profile *ProfileConfig `json:"profile" yaml:"profile"`

	// Navigation configures the request guard
	Navigation *NavigationConfig `json:"navigation" yaml:"navigation"`

	// Plans is the subscription catalogue; the built-in one is used when empty
	Plans []PlanConfig `json:"plans" yaml:"plans"`

	// Orders configures the order history
	Orders *OrdersConfig `json:"orders" yaml:"orders"`

	// QRCode configuration for payment QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for journey event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// APIConfig defines how to reach the external API
type APIConfig struct {
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
}

// SessionConfig defines the token cookie and per-session bookkeeping
type SessionConfig struct {
	CookieName        string        `json:"cookieName" yaml:"cookieName"`
	Secure            bool          `json:"secure" yaml:"secure"`
	MaxAge            time.Duration `json:"maxAge" yaml:"maxAge"`
	FlashTTL          time.Duration `json:"flashTtl" yaml:"flashTtl"`
	MutationRetention time.Duration `json:"mutationRetention" yaml:"mutationRetention"`
}

// ProfileConfig defines which fields make a profile complete
type ProfileConfig struct {
	// RequiredFields is a subset of phone, address, size
	RequiredFields []string `json:"requiredFields" yaml:"requiredFields"`
}

// NavigationConfig defines the guarded path prefixes
type NavigationConfig struct {
	Protected     []string `json:"protected" yaml:"protected"`
	AuthOnly      []string `json:"authOnly" yaml:"authOnly"`
	LoginPath     string   `json:"loginPath" yaml:"loginPath"`
	DefaultTarget string   `json:"defaultTarget" yaml:"defaultTarget"`
}

// PlanConfig defines one plan of the catalogue
type PlanConfig struct {
	Code          string   `json:"code" yaml:"code"`
	Name          string   `json:"name" yaml:"name"`
	PriceMonthly  string   `json:"priceMonthly" yaml:"priceMonthly"`
	Currency      string   `json:"currency" yaml:"currency"`
	PairsPerMonth int      `json:"pairsPerMonth" yaml:"pairsPerMonth"`
	Description   string   `json:"description" yaml:"description"`
	Features      []string `json:"features" yaml:"features"`
}

// OrdersConfig defines order history paging
type OrdersConfig struct {
	PageSize int `json:"pageSize" yaml:"pageSize"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, empty to disable
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Journey event names to publish; empty publishes all of them
	Events []string `json:"events" yaml:"events"`
}

// LoadWithEnv loads .yaml files through koanf.
// Variables from a .env file next to the working directory are exported first,
// so they override YAML values like any other environment variable.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	configFile, err := findConfigFile(currEnv, configPath)
	if err != nil {
		return nil, err
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Example: SESSION_COOKIENAME -> session.cookieName
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, configPath []string) (string, error) {
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", currEnv)
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		return nil, errors.New("api.baseUrl is required")
	}
	if strings.TrimSpace(cfg.SecretKey.Flash) == "" {
		return nil, errors.New("secretKey.flash is required")
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.API == nil {
		cfg.API = &APIConfig{}
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = defaultAPITimeout
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultSessionCookie
	}
	if cfg.Session.MaxAge <= 0 {
		cfg.Session.MaxAge = defaultSessionMaxAge
	}
	if cfg.Session.FlashTTL <= 0 {
		cfg.Session.FlashTTL = defaultFlashTTL
	}
	if cfg.Session.MutationRetention <= 0 {
		cfg.Session.MutationRetention = defaultMutationRetention
	}

	if cfg.Profile == nil {
		cfg.Profile = &ProfileConfig{}
	}
	if cfg.Navigation == nil {
		cfg.Navigation = &NavigationConfig{}
	}

	if cfg.Orders == nil {
		cfg.Orders = &OrdersConfig{}
	}
	if cfg.Orders.PageSize <= 0 {
		cfg.Orders.PageSize = defaultOrderPageSize
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		matched, next, ok := findExistingSegment(current, segment)
		if !ok {
			canonical = append(canonical, segment)
			current = nil

			continue
		}
		canonical = append(canonical, matched)
		current = next
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (string, map[string]any, bool) {
	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) == needle {
			child, _ := value.(map[string]any)

			return key, child, true
		}
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	return strings.Map(func(r rune) rune {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return -1
		}

		return unicode.ToLower(r)
	}, s)
}

package config

import (
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
	defaultAPITimeout         = 15 * time.Second
	defaultSampleWindow       = 8 * time.Second
	defaultProgressInterval   = 100 * time.Millisecond
	defaultPositionTimeout    = 30 * time.Second
	defaultRecentSearchLimit  = 10
	defaultBucketURL          = "mem://"
	defaultPrimaryGeocoderURL = "https://api.bigdatacloud.net/data/reverse-geocode-client"
	defaultFallbackGeocoder   = "https://nominatim.openstreetmap.org/reverse"
	defaultGeocoderUserAgent  = "marketplace-storefront/1.0"
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

	// API configuration for the marketplace REST backend
	API *APIConfig `json:"api" yaml:"api"`

	// Geocoding configuration for reverse geocoding during KYC location verification
	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// Geolocation configuration for position sampling
	Geolocation *GeolocationConfig `json:"geolocation" yaml:"geolocation"`

	// Persistence configuration for the local key-value cache
	Persistence *PersistenceConfig `json:"persistence" yaml:"persistence"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	// QRCode configuration for vendor storefront QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// APIConfig defines how the marketplace backend is reached
type APIConfig struct {
	BaseURL   string        `json:"baseURL" yaml:"baseURL"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
}

// GeocodingConfig defines the primary and fallback reverse geocoding services
type GeocodingConfig struct {
	PrimaryURL  string        `json:"primaryURL" yaml:"primaryURL"`
	FallbackURL string        `json:"fallbackURL" yaml:"fallbackURL"`
	UserAgent   string        `json:"userAgent" yaml:"userAgent"`
	Language    string        `json:"language" yaml:"language"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`

	// Nominatim usage policy allows at most one request per second
	FallbackRatePerSecond float64 `json:"fallbackRatePerSecond" yaml:"fallbackRatePerSecond"`
}

// GeolocationConfig defines the watch options used while sampling device positions
type GeolocationConfig struct {
	SampleWindow     time.Duration `json:"sampleWindow" yaml:"sampleWindow"`
	ProgressInterval time.Duration `json:"progressInterval" yaml:"progressInterval"`
	HighAccuracy     bool          `json:"highAccuracy" yaml:"highAccuracy"`
	Timeout          time.Duration `json:"timeout" yaml:"timeout"`
	MaximumAge       time.Duration `json:"maximumAge" yaml:"maximumAge"`
}

// PersistenceConfig defines where persisted slices are kept
type PersistenceConfig struct {
	// gocloud.dev blob URL, e.g. file:///var/lib/storefront or mem://
	BucketURL         string `json:"bucketURL" yaml:"bucketURL"`
	KeyPrefix         string `json:"keyPrefix" yaml:"keyPrefix"`
	RecentSearchLimit int    `json:"recentSearchLimit" yaml:"recentSearchLimit"`
}

type GoogleOAuthConfig struct {
	ClientID    string `json:"clientId" yaml:"clientId"`
	RedirectURI string `json:"redirectUri" yaml:"redirectUri"`
	Scopes      string `json:"scopes" yaml:"scopes"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: API_BASEURL -> api.baseURL (not api.baseurl)
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
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

func New() (*Config, error) {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	ApplyDefaults(cfg)

	if cfg.API.BaseURL == "" {
		return nil, errors.New("api.baseURL is required")
	}

	return cfg, nil
}

// ApplyDefaults fills optional sections that were left out of the yaml file.
func ApplyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.API == nil {
		cfg.API = &APIConfig{}
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = defaultAPITimeout
	}

	if cfg.Geocoding == nil {
		cfg.Geocoding = &GeocodingConfig{}
	}
	if cfg.Geocoding.PrimaryURL == "" {
		cfg.Geocoding.PrimaryURL = defaultPrimaryGeocoderURL
	}
	if cfg.Geocoding.FallbackURL == "" {
		cfg.Geocoding.FallbackURL = defaultFallbackGeocoder
	}
	if cfg.Geocoding.UserAgent == "" {
		cfg.Geocoding.UserAgent = defaultGeocoderUserAgent
	}
	if cfg.Geocoding.Language == "" {
		cfg.Geocoding.Language = "en"
	}
	if cfg.Geocoding.Timeout <= 0 {
		cfg.Geocoding.Timeout = 10 * time.Second
	}
	if cfg.Geocoding.FallbackRatePerSecond <= 0 {
		cfg.Geocoding.FallbackRatePerSecond = 1
	}

	if cfg.Geolocation == nil {
		cfg.Geolocation = &GeolocationConfig{HighAccuracy: true}
	}
	if cfg.Geolocation.SampleWindow <= 0 {
		cfg.Geolocation.SampleWindow = defaultSampleWindow
	}
	if cfg.Geolocation.ProgressInterval <= 0 {
		cfg.Geolocation.ProgressInterval = defaultProgressInterval
	}
	if cfg.Geolocation.Timeout <= 0 {
		cfg.Geolocation.Timeout = defaultPositionTimeout
	}

	if cfg.Persistence == nil {
		cfg.Persistence = &PersistenceConfig{}
	}
	if cfg.Persistence.BucketURL == "" {
		cfg.Persistence.BucketURL = defaultBucketURL
	}
	if cfg.Persistence.RecentSearchLimit <= 0 {
		cfg.Persistence.RecentSearchLimit = defaultRecentSearchLimit
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

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

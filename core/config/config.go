package config

import (
	"reflect"
	"strings"

	"github.com/google-marketing-solutions/madpmax-sub000/core/ads"
	"github.com/google-marketing-solutions/madpmax-sub000/core/auth"
	"github.com/google-marketing-solutions/madpmax-sub000/core/database"
	"github.com/google-marketing-solutions/madpmax-sub000/core/logger"
	"github.com/google-marketing-solutions/madpmax-sub000/core/server"
	"github.com/google-marketing-solutions/madpmax-sub000/core/sheets"
	"github.com/google-marketing-solutions/madpmax-sub000/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP trigger server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Auth holds the OAuth2 credentials shared by the Sheets and Ads clients.
	Auth auth.Config `mapstructure:"auth"`
	// Sheets holds configuration for the campaign spreadsheet.
	Sheets sheets.Config `mapstructure:"sheets"`
	// Ads holds configuration for the Ads API client.
	Ads ads.Config `mapstructure:"ads"`
	// Storage holds configuration for the media object store.
	Storage storage.Config `mapstructure:"storage"`
	// Database holds configuration for the upload-run history database.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SHEETS_SPREADSHEET_ID -> sheets.spreadsheet_id)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}

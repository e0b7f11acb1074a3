package storage

// Config holds configuration for the media object store.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:""`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// Bucket is the bucket holding campaign media.
	Bucket string `mapstructure:"bucket" default:"campaign-media"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Enabled reports whether a media bucket has been configured at all. The
// uploader works without one as long as every asset row uses public URLs.
func (c Config) Enabled() bool {
	return c.Endpoint != ""
}

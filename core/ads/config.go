package ads

// Config holds configuration for the Ads API client.
type Config struct {
	// Endpoint is the base URL of the Ads REST API.
	Endpoint string `mapstructure:"endpoint" default:"https://googleads.googleapis.com"`
	// Version is the API version path segment.
	Version string `mapstructure:"version" default:"v16"`
	// DeveloperToken is the Ads API developer token.
	DeveloperToken string `mapstructure:"developer_token" default:""`
	// LoginCustomerID is the manager account under which requests are made.
	LoginCustomerID string `mapstructure:"login_customer_id" default:""`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}

package storage

// Config holds configuration for the object storage used to publish
// reports and distribute the reference table.
type Config struct {
	// Enabled turns object storage on. When false publish and fetch are
	// unavailable.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Endpoint is the host:port of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use TLS.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds published reports and the reference table.
	Bucket string `mapstructure:"bucket" default:"housenumbers"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

package shared

type Config struct {
	Environment      *bool     `yaml:"environment" toml:"environment" validate:"required"`
	Port             *string   `yaml:"port" toml:"port" validate:"required"`
	BackendURL       *string   `yaml:"backend_url" toml:"backend_url" validate:"required"`
	VerifyHost       *string   `yaml:"verify_host" toml:"verify_host" validate:"required"`
	Cors             []*string `yaml:"cors" toml:"cors" validate:"required"`
	JWTSecret        *string   `yaml:"jwt_secret" toml:"jwt_secret" validate:"required"`
	Postgres         *string   `yaml:"postgres" toml:"postgres" validate:"required"`
	PostgresReplicas []*string `yaml:"postgres_replicas" toml:"postgres_replicas"`
	Mongo            *string   `yaml:"mongo" toml:"mongo" validate:"required"`
	MongoDatabase    *string   `yaml:"mongo_database" toml:"mongo_database" validate:"required"`
	MinIoEndpoint    *string   `yaml:"minio_endpoint" toml:"minio_endpoint" validate:"required"`
	MinIoAccessKey   *string   `yaml:"minio_access_key" toml:"minio_access_key" validate:"required"`
	MinIoSecretKey   *string   `yaml:"minio_secret_key" toml:"minio_secret_key" validate:"required"`
	MinIoSecure      *bool     `yaml:"minio_secure" toml:"minio_secure"`
	BucketResource   *string   `yaml:"bucket_resource" toml:"bucket_resource" validate:"required"`
	BucketCredential *string   `yaml:"bucket_credential" toml:"bucket_credential" validate:"required"`
	MailHost         *string   `yaml:"mail_host" toml:"mail_host" validate:"required"`
	MailPort         *int      `yaml:"mail_port" toml:"mail_port"`
	MailUser         *string   `yaml:"mail_user" toml:"mail_user" validate:"required"`
	MailPass         *string   `yaml:"mail_pass" toml:"mail_pass" validate:"required"`
	FontFamily       *string   `yaml:"font_family" toml:"font_family"`
	FontSystemLookup *bool     `yaml:"font_system_lookup" toml:"font_system_lookup"`
	FontFallback     *bool     `yaml:"font_fallback" toml:"font_fallback"`
	RenderWidth      *int      `yaml:"render_width" toml:"render_width" validate:"omitempty,min=0"`
	RenderHeight     *int      `yaml:"render_height" toml:"render_height" validate:"omitempty,min=0"`
	RenderFormat     *string   `yaml:"render_format" toml:"render_format" validate:"omitempty,oneof=png jpeg"`
	JPEGQuality      *int      `yaml:"jpeg_quality" toml:"jpeg_quality" validate:"omitempty,min=1,max=100"`
	ThumbnailWidth   *int      `yaml:"thumbnail_width" toml:"thumbnail_width" validate:"omitempty,min=1"`
	MaxBackgroundPx  *int      `yaml:"max_background_pixels" toml:"max_background_pixels" validate:"omitempty,min=1"`
	SigningEnabled   *bool     `yaml:"signing_enabled" toml:"signing_enabled"`
	SigningCertPath  *string   `yaml:"signing_cert_path" toml:"signing_cert_path"`
	SigningKeyPath   *string   `yaml:"signing_key_path" toml:"signing_key_path"`
	LogFile          *string   `yaml:"log_file" toml:"log_file"`
	LogMaxSizeMB     *int      `yaml:"log_max_size_mb" toml:"log_max_size_mb"`
}

// Or dereferences an optional config value.
func Or[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}

package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret  string `mapstructure:"secret"`
	ExpDays int    `mapstructure:"exp_days"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

// RecordStoreConfig points at the external tabular record store acting
// as the system of record, plus its separate content (attachment) host.
type RecordStoreConfig struct {
	APIToken   string `mapstructure:"api_token"`
	BaseID     string `mapstructure:"base_id"`
	APIURL     string `mapstructure:"api_url"`
	ContentURL string `mapstructure:"content_url"`
}

func (r *RecordStoreConfig) GetBaseURL() string {
	return fmt.Sprintf("%s/%s", r.APIURL, r.BaseID)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// SnapshotTTLSeconds bounds how stale a cached table snapshot may be.
	SnapshotTTLSeconds int `mapstructure:"snapshot_ttl_seconds"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type EmailConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

type StorageConfig struct {
	UploadDir string `mapstructure:"upload_dir"`
	// PublicPath is the URL prefix under which UploadDir is served.
	PublicPath string `mapstructure:"public_path"`
}

type ResidenceConfig struct {
	Name string `mapstructure:"name"`
}

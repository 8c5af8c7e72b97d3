package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
	"github.com/dmitrijs2005/gophauth/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept Go
// duration strings ("15m") or integer nanoseconds. Absent keys keep the
// current value.
type JsonConfig struct {
	EndpointAddrGRPC     string         `json:"endpoint_addr_grpc"`
	MetricsAddr          string         `json:"metrics_addr"`
	LogLevel             string         `json:"log_level"`
	Storage              string         `json:"storage"`
	DatabaseDSN          string         `json:"database_dsn"`
	AccessSecret         string         `json:"access_secret"`
	RefreshSecret        string         `json:"refresh_secret"`
	AccessTokenTTL       timex.Duration `json:"access_token_ttl"`
	RefreshTokenTTL      timex.Duration `json:"refresh_token_ttl"`
	BcryptCost           int            `json:"bcrypt_cost"`
	OTPTTL               timex.Duration `json:"otp_ttl"`
	OTPMaxAttempts       int            `json:"otp_max_attempts"`
	ResetTokenTTL        timex.Duration `json:"reset_token_ttl"`
	Notifier             string         `json:"notifier"`
	RedisAddr            string         `json:"redis_addr"`
	RedisStream          string         `json:"redis_stream"`
	AuditS3Bucket        string         `json:"audit_s3_bucket"`
	AuditS3Prefix        string         `json:"audit_s3_prefix"`
	AuditS3Region        string         `json:"audit_s3_region"`
	AuditS3Endpoint      string         `json:"audit_s3_endpoint"`
	AuditS3AccessKey     string         `json:"audit_s3_access_key"`
	AuditS3SecretKey     string         `json:"audit_s3_secret_key"`
	RateLimitRPS         float64        `json:"rate_limit_rps"`
	RateLimitBurst       int            `json:"rate_limit_burst"`
	StrictRateLimitRPS   float64        `json:"strict_rate_limit_rps"`
	StrictRateLimitBurst int            `json:"strict_rate_limit_burst"`
}

func set[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}

// parseJSON overlays the file named by -c/-config, if any.
func parseJSON(config *Config, args []string) error {

	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	set(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	set(&config.MetricsAddr, c.MetricsAddr)
	set(&config.LogLevel, c.LogLevel)
	set(&config.Storage, c.Storage)
	set(&config.DatabaseDSN, c.DatabaseDSN)
	set(&config.AccessSecret, c.AccessSecret)
	set(&config.RefreshSecret, c.RefreshSecret)
	set(&config.AccessTokenTTL, c.AccessTokenTTL.Duration)
	set(&config.RefreshTokenTTL, c.RefreshTokenTTL.Duration)
	set(&config.BcryptCost, c.BcryptCost)
	set(&config.OTPTTL, c.OTPTTL.Duration)
	set(&config.OTPMaxAttempts, c.OTPMaxAttempts)
	set(&config.ResetTokenTTL, c.ResetTokenTTL.Duration)
	set(&config.Notifier, c.Notifier)
	set(&config.RedisAddr, c.RedisAddr)
	set(&config.RedisStream, c.RedisStream)
	set(&config.AuditS3Bucket, c.AuditS3Bucket)
	set(&config.AuditS3Prefix, c.AuditS3Prefix)
	set(&config.AuditS3Region, c.AuditS3Region)
	set(&config.AuditS3Endpoint, c.AuditS3Endpoint)
	set(&config.AuditS3AccessKey, c.AuditS3AccessKey)
	set(&config.AuditS3SecretKey, c.AuditS3SecretKey)
	set(&config.RateLimitRPS, c.RateLimitRPS)
	set(&config.RateLimitBurst, c.RateLimitBurst)
	set(&config.StrictRateLimitRPS, c.StrictRateLimitRPS)
	set(&config.StrictRateLimitBurst, c.StrictRateLimitBurst)

	return nil
}

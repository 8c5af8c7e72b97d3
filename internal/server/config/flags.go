package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
)

// parseFlags applies command-line overrides. Only the flags defined here are
// looked at, so -c/-config and foreign flags pass through untouched.
//
//	-a        gRPC bind address
//	-m        metrics bind address ("" disables)
//	-l        log level
//	-storage  postgres | memory
//	-d        PostgreSQL DSN
//	-s        access token secret
//	-rs       refresh token secret
//	-t        access token lifetime (e.g. 15m)
//	-r        refresh token lifetime (e.g. 168h)
//	-notifier log | redis
//	-redis    Redis address
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("gophauth", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "address of the metrics endpoint")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.Storage, "storage", config.Storage, "storage backend")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.AccessSecret, "s", config.AccessSecret, "access token secret")
	fs.StringVar(&config.RefreshSecret, "rs", config.RefreshSecret, "refresh token secret")
	fs.DurationVar(&config.AccessTokenTTL, "t", config.AccessTokenTTL, "access token lifetime")
	fs.DurationVar(&config.RefreshTokenTTL, "r", config.RefreshTokenTTL, "refresh token lifetime")
	fs.StringVar(&config.Notifier, "notifier", config.Notifier, "notification backend")
	fs.StringVar(&config.RedisAddr, "redis", config.RedisAddr, "redis address")

	return flagx.ParseOwn(fs, args)
}

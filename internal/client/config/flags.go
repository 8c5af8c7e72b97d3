package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
)

// parseFlags applies:
//
//	-a  server address
//	-t  per-request timeout (e.g. 5s)
//	-f  session database file
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("gophauth-cli", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.SessionFile, "f", cfg.SessionFile, "session database file")

	return flagx.ParseOwn(fs, args)
}

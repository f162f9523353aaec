package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress is a [host]:port flag value. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// originList is a comma separated list flag value.
type originList []string

// ParseFlags reads server settings from the process command line.
//
//	-a                 listen address, [host]:port
//	-p                 listen port, used when -a is absent
//	-d                 database DSN
//	-driver            database driver, postgres or sqlite
//	-c, -config        JSON config file
//	-token-sign-key    JWT signing secret
//	-token-issuer      JWT "iss" claim
//	-token-duration    access token lifetime, e.g. 600h
//	-hash-cost         bcrypt cost
//	-request-timeout   per-request timeout, e.g. 30s
//	-shutdown-timeout  graceful shutdown budget
//	-cors              allowed CORS origins, comma separated
//	-log-level         debug, info, warn or error
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var (
		cfg     StructuredConfig
		address NetAddress
		origins originList
	)

	fs.Var(&address, "a", "Listen address [host]:port")
	fs.StringVar(&cfg.Port, "p", "", "Listen port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Database driver: postgres or sqlite")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token lifetime (e.g. 600h)")
	fs.IntVar(&cfg.App.PasswordHashCost, "hash-cost", 0, "bcrypt cost")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s)")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.Var(&origins, "cors", "Allowed CORS origins, comma separated")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = address.String()
	cfg.Server.CORSAllowedOrigins = origins

	return &cfg, nil
}

// String renders the address as host:port, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts "host:port", ":port" and "[ipv6]:port". A host other than
// "localhost" must be an IP literal.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("bad port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return errors.New("port number is a positive integer up to 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host, a.Port = host, port
	return nil
}

func (o *originList) String() string {
	return strings.Join(*o, ",")
}

func (o *originList) Set(s string) error {
	for origin := range strings.SplitSeq(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			*o = append(*o, origin)
		}
	}

	return nil
}

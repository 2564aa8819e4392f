package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/paularlott/cli"
)

// Config holds the NDFC connection settings plus the local data directory.
type Config struct {
	Host      string
	Fabric    string
	Username  string
	Password  string
	Domain    string
	VerifyTLS bool
	DataDir   string
}

var (
	host      string
	fabric    string
	username  string
	password  string
	domain    string
	verifyTLS bool
	dataDir   string
)

// ConnectionFlags returns the flags shared by every command that talks to
// the controller. Each resolves from its environment variable first.
func ConnectionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "host",
			Usage:    "NDFC host or URL",
			EnvVars:  []string{"NDFC_HOST"},
			AssignTo: &host,
		},
		&cli.StringFlag{
			Name:     "fabric",
			Usage:    "Fabric name",
			EnvVars:  []string{"DEFAULT_FABRIC"},
			AssignTo: &fabric,
		},
		&cli.StringFlag{
			Name:     "username",
			Usage:    "NDFC username",
			EnvVars:  []string{"NDFC_USERNAME"},
			AssignTo: &username,
		},
		&cli.StringFlag{
			Name:     "password",
			Usage:    "NDFC password",
			EnvVars:  []string{"NDFC_PASSWORD"},
			AssignTo: &password,
		},
		&cli.StringFlag{
			Name:         "domain",
			Usage:        "NDFC login domain",
			EnvVars:      []string{"NDFC_DOMAIN"},
			DefaultValue: "local",
			AssignTo:     &domain,
		},
		&cli.BoolFlag{
			Name:     "verify-tls",
			Usage:    "Verify the controller's TLS certificate",
			EnvVars:  []string{"NDFC_VERIFY_TLS"},
			AssignTo: &verifyTLS,
		},
	}
}

// DataFlags returns the flags for the local rename-history store.
func DataFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:         "data-dir",
			Usage:        "Data directory path",
			EnvVars:      []string{"NDFC_DATA_DIR"},
			DefaultValue: filepath.Join(".", "data"),
			AssignTo:     &dataDir,
		},
	}
}

// Load snapshots the flag-bound values. The host is normalized so callers
// always see a scheme-qualified base URL.
func Load() *Config {
	return &Config{
		Host:      NormalizeHost(host),
		Fabric:    fabric,
		Username:  username,
		Password:  password,
		Domain:    domain,
		VerifyTLS: verifyTLS,
		DataDir:   dataDir,
	}
}

// NormalizeHost trims trailing slashes and prefixes https:// when the
// scheme is missing. Controllers are normally reached over TLS with a
// self-signed certificate, so https is the assumed default.
func NormalizeHost(h string) string {
	h = strings.TrimRight(strings.TrimSpace(h), "/")
	if h == "" {
		return h
	}
	if !strings.HasPrefix(h, "http://") && !strings.HasPrefix(h, "https://") {
		h = "https://" + h
	}
	return h
}

// RequireConnection reports an error naming every connection value that is
// still empty. The password is not checked here; commands prompt for it.
func (c *Config) RequireConnection() error {
	var missing []string
	if c.Host == "" {
		missing = append(missing, "host (NDFC_HOST)")
	}
	if c.Fabric == "" {
		missing = append(missing, "fabric (DEFAULT_FABRIC)")
	}
	if c.Username == "" {
		missing = append(missing, "username (NDFC_USERNAME)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required settings: %s", strings.Join(missing, ", "))
	}
	return nil
}

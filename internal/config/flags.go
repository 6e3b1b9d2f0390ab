package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver ("postgres" or "sqlite")
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-lockout-threshold failed attempts allowed inside the window
//	-lockout-window sliding window for counting failures (e.g., "30m")
//	-lockout-duration how long a block lasts (e.g., "24h")
//	-admin-username bootstrap admin username
//	-admin-email bootstrap admin email
//	-admin-password bootstrap admin password (empty disables bootstrap)
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var lockoutThreshold int
	var lockoutWindow time.Duration
	var lockoutDuration time.Duration
	var adminUsername string
	var adminEmail string
	var adminPassword string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (postgres or sqlite)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&lockoutThreshold, "lockout-threshold", 0, "Failed attempts allowed inside the window")
	flag.DurationVar(&lockoutWindow, "lockout-window", 0, "Sliding window for counting failures (e.g., 30m)")
	flag.DurationVar(&lockoutDuration, "lockout-duration", 0, "Block duration (e.g., 24h)")
	flag.StringVar(&adminUsername, "admin-username", "", "Bootstrap admin username")
	flag.StringVar(&adminEmail, "admin-email", "", "Bootstrap admin email")
	flag.StringVar(&adminPassword, "admin-password", "", "Bootstrap admin password")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			AdminUsername: adminUsername,
			AdminEmail:    adminEmail,
			AdminPassword: adminPassword,
		},
		Lockout: Lockout{
			FailureThreshold: lockoutThreshold,
			FailureWindow:    lockoutWindow,
			BlockDuration:    lockoutDuration,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string so that the
// merge step treats the flag as unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

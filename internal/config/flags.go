// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args into a fresh
// [StructuredConfig]. A dedicated flag set is used so that the server and
// the CLIs can parse independently of the global flag.CommandLine.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-db-ssl force SSL for the first connection strategy
//	-uploads-dir directory for uploaded images
//	-frontend-dir directory with the frontend bundle
//	-c/-config json file path with configs
//	-env deployment environment
//	-log-level minimal log level
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var databaseSSL bool
	var uploadsDir, frontendDir string
	var jsonConfigPath string
	var appEnv, logLevel string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration

	fs := flag.NewFlagSet("recipe-box", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.BoolVar(&databaseSSL, "db-ssl", false, "Force SSL database connections")
	fs.StringVar(&uploadsDir, "uploads-dir", "", "Uploads directory")
	fs.StringVar(&frontendDir, "frontend-dir", "", "Frontend bundle directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&appEnv, "env", "", "Deployment environment")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Env:           appEnv,
			LogLevel:      logLevel,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
				SSL: databaseSSL,
			},
			Files: Files{
				UploadsDir:  uploadsDir,
				FrontendDir: frontendDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host means all interfaces. It validates the port
// range, checks IP correctness unless host is "localhost", and returns an
// error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

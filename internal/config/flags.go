package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port flag value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags of the process command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d note database DSN
//	-l local state store path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-origins comma separated CORS origins
//	-llm-url completion provider base URL
//	-llm-key completion provider API key
//	-llm-model completion model
//	-cosmic-url remote moon-phase provider URL
//	-s server address used by the client
//	-session client session id
//	-refresh-interval client refresh interval (e.g., "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, localPath string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var origins string
	var llmURL, llmKey, llmModel string
	var cosmicURL string
	var adapterAddress, sessionID string
	var refreshInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Note database DSN")
	flag.StringVar(&localPath, "l", "", "Local state store path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&origins, "origins", "", "Comma separated CORS origins")
	flag.StringVar(&llmURL, "llm-url", "", "Completion provider base URL")
	flag.StringVar(&llmKey, "llm-key", "", "Completion provider API key")
	flag.StringVar(&llmModel, "llm-model", "", "Completion model")
	flag.StringVar(&cosmicURL, "cosmic-url", "", "Remote moon-phase provider URL")
	flag.StringVar(&adapterAddress, "s", "", "Server address used by the client")
	flag.StringVar(&sessionID, "session", "", "Client session id")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Client refresh interval (e.g., 1m)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Local: Local{Path: localPath},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			AllowedOrigins: splitList(origins),
		},
		LLM: LLM{
			URL:    llmURL,
			APIKey: llmKey,
			Model:  llmModel,
		},
		Cosmic: Cosmic{URL: cosmicURL},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
			SessionID:      sessionID,
		},
		Workers:      Workers{RefreshInterval: refreshInterval},
		JSONFilePath: jsonConfigPath,
	}
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be empty, "localhost" or an IP
// literal; IPv6 literals need brackets.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNetAddress, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port must be in 1..65535, got %q", ErrInvalidNetAddress, rawPort)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: host %q is not an IP address", ErrInvalidNetAddress, host)
	}

	a.Host = host
	a.Port = port
	return nil
}

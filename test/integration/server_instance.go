package integration

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http/httptest"

	"github.com/doodlesbykumbi/ciphers-in-go/pkg/cipher"
	"github.com/doodlesbykumbi/ciphers-in-go/pkg/config"
	"github.com/doodlesbykumbi/ciphers-in-go/pkg/server"
	"github.com/doodlesbykumbi/ciphers-in-go/pkg/server/endpoints"
)

// ServerConfig holds configuration for a test cipher server instance
type ServerConfig struct {
	Algorithms    []string
	MaxTextLength int
}

// DefaultServerConfig returns the default server configuration
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Algorithms:    cipher.AlgorithmStrings(),
		MaxTextLength: config.Default().MaxTextLength,
	}
}

// ServerInstance represents a running cipher server for a single scenario
type ServerInstance struct {
	Server    *server.Server
	ServerURL string
	Config    ServerConfig
	http      *httptest.Server
}

// StartServer starts an in-process server. Zig-zag padding is drawn from a
// fixed seed so scenarios are repeatable.
func StartServer(cfg ServerConfig) *ServerInstance {
	c := config.Default()
	c.Algorithms = cfg.Algorithms
	c.MaxTextLength = cfg.MaxTextLength

	s := server.NewServer(c,
		server.WithAccessLog(io.Discard),
		server.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	endpoints.RegisterAll(s, cipher.WithRand(rand.New(rand.NewPCG(42, 42))))

	ts := httptest.NewServer(s.Handler())
	return &ServerInstance{
		Server:    s,
		ServerURL: ts.URL,
		Config:    cfg,
		http:      ts,
	}
}

// Stop shuts the server down
func (si *ServerInstance) Stop() {
	if si.http != nil {
		si.http.Close()
	}
}

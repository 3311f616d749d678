package endpoints

import (
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/doodlesbykumbi/ciphers-in-go/pkg/server"
)

// RegisterMetricsEndpoint registers GET /metrics
func RegisterMetricsEndpoint(s *server.Server) {
	s.Router.Handle("/metrics", promhttp.Handler()).Methods("GET")
}

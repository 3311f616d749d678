package endpoints

import (
	"github.com/doodlesbykumbi/ciphers-in-go/pkg/cipher"
	"github.com/doodlesbykumbi/ciphers-in-go/pkg/server"
)

// RegisterAll registers all API endpoints on the server. opts are passed to
// every cipher the transform endpoint builds.
func RegisterAll(srv *server.Server, opts ...cipher.Option) {
	RegisterStatusEndpoints(srv)
	RegisterAlgorithmsEndpoint(srv)
	RegisterMetricsEndpoint(srv)
	RegisterTransformEndpoint(srv, opts...)
}

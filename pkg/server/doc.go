// Package server provides the HTTP server for the cipher API.
//
// It uses gorilla/mux for routing and gorilla/handlers for access logging.
//
// # Server Setup
//
//	cfg, _ := config.Load()
//	srv := server.NewServer(cfg)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//   - GET / - Server status
//   - GET /algorithms - Enabled algorithms and their keys
//   - GET /metrics - Prometheus metrics
//   - POST /{mode}/{algorithm} - Encrypt or decrypt a text
package server

package endpoints

import (
	"net/http"
	"os"

	"github.com/doodlesbykumbi/ciphers-in-go/pkg/server"
)

// Version is reported by the status endpoint unless CIPHERS_VERSION_DISPLAY
// is set.
var Version = "0.1.0"

// StatusResponse represents the response from /
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// RegisterStatusEndpoints registers the status endpoint
func RegisterStatusEndpoints(s *server.Server) {
	s.Router.HandleFunc("/", handleStatus()).Methods("GET")
}

func handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("CIPHERS_VERSION_DISPLAY")
		if version == "" {
			version = Version
		}
		respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok", Version: version})
	}
}

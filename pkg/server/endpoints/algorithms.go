package endpoints

import (
	"net/http"

	"github.com/doodlesbykumbi/ciphers-in-go/pkg/config"
	"github.com/doodlesbykumbi/ciphers-in-go/pkg/server"
)

// AlgorithmInfo describes one enabled algorithm
type AlgorithmInfo struct {
	Name         string `json:"name"`
	Key          string `json:"key"`
	Substitution bool   `json:"substitution"`
}

// AlgorithmsResponse represents the response from /algorithms
type AlgorithmsResponse struct {
	Algorithms []AlgorithmInfo `json:"algorithms"`
}

// RegisterAlgorithmsEndpoint registers GET /algorithms
func RegisterAlgorithmsEndpoint(s *server.Server) {
	s.Router.HandleFunc("/algorithms", handleAlgorithms(s.Config)).Methods("GET")
}

func handleAlgorithms(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := AlgorithmsResponse{Algorithms: []AlgorithmInfo{}}
		for _, alg := range cfg.EnabledAlgorithms() {
			resp.Algorithms = append(resp.Algorithms, AlgorithmInfo{
				Name:         alg.String(),
				Key:          alg.KeyDescription(),
				Substitution: alg.Substitution(),
			})
		}
		respondWithJSON(w, http.StatusOK, resp)
	}
}

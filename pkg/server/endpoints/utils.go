package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/doodlesbykumbi/ciphers-in-go/pkg/cipher"
)

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// errorStatus maps cipher errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, cipher.ErrUnknownAlgorithm), errors.Is(err, cipher.ErrUnknownMode):
		return http.StatusNotFound
	case errors.Is(err, cipher.ErrInvalidKey), errors.Is(err, cipher.ErrMalformedInput):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

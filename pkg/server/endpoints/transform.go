package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/ciphers-in-go/pkg/cipher"
	"github.com/doodlesbykumbi/ciphers-in-go/pkg/config"
	"github.com/doodlesbykumbi/ciphers-in-go/pkg/metrics"
	"github.com/doodlesbykumbi/ciphers-in-go/pkg/server"
)

// TransformRequest is the body of POST /{mode}/{algorithm}
type TransformRequest struct {
	Text string `json:"text"`
	Key  string `json:"key"`
}

// TransformResponse represents the response from POST /{mode}/{algorithm}
type TransformResponse struct {
	Mode      string `json:"mode"`
	Algorithm string `json:"algorithm"`
	Result    string `json:"result"`
	// Padding counts the random runes zig-zag encryption appended
	Padding int `json:"padding"`
}

// RegisterTransformEndpoint registers POST /{mode}/{algorithm}
func RegisterTransformEndpoint(s *server.Server, opts ...cipher.Option) {
	s.Router.HandleFunc("/{mode}/{algorithm}", handleTransform(s.Config, s.Logger, opts...)).Methods("POST")
}

func handleTransform(cfg *config.Config, logger *slog.Logger, opts ...cipher.Option) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		mode, err := cipher.ParseMode(vars["mode"])
		if err != nil {
			respondWithError(w, errorStatus(err), err.Error())
			return
		}

		alg, err := cipher.ParseAlgorithm(vars["algorithm"])
		if err != nil {
			respondWithError(w, errorStatus(err), err.Error())
			return
		}

		if !cfg.IsAlgorithmEnabled(alg) {
			respondWithError(w, http.StatusForbidden, fmt.Sprintf("algorithm %s is disabled", alg))
			return
		}

		// Leave room for the key and JSON escaping around the text.
		body := http.MaxBytesReader(w, r.Body, int64(cfg.MaxTextLength)*2+1024)
		var req TransformRequest
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				respondWithError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			respondWithError(w, http.StatusBadRequest, "malformed request body")
			return
		}

		if len(req.Text) > cfg.MaxTextLength {
			respondWithError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("text exceeds %d bytes", cfg.MaxTextLength))
			return
		}

		text, key := req.Text, req.Key
		if cfg.Normalize {
			text, key = strings.ToUpper(text), strings.ToUpper(key)
		}

		if alg == cipher.AlgorithmZigZag && mode == cipher.ModeEncrypt && text != "" {
			width, err := cipher.ParseWidth(key)
			if err != nil {
				respondWithError(w, errorStatus(err), err.Error())
				return
			}
			// The output holds at least one full row of width runes.
			if width > cfg.MaxTextLength ||
				len(text)+cipher.PadLength(utf8.RuneCountInString(text), width) > cfg.MaxTextLength {
				respondWithError(w, http.StatusRequestEntityTooLarge,
					fmt.Sprintf("padded output exceeds %d bytes", cfg.MaxTextLength))
				return
			}
		}

		c, err := cipher.New(alg, opts...)
		if err != nil {
			respondWithError(w, errorStatus(err), err.Error())
			return
		}

		var result string
		padding := 0
		start := time.Now()
		if z, ok := c.(*cipher.ZigZag); ok && mode == cipher.ModeEncrypt {
			result, padding, err = z.EncryptWithPadding(text, key)
		} else {
			result, err = cipher.Apply(c, mode, text, key)
		}
		metrics.RecordTransform(mode, alg, err, time.Since(start))
		if err != nil {
			respondWithError(w, errorStatus(err), err.Error())
			return
		}

		metrics.RecordPadding(padding)
		if padding > 0 {
			logger.Warn("zigzag output padded", "runes", padding)
		}

		respondWithJSON(w, http.StatusOK, TransformResponse{
			Mode:      mode.String(),
			Algorithm: alg.String(),
			Result:    result,
			Padding:   padding,
		})
	}
}

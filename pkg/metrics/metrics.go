package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/doodlesbykumbi/ciphers-in-go/pkg/cipher"
)

const (
	// Namespace is the Prometheus namespace for all cipher metrics
	Namespace = "ciphers"

	// Label names
	LabelMode      = "mode"
	LabelAlgorithm = "algorithm"
	LabelStatus    = "status"

	// Status values
	StatusSuccess        = "success"
	StatusInvalidKey     = "invalid_key"
	StatusMalformedInput = "malformed_input"
	StatusError          = "error"
)

var (
	// TransformsTotal counts transforms by mode, algorithm and outcome.
	TransformsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "transforms_total",
			Help:      "Total number of transforms by mode, algorithm, and status",
		},
		[]string{LabelMode, LabelAlgorithm, LabelStatus},
	)

	// TransformDuration tracks how long transforms take in seconds.
	TransformDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "transform_duration_seconds",
			Help:      "Duration of transforms in seconds",
			Buckets:   []float64{.00001, .0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{LabelMode, LabelAlgorithm},
	)

	// PaddingRunesTotal counts random runes appended by zig-zag encryption.
	PaddingRunesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "zigzag",
			Name:      "padding_runes_total",
			Help:      "Total number of random runes padded onto zig-zag ciphertext",
		},
	)
)

// RecordTransform records the outcome and duration of one transform.
func RecordTransform(mode cipher.Mode, alg cipher.Algorithm, err error, d time.Duration) {
	TransformsTotal.WithLabelValues(mode.String(), alg.String(), Status(err)).Inc()
	TransformDuration.WithLabelValues(mode.String(), alg.String()).Observe(d.Seconds())
}

// RecordPadding adds n to the zig-zag padding counter.
func RecordPadding(n int) {
	if n > 0 {
		PaddingRunesTotal.Add(float64(n))
	}
}

// Status maps a transform error to a status label value.
func Status(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, cipher.ErrInvalidKey):
		return StatusInvalidKey
	case errors.Is(err, cipher.ErrMalformedInput):
		return StatusMalformedInput
	default:
		return StatusError
	}
}

// Package metrics provides Prometheus instrumentation for cipher transforms.
package metrics

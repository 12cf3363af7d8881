// Package metrics holds the Prometheus collectors of every component.
package metrics

import "github.com/goodnatureofminers/shieldtrace/internal/shielded/model"

const namespace = "shieldtrace"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func poolLabel(pool model.Pool) string {
	if pool == "" {
		return "unknown"
	}
	return string(pool)
}

func networkLabel(network model.Network) string {
	if network == "" {
		return "unknown"
	}
	return string(network)
}

// Package metrics defines the custom Prometheus metrics of the identity
// service. HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "identity"

// Login results used as the "result" label of LoginsTotal.
const (
	LoginExisting          = "existing"
	LoginCreated           = "created"
	LoginInvalidCredential = "invalid_credential"
	LoginCreationFailed    = "creation_failed"
	LoginError             = "error"
)

// LoginsTotal counts token exchanges.
// Labels:
//   - provider: identity provider ("google")
//   - result: one of the Login* constants
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of identity token exchanges, by provider and result.",
	},
	[]string{"provider", "result"},
)

// RoleGrantsTotal counts successful role grants.
var RoleGrantsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_grants_total",
		Help:      "Total number of roles granted through the admin API.",
	},
	[]string{"role"},
)

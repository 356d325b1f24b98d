package application

import "expvar"

// Process-wide counters published on /debug/vars
var (
	metricRegistered        = expvar.NewInt("accounts_registered")
	metricRegisterConflicts = expvar.NewInt("accounts_register_conflicts")
	metricLoginsSucceeded   = expvar.NewInt("logins_succeeded")
	metricLoginsFailed      = expvar.NewInt("logins_failed")
)

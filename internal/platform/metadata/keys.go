package metadata

// These keys are used for the 'key' column in the 'metadata' table.
const (
	// LastLeadRefreshAtKey stores the RFC3339 timestamp of the last completed
	// full lead-score refresh (either via the API or the background worker).
	LastLeadRefreshAtKey = "last_lead_refresh_at"

	// LastLeadRefreshCountKey stores the number of users processed by the
	// last completed full lead-score refresh.
	LastLeadRefreshCountKey = "last_lead_refresh_count"

	// LastShutdownAtKey stores the RFC3339 timestamp of the last clean shutdown.
	LastShutdownAtKey = "last_shutdown_at"
)

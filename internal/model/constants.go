package model

// Tag system URIs written by the alerting client when an issue is raised offline.
const (
	// FlagKeyOffline marks a record that was submitted while offline ("true"/"false").
	FlagKeyOffline = "https://my-url.com/criteria-one"
	// ValueKeySyncTime carries the time the offline record was synced.
	ValueKeySyncTime = "https://my-url.com/criteria-two"
)

const (
	// DefaultTimeZone is used when no target zone is configured.
	DefaultTimeZone = "Australia/Hobart"
	// DefaultCulture drives month/day names and numeric date order.
	DefaultCulture = "en-US"
	// DisplayFormat is the pattern used for human-readable output.
	DisplayFormat = "dd MMM yyyy HH:mm"
)

package constants

import "time"

const (
	// REFRESH_TOKEN_EXPIRY_HOURS is the refresh token lifetime. 168 hours = 7 days.
	REFRESH_TOKEN_EXPIRY_HOURS = 168

	// SNAPSHOT_CACHE_TTL bounds how stale a cached roster snapshot may be.
	SNAPSHOT_CACHE_TTL = 30 * time.Second

	// VIEW_STATE_TTL is how long an idle user's view state survives in Redis.
	VIEW_STATE_TTL = 24 * time.Hour
)

// Redis key prefixes. Each is followed by the owning user's uuid.
const (
	// USER_TOKEN_KEY_PREFIX stores the refresh token id of the user's
	// current session.
	USER_TOKEN_KEY_PREFIX = "user_token_"

	// SNAPSHOT_KEY_PREFIX caches rendered roster snapshots, keyed by
	// cache version and user uuid.
	SNAPSHOT_KEY_PREFIX = "snapshot_"

	// VIEW_STATE_KEY_PREFIX stores the user's current view state.
	VIEW_STATE_KEY_PREFIX = "view_state_"
)

// SNAPSHOT_VERSION_KEY holds the current snapshot cache version. A
// mutation overwrites it before returning, which retires every snapshot
// cached under the previous version at once.
const SNAPSHOT_VERSION_KEY = "snapshot_version"

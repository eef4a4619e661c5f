package constants

import "time"

const (
	SessionCacheKey = "frclink:session:%s"

	SessionCookieName = "session_id"
	SessionDuration   = 7 * 24 * time.Hour
)

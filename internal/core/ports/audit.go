package ports

import "time"

// Auth event types recorded on the audit trail.
const (
	EventRegistered  = "registered"
	EventLoginOK     = "login_ok"
	EventLoginFailed = "login_failed"
	EventWhitelisted = "whitelisted"
)

// AuthEvent is a single audit-trail entry describing an authentication
// outcome. Events are processed asynchronously off the request path.
type AuthEvent struct {
	Type  string
	Email string
	At    time.Time
}

// AuthEventSink accepts audit events for asynchronous processing.
type AuthEventSink interface {
	Enqueue(event AuthEvent)
}

package entities

// Principal is the authenticated identity attached to one request.
// It is derived from the session and valid only for that request.
type Principal struct {
	ID        string
	Role      Role
	SessionID string
}

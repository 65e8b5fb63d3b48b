package domain

// Claims is the decoded identity attached to a request by the auth middleware.
// Email is the only attribute this layer relies on; Raw keeps the full claim
// set for handlers that need provider-specific fields.
type Claims struct {
	Email string
	Raw   map[string]any
}

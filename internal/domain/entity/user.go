package entity

// UserProfile is the display profile associated with an identity.
type UserProfile struct {
	Name string `json:"name"`
}

// Identity is an authenticated caller reference. Absence of an Identity
// means the caller is anonymous.
type Identity struct {
	// Principal uniquely identifies the caller at the remote service.
	Principal string
	// Token is the raw session token forwarded on caller-scoped remote calls.
	Token string
}

package entity

// Principal is the authenticated identity resolved from a bearer token.
// It lives only for the duration of a request and is never persisted.
type Principal struct {
	ID    string
	Email string
}

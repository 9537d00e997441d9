package model

// Scope carries the authenticated caller identity through every use case call.
// All store operations are filtered by Scope.UserID.
type Scope struct {
	UserID   int64
	Username string
}

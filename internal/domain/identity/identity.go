package identity

import "github.com/google/uuid"

// Identity is the verified principal for one request. It is produced only by
// the credential verifier; handlers never construct one from request
// parameters.
type Identity struct {
	UserID uuid.UUID
	Claims map[string]any
}

package interfaces

import "net/http"

// AccountResolver maps an authenticated request to the opaque account
// key the core operates on. Authentication itself happens upstream;
// the core treats the resolved key as a precondition.
type AccountResolver interface {
	Resolve(r *http.Request) (string, error)
}

package handlers

import (
	"net/http"

	"github.com/google/uuid"
)

// SessionHeader carries the cart session identity. It is the
// server-side analog of the browser's single storage key.
const SessionHeader = "X-Session-ID"

// sessionID returns the caller's session id, minting one when absent.
// The id is always echoed on the response so the client can keep it.
func sessionID(w http.ResponseWriter, r *http.Request) string {

	id := r.Header.Get(SessionHeader)
	if id == "" {
		id = uuid.NewString()
	}

	w.Header().Set(SessionHeader, id)

	return id
}

// Package audit records every policy decision a wall session makes, so a
// refusal can be traced back after the fact. The trail is append-only and
// never feeds back into decisions.
package audit

import (
	"time"

	"github.com/arya-analytics/wall/pkg/wall"
	"github.com/google/uuid"
)

// Record is a single audited decision.
type Record struct {
	// Session is the key of the session that made the decision.
	Session uuid.UUID `json:"session"`
	// Entity is the key of the authenticated entity that issued the
	// request; uuid.Nil if the request carried no subject.
	Entity uuid.UUID `json:"entity"`
	// Op is the requested operation, "read" or "write".
	Op      string       `json:"op"`
	Subject wall.Subject `json:"subject"`
	Object  wall.Object  `json:"object"`
	// Decision is the policy outcome for a well-formed request.
	Decision wall.Decision `json:"decision"`
	// Error carries the error text for a malformed request; empty otherwise.
	Error string    `json:"error,omitempty"`
	Time  time.Time `json:"time"`
}

// Store is an append-only trail of decisions.
type Store interface {
	// Append writes r to the trail.
	Append(r Record) error
	// RetrieveBySession returns the records of a single session in the order
	// they were appended.
	RetrieveBySession(key uuid.UUID) ([]Record, error)
}

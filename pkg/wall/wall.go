// Package wall implements a Chinese Wall access control engine. A Session
// tracks which subjects have accessed which objects, and refuses read or
// write requests that would let information flow between competing firms.
package wall

import "sync"

type (
	// Subject is the index of an active entity (user/process) requesting
	// access. Valid subjects are in [0, Session.Subjects()).
	Subject int
	// Object is the index of a passive data item owned by exactly one firm.
	Object int
	// Firm is the index of a competitive entity owning a subset of objects.
	Firm int
)

// Session owns the ownership registry, the conflict graph, and the access
// history for a fixed population of subjects, objects, and firms. Sessions
// are independent of each other; multiple sessions can coexist in a single
// process.
//
// All decision methods take the session's lock for the full scan-and-mark
// sequence, so no two decisions can interleave.
type Session struct {
	mu        sync.Mutex
	subjects  int
	objects   int
	firms     int
	owners    *ownership
	conflicts *conflictGraph
	history   *history
}

// New opens a session over the given cardinalities. The ownership registry
// and conflict graph should be populated with SetOwner and AddConflict
// before the first Read or Write.
func New(subjects, objects, firms int) *Session {
	return &Session{
		subjects:  subjects,
		objects:   objects,
		firms:     firms,
		owners:    newOwnership(objects, firms),
		conflicts: newConflictGraph(firms),
		history:   newHistory(subjects, objects),
	}
}

// Subjects returns the number of subjects in the session.
func (s *Session) Subjects() int { return s.subjects }

// Objects returns the number of objects in the session.
func (s *Session) Objects() int { return s.objects }

// Firms returns the number of firms in the session.
func (s *Session) Firms() int { return s.firms }

// SetOwner assigns object to firm. The last assignment wins if called twice
// for the same object. Assigning an owner does not touch the access history.
func (s *Session) SetOwner(object Object, firm Firm) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owners.set(object, firm)
}

// AddConflict declares firms a and b competitors. The relation is symmetric
// and idempotent.
func (s *Session) AddConflict(a, b Firm) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conflicts.add(a, b)
}

// ConflictsWith returns the competitors of firm in ascending order. An empty
// slice means the firm has no declared competitors.
func (s *Session) ConflictsWith(firm Firm) ([]Firm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conflicts.competitors(firm)
}

// Reset clears the entire access history. The ownership registry and the
// conflict graph are left untouched, so the session behaves as if freshly
// constructed with the same registries.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.reset()
}

func (s *Session) checkSubject(subject Subject) error {
	if subject < 0 || int(subject) >= s.subjects {
		return outOfRangef("subject %d not in [0, %d)", subject, s.subjects)
	}
	return nil
}

func (s *Session) checkObject(object Object) error {
	if object < 0 || int(object) >= s.objects {
		return outOfRangef("object %d not in [0, %d)", object, s.objects)
	}
	return nil
}

func (s *Session) checkFirm(firm Firm) error {
	if firm < 0 || int(firm) >= s.firms {
		return outOfRangef("firm %d not in [0, %d)", firm, s.firms)
	}
	return nil
}

package wall

// Read decides a read request. The request is accepted unless some subject
// whose index sits in the conflict class of the object's owner has already
// accessed the object; on acceptance the access is recorded.
//
// The scan tests subject indices against the owner's conflict class of
// firms; the two index spaces are intended to coincide. Both decision scans
// are linear by construction: the scan order and membership test are the
// policy, not an implementation detail.
func (s *Session) Read(subject Subject, object Object) (Decision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(subject, object)
}

// Write decides a write request. A write is first subject to the read rule,
// then refused if the subject has previously accessed any object belonging
// to a different firm competing with the target's owner, since writing
// would launder that firm's information into the target.
func (s *Session) Write(subject Subject, object Object) (Decision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d, err := s.read(subject, object); err != nil || !d.Accept() {
		return d, err
	}

	owner, err := s.owners.owner(object)
	if err != nil {
		return Refused, err
	}

	for j := 0; j < s.objects; j++ {
		if !s.history.accessed(subject, Object(j)) {
			continue
		}
		jOwner, err := s.owners.owner(Object(j))
		if err != nil {
			return Refused, err
		}
		if jOwner != owner && s.conflicts.contains(owner, jOwner) {
			return Refused, nil
		}
	}

	s.history.mark(subject, object)
	return Accepted, nil
}

func (s *Session) read(subject Subject, object Object) (Decision, error) {
	if err := s.checkSubject(subject); err != nil {
		return Refused, err
	}
	if err := s.checkObject(object); err != nil {
		return Refused, err
	}

	owner, err := s.owners.owner(object)
	if err != nil {
		return Refused, err
	}

	for i := 0; i < s.subjects; i++ {
		if s.history.accessed(Subject(i), object) &&
			s.conflicts.contains(owner, Firm(i)) {
			return Refused, nil
		}
	}

	s.history.mark(subject, object)
	return Accepted, nil
}

package wall

// AccessedObject pairs an object with its owning firm in a report.
type AccessedObject struct {
	Object Object `json:"object"`
	Owner  Firm   `json:"owner"`
}

// ObjectsAccessedBy lists the objects subject has accessed since the last
// reset, each with its owning firm. Read-only.
func (s *Session) ObjectsAccessedBy(subject Subject) ([]AccessedObject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkSubject(subject); err != nil {
		return nil, err
	}
	accessed := make([]AccessedObject, 0)
	for j := 0; j < s.objects; j++ {
		if !s.history.accessed(subject, Object(j)) {
			continue
		}
		owner, err := s.owners.owner(Object(j))
		if err != nil {
			return nil, err
		}
		accessed = append(accessed, AccessedObject{Object: Object(j), Owner: owner})
	}
	return accessed, nil
}

// SubjectsThatAccessed lists the subjects that have accessed object since
// the last reset. Read-only.
func (s *Session) SubjectsThatAccessed(object Object) ([]Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkObject(object); err != nil {
		return nil, err
	}
	subjects := make([]Subject, 0)
	for i := 0; i < s.subjects; i++ {
		if s.history.accessed(Subject(i), object) {
			subjects = append(subjects, Subject(i))
		}
	}
	return subjects, nil
}

// ObjectsOwnedBy lists the portfolio of firm. Read-only.
func (s *Session) ObjectsOwnedBy(firm Firm) ([]Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkFirm(firm); err != nil {
		return nil, err
	}
	return s.owners.ownedBy(firm), nil
}

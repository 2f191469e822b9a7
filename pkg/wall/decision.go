package wall

// Decision is the outcome of a well-formed read or write request. It is a
// first-class policy result, distinct from the OutOfRange error.
type Decision uint8

const (
	// Refused means the policy disallows the request. The access history is
	// left unchanged by the refusing scan.
	Refused Decision = iota
	// Accepted means the request was granted and recorded in the access
	// history.
	Accepted
)

// Accept returns true if the decision granted the request.
func (d Decision) Accept() bool { return d == Accepted }

func (d Decision) String() string {
	if d == Accepted {
		return "accepted"
	}
	return "refused"
}

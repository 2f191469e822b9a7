package wall

import "github.com/cockroachdb/errors"

var (
	// OutOfRange is returned when a subject, object, or firm index falls
	// outside the cardinality the session was constructed with. It signals a
	// caller error, not a policy refusal; no history mutation occurs when it
	// is returned.
	OutOfRange = errors.New("[wall] - index out of range")
	// NotFound is returned when a registry has no session under the given
	// key.
	NotFound = errors.New("[wall] - session not found")
)

func outOfRangef(format string, args ...interface{}) error {
	return errors.Wrapf(OutOfRange, format, args...)
}

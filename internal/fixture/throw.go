package fixture

import "github.com/pkg/errors"

// Threading errors through every level of the point parser would bury the
// parsing logic. Instead the parser panics with a parseError and Parse
// recovers it into an ordinary error.

type parseError struct {
	error
}

// Panic with a parseError.
func fatalf(format string, args ...interface{}) {
	panic(parseError{errors.Errorf(format, args...)})
}

// Converts a recovered parseError back into an error. Any other panic is
// re-raised.
func handleParsePanicRecover(r interface{}) error {
	if r != nil {
		if pe, ok := r.(parseError); ok {
			return pe.error
		}
		panic(r)
	}
	return nil
}

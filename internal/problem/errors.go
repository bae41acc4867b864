package problem

import (
	"errors"
	"fmt"
)

// GrammarError reports a problem line that does not parse.
type GrammarError struct {
	Line   string
	Reason string
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("problem: bad line %q: %s", e.Line, e.Reason)
}

// IsGrammarError reports whether err is a GrammarError.
func IsGrammarError(err error) bool {
	var ge *GrammarError
	return errors.As(err, &ge)
}

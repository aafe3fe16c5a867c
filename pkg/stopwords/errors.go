package stopwords

import "errors"

// Resolution-time error kinds. Decision evaluation itself never fails; these
// are raised once when the configuration is resolved and are matchable with
// errors.Is.
var (
	// ErrInvalidNumericConfig marks a length threshold that is not an integer.
	ErrInvalidNumericConfig = errors.New("stopwords: invalid numeric configuration value")
	// ErrStopwordFileNotFound marks an unreadable custom list file path.
	ErrStopwordFileNotFound = errors.New("stopwords: cannot read stop words file")
	// ErrStopwordResourceNotFound marks a missing bundled resource.
	ErrStopwordResourceNotFound = errors.New("stopwords: cannot read stop words resources file")
)

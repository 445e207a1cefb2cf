package analysis

import "errors"

// ErrNotResume means the extracted text did not look like a resume.
var ErrNotResume = errors.New("document does not look like a resume")

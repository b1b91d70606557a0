package artifact

import "errors"

var (
	ErrEmptySequence  = errors.New("artifact: empty bit sequence")
	ErrArtifactExists = errors.New("artifact: file already exists")
)

package mix

import "errors"

var (
	// ErrZeroSampleRate reports a timeline constructed with a zero sample rate.
	ErrZeroSampleRate = errors.New("mix: zero sample rate")
	// ErrNegativeStart reports a clip scheduled before the timeline origin.
	ErrNegativeStart = errors.New("mix: negative clip start")
)

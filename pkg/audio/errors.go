package audio

import "errors"

var (
	ErrOddLength          = errors.New("audio: pcm data has an odd number of bytes")
	ErrInvalidChannels    = errors.New("audio: channel count must be positive")
	ErrInvalidSampleRate  = errors.New("audio: sample rate must be positive")
	ErrInconsistentBuffer = errors.New("audio: channels have different lengths")
)

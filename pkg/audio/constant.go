package audio

const (
	// DefaultSampleRate is the rate of the speech model output.
	DefaultSampleRate = 24000
	DefaultChannels   = 1

	wavHeaderSize = 44
	bitsPerSample = 16
	formatPCM     = 1
)

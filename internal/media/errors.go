package media

import "errors"

var (
	ErrImageRequired      = errors.New("media: image, mime type and prompt are required")
	ErrAudioRequired      = errors.New("media: audio and mime type are required")
	ErrTextRequired       = errors.New("media: text is required")
	ErrInvalidVoice       = errors.New("media: invalid voice")
	ErrReportRequired     = errors.New("media: report content is required")
	ErrInvalidAspectRatio = errors.New("media: invalid aspect ratio")
	ErrGenerationFailed   = errors.New("media: generation failed")
	ErrStorageFailed      = errors.New("media: storage failed")
	ErrVideoJobNotFound   = errors.New("media: video job not found")
)

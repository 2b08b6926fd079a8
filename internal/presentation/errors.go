package presentation

import "errors"

var (
	ErrMuteNotConfirmed = errors.New("muting narration requires confirmation")
)

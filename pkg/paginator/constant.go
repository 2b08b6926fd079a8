package paginator

const (
	DefaultPage  = 1
	DefaultLimit = 15
	// MaxLimit caps a page so one request never returns a whole history.
	MaxLimit = 100
)

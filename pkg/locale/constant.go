package locale

// Supported languages. Reports and narration are written in one of these.
const (
	PT = "pt"
	EN = "en"
)

var LangList = []string{PT, EN}

// DefaultLang is used when a request carries no supported language.
var DefaultLang = PT

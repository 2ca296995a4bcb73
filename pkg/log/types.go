package log

// ZapConfig mirrors the logger section of the service config.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // development | production
	Encoding     string // console | json
	ColorEnabled bool
}

type ctxKey string

// RequestIDKey is the context key the middleware stores the request id under.
const RequestIDKey ctxKey = "request_id"

const (
	ModeProduction   = "production"
	EncodingConsole  = "console"
	EncodingJSON     = "json"
	defaultLevelName = "info"
)

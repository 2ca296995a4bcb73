package middleware

import "time"

const (
	HeaderRequestID   = "X-Request-ID"
	DefaultMaxClients = 1000
	DefaultClientTTL  = 5 * time.Minute
)

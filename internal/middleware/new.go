package middleware

import (
	"spyglass-srv/config"
	"spyglass-srv/pkg/log"
	"spyglass-srv/pkg/scope"
)

type Middleware struct {
	l            log.Logger
	jwtManager   scope.Manager
	cookieConfig config.CookieConfig
}

func New(l log.Logger, jwtManager scope.Manager, cookieConfig config.CookieConfig) Middleware {
	return Middleware{
		l:            l,
		jwtManager:   jwtManager,
		cookieConfig: cookieConfig,
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/Annany2002/servo-panel/internal/auth"
)

const sessionStoreKey = "sessionStore"

// Sessions makes store available to handlers through Session.
func Sessions(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionStoreKey, store)
		c.Next()
	}
}

// Session loads the request's signed session from the store installed by Sessions.
func Session(c *gin.Context) (*sessions.Session, error) {
	v, ok := c.Get(sessionStoreKey)
	if !ok {
		return nil, auth.ErrSessionStoreMissing
	}
	store, ok := v.(sessions.Store)
	if !ok {
		return nil, auth.ErrSessionStoreMissing
	}
	return auth.LoadSession(store, c.Request)
}

package auth

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionName is the cookie that carries the browser session
	SessionName    = "procook_session"
	sessionUserKey = "user_id"
)

// NewSessionStore creates the signed cookie store backing browser sessions
func NewSessionStore(config *AuthConfig) sessions.Store {
	store := cookie.NewStore([]byte(config.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   config.SessionMaxAge,
		HttpOnly: true,
		Secure:   config.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	return store
}

// SessionMiddleware attaches the session to every request
func SessionMiddleware(store sessions.Store) gin.HandlerFunc {
	return sessions.Sessions(SessionName, store)
}

// StartSession binds the browser session to userID
func StartSession(c *gin.Context, userID uuid.UUID) error {
	session := sessions.Default(c)
	session.Clear()
	session.Set(sessionUserKey, userID.String())
	return session.Save()
}

// EndSession clears the browser session and expires its cookie
func EndSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}

func sessionPrincipal(c *gin.Context) (uuid.UUID, bool) {
	raw, ok := sessions.Default(c).Get(sessionUserKey).(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

package middleware

import "github.com/gin-gonic/gin"

// Keys used to store the authenticated principal in the request context.
const (
	userIDKey    = contextKey("userID")
	userEmailKey = contextKey("userEmail")
)

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetUserEmailFromContext returns the email claim of the authenticated user, if the token carried one.
func GetUserEmailFromContext(c *gin.Context) string {
	email, _ := c.Request.Context().Value(userEmailKey).(string)
	return email
}

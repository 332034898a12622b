package middleware

import "github.com/labstack/echo/v4"

// Context keys used to store operator and request metadata.
const (
	ContextKeyOperatorID    = "operator_id"
	ContextKeyOperatorEmail = "operator_email"
	ContextKeyOperatorRole  = "operator_role"
	ContextKeyRequestID     = "request_id"
)

func deny(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"status": "error", "message": message})
}

// OperatorIDFromContext returns the authenticated operator id, if any.
func OperatorIDFromContext(c echo.Context) string {
	id, _ := c.Get(ContextKeyOperatorID).(string)
	return id
}

// Package respond writes the uniform response envelope every endpoint uses:
// {"success": bool, "data": ..., "message": ...}.
package respond

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GenericMessage is returned when an unexpected failure carries no message of its own.
const GenericMessage = "Something went wrong!!"

// Envelope is the wire shape of every response.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Data writes a successful envelope carrying a payload.
func Data(c echo.Context, status int, data any) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

// Message writes a successful envelope carrying only a message (health checks).
func Message(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: true, Message: message})
}

// Fail writes a failed envelope with the given status and message.
func Fail(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: false, Message: message})
}

// Unexpected writes a 500 envelope from an unanticipated error, falling back to
// the generic message when the error carries none.
func Unexpected(c echo.Context, err error) error {
	msg := GenericMessage
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, Envelope{Success: false, Message: msg})
}

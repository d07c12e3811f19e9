package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the JSON body returned by the contact API
type Response struct {
	Message   string `json:"message"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message, messageID string) {
	c.JSON(code, Response{
		Message:   message,
		MessageID: messageID,
	})
}

// Error sends an error response. detail may be empty.
func Error(c *gin.Context, code int, message, detail string) {
	c.JSON(code, Response{
		Message: message,
		Error:   detail,
	})
}

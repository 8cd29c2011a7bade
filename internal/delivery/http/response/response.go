package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope every endpoint answers with, except the
// HTML pages.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	Warnings  interface{} `json:"warnings,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

func requestID(c *gin.Context) string {
	id, _ := c.Get("RequestID")
	s, _ := id.(string)
	return s
}

func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// SuccessWithWarnings is Success plus non-blocking remarks about the data.
func SuccessWithWarnings(c *gin.Context, code int, message string, data, warnings interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Warnings:  warnings,
		RequestID: requestID(c),
	})
}

func Error(c *gin.Context, code int, message string, err interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: requestID(c),
	})
}

// HTML writes a rendered page as-is.
func HTML(c *gin.Context, code int, page []byte) {
	c.Data(code, "text/html; charset=utf-8", page)
}

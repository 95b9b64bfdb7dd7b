package response

import (
	"github.com/gin-gonic/gin"

	"github.com/Djiento/ActionnaireInscrit/internal/error/code"
)

// Response is the uniform JSON envelope of the API endpoints.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success writes a success envelope.
func Success(c *gin.Context, data interface{}) {
	c.JSON(code.StatusOK, Response{
		Code:    code.ErrSuccess,
		Message: code.GetMessage(code.ErrSuccess),
		Data:    data,
	})
}

// Fail writes a failure envelope using the code's default message.
func Fail(c *gin.Context, errorCode int, data interface{}) {
	c.JSON(code.GetStatus(errorCode), Response{
		Code:    errorCode,
		Message: code.GetMessage(errorCode),
		Data:    data,
	})
}

// FailWithMessage writes a failure envelope with a custom message.
func FailWithMessage(c *gin.Context, errorCode int, message string, data interface{}) {
	c.JSON(code.GetStatus(errorCode), Response{
		Code:    errorCode,
		Message: message,
		Data:    data,
	})
}

// ErrorPage renders the shared error template for transport-level failures
// (404/500). The 500 path is only reached after services have rolled back.
func ErrorPage(c *gin.Context, errorCode int) {
	c.HTML(code.GetStatus(errorCode), "error.html", gin.H{
		"Error": code.GetMessage(errorCode),
	})
}

package utils

import "github.com/gin-gonic/gin"

// JSONResponse defines the uniform structure for API responses. Message
// carries the machine-readable signal string; human-readable localized text
// lives inside Data when applicable.
type JSONResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Respond writes a JSON response with the given status code.
func Respond(ctx *gin.Context, status int, code int, message string, data interface{}) {
	ctx.JSON(status, JSONResponse{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// Success returns a standard success response.
func Success(ctx *gin.Context, signal string, data interface{}) {
	Respond(ctx, 200, 0, signal, data)
}

// Error returns a standard error response.
func Error(ctx *gin.Context, status int, code int, signal string) {
	Respond(ctx, status, code, signal, nil)
}

// Reject returns a business rejection with a localized display message.
func Reject(ctx *gin.Context, status int, code int, signal, detail string) {
	var data interface{}
	if detail != "" {
		data = gin.H{"detail": detail}
	}
	Respond(ctx, status, code, signal, data)
}

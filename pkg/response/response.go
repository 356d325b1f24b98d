package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the minimal body every endpoint returns
type APIResponse struct {
	Message string `json:"message"`
}

// Success writes body with the given status
func Success[T any](ctx *gin.Context, status int, body T) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, body)
}

// Message writes {"message": msg} with the given status
func Message(ctx *gin.Context, status int, msg string) {
	Success(ctx, status, APIResponse{Message: msg})
}

// Error aborts the chain and writes {"message": msg}
func Error(ctx *gin.Context, status int, msg string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	ctx.AbortWithStatusJSON(status, APIResponse{Message: msg})
}

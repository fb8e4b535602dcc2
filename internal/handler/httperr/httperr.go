package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int
	Body   any
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, body any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: Response{Status: status, Body: body},
	})
	c.AbortWithStatusJSON(status, body)
}

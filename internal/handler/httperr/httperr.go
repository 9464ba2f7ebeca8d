package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the body of every non-2xx widget response.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}

func New(status int, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	return resp
}

// Abort writes msg to the client and records err on the context, where
// ErrorHandler logs it. err never reaches the response body.
func Abort(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("httperr.Abort: err cannot be nil")
	}

	resp := New(status, msg)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

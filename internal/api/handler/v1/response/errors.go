package response

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the wire shape of every error response. The internal error is
// kept for logging and never serialized.
type Err struct {
	StatusCode int    `json:"-"`
	Msg        string `json:"error"`

	internalErr error
}

func (e *Err) Error() string {
	return fmt.Sprintf("%v - %v", e.StatusCode, e.Msg)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode:  http.StatusBadRequest,
		Msg:         err.Error(),
		internalErr: err,
	}
}

func ErrUnauthorized(msg string) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        msg,
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		StatusCode:  http.StatusUnauthorized,
		Msg:         "invalid email or password",
		internalErr: err,
	}
}

func ErrNotFound(resource, key string, value interface{}) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Msg:        fmt.Sprintf("%v not found (%v=%v)", resource, key, value),
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		StatusCode:  http.StatusForbidden,
		Msg:         "not authorized",
		internalErr: err,
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode:  http.StatusInternalServerError,
		Msg:         "internal server error",
		internalErr: err,
	}
}

// RenderErr writes the error response. Server-side errors are logged with
// the request id; their internals never reach the client.
func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("path", ctx.FullPath()),
			zap.Error(err.internalErr),
		)
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

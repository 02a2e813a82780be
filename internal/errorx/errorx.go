package errorx

import (
	"context"
	"errors"
	"net/http"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

const internalMessage = "Internal Server Error"

// CodeError carries the HTTP status and the message shown to clients. Err is
// the internal cause and is only ever logged.
type CodeError struct {
	Code    int
	Message string
	Err     error
}

// ErrorBody is the JSON body written for every failed request.
type ErrorBody struct {
	Error string `json:"error"`
}

func (e *CodeError) Error() string {
	return e.Message
}

func (e *CodeError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *CodeError {
	return &CodeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewBadRequest(message string, err error) *CodeError {
	return New(http.StatusBadRequest, message, err)
}

func NewNotFound(message string, err error) *CodeError {
	return New(http.StatusNotFound, message, err)
}

func NewInternal(message string, err error) *CodeError {
	return New(http.StatusInternalServerError, message, err)
}

// Handler maps an error to a status code and a JSON body. Unknown errors
// become a generic 500.
func Handler(ctx context.Context, err error) (int, any) {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		if codeErr.Err != nil {
			logx.WithContext(ctx).Errorf("request failed: %s: %v", codeErr.Message, codeErr.Err)
		}
		return codeErr.Code, ErrorBody{Error: codeErr.Message}
	}

	logx.WithContext(ctx).Errorf("unhandled error: %v", err)
	return http.StatusInternalServerError, ErrorBody{Error: internalMessage}
}

// Register installs Handler as go-zero's error handler.
func Register() {
	httpx.SetErrorHandlerCtx(Handler)
}

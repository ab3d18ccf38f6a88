package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentwire/article-service/internal/apperr"
)

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	})
}

// RespondAppError maps an apperr-carrying chain onto the wire envelope.
func RespondAppError(c *gin.Context, err error) {
	e := apperr.From(err)
	RespondError(c, e.Status, e.Code, e)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CodeInvalid  = "invalid"
	CodeInternal = "internal"
)

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type successBody struct {
	Data interface{} `json:"data"`
}

type errorBody struct {
	Error APIError `json:"error"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, successBody{Data: data})
}

func Error(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorBody{Error: APIError{Code: code, Message: message}})
}

func Invalid(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, CodeInvalid, message)
}

func Internal(c *gin.Context) {
	Error(c, http.StatusInternalServerError, CodeInternal, "internal error")
}

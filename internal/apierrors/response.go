package apierrors

import (
	"errors"
	"net/http"
	"strings"

	"outreach-server/internal/observability"

	"github.com/gin-gonic/gin"
)

var (
	logger      = observability.NewNopLogger()
	exposeStack = true
)

// Configure sets the logger and whether 500 responses carry the internal error chain.
func Configure(l *observability.Logger, production bool) {
	if l != nil {
		logger = l
	}
	exposeStack = !production
}

// ErrorResponse is the JSON structure returned to API clients
type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Code    string   `json:"code,omitempty"`
	Stack   []string `json:"stack,omitempty"`
}

// respond writes the error response and logs correlation info
func respond(c *gin.Context, statusCode int, code, message string, internalErr error) {
	ctx := c.Request.Context()
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "status_code", Value: statusCode},
		observability.Field{Key: "error_code", Value: code},
		observability.Field{Key: "error_message", Value: message},
	)

	body := ErrorResponse{Error: message, Code: code}
	if statusCode >= http.StatusInternalServerError {
		logger.Error(ctx, "API error response", internalErr)
		if exposeStack && internalErr != nil {
			body.Stack = errorChain(internalErr)
		}
	} else {
		logger.Info(ctx, "API error response")
	}

	c.AbortWithStatusJSON(statusCode, body)
}

func errorChain(err error) []string {
	var chain []string
	for e := err; e != nil; e = errors.Unwrap(e) {
		chain = append(chain, e.Error())
	}
	return chain
}

// RespondWithError maps err and writes the sanitized response.
//
//	if err != nil {
//	    apierrors.RespondWithError(c, err)
//	    return
//	}
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	apiErr := MapError(err)
	respond(c, apiErr.StatusCode, apiErr.Code, apiErr.Message, apiErr.Err)
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	respond(c, http.StatusNotFound, CodeNotFound, message, nil)
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, code, message string) {
	respond(c, http.StatusBadRequest, code, message, nil)
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	respond(c, http.StatusUnauthorized, CodeUnauthorized, message, nil)
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, code, message string) {
	respond(c, http.StatusConflict, code, message, nil)
}

// InternalError sends a sanitized 500 response
func InternalError(c *gin.Context, internalErr error) {
	respond(c, http.StatusInternalServerError, CodeInternalError, "An internal error occurred. Please try again later.", internalErr)
}

// NoRoute renders unknown paths in the API error shape.
func NoRoute(c *gin.Context) {
	respond(c, http.StatusNotFound, CodeNotFound, "Route not found: "+c.Request.Method+" "+c.Request.URL.Path, nil)
}

// NoMethod renders 405 for a known path with the wrong verb.
func NoMethod(c *gin.Context) {
	allow := strings.TrimSpace(c.Writer.Header().Get("Allow"))
	msg := "Method not allowed"
	if allow != "" {
		msg += ", allowed: " + allow
	}
	respond(c, http.StatusMethodNotAllowed, CodeMethodNotAllow, msg, nil)
}

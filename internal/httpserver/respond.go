package httpserver

import (
	"errors"
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"

	"shopapi/internal/domain"
	"shopapi/internal/logging"
)

// Error codes exposed in response bodies. Each maps to a fixed status code.
const (
	codeBadRequest        = "BAD_REQUEST"
	codeUnauthorized      = "UNAUTHORIZED"
	codeNotFound          = "NOT_FOUND"
	codeConflict          = "CONFLICT"
	codeEmptyCart         = "EMPTY_CART"
	codeInsufficientStock = "INSUFFICIENT_STOCK"
	codeInvalidTransition = "INVALID_STATUS_TRANSITION"
	codeInternal          = "INTERNAL_ERROR"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func respondErrorCode(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

// respondError maps a domain error onto the HTTP error taxonomy.
func respondError(c *gin.Context, err error) {
	var (
		stockErr      *domain.InsufficientStockError
		transitionErr *domain.StatusTransitionError
	)
	switch {
	case errors.As(err, &stockErr):
		respondErrorCode(c, http.StatusBadRequest, codeInsufficientStock, upperFirst(err.Error()))
	case errors.As(err, &transitionErr):
		respondErrorCode(c, http.StatusBadRequest, codeInvalidTransition, upperFirst(err.Error()))
	case errors.Is(err, domain.ErrEmptyCart):
		respondErrorCode(c, http.StatusBadRequest, codeEmptyCart, "Cart is empty")
	case errors.Is(err, domain.ErrAlreadyExists):
		respondErrorCode(c, http.StatusConflict, codeConflict, upperFirst(err.Error()))
	case errors.Is(err, domain.ErrNotFound):
		respondErrorCode(c, http.StatusNotFound, codeNotFound, upperFirst(err.Error()))
	case errors.Is(err, domain.ErrBadRequest):
		respondErrorCode(c, http.StatusBadRequest, codeBadRequest, upperFirst(err.Error()))
	default:
		logging.From(c).Error("unhandled error", "error", err)
		respondErrorCode(c, http.StatusInternalServerError, codeInternal, "An unexpected error occurred")
	}
}

// respondBindError covers malformed or schema-invalid request bodies.
func respondBindError(c *gin.Context, err error) {
	logging.From(c).Info("bind failed", "error", err)
	respondErrorCode(c, http.StatusBadRequest, codeBadRequest, "Invalid request body")
}

func upperFirst(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

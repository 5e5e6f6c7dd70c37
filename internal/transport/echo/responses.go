package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "backup-admin/pkg/errors"
)

// MessageResponse is the body of 404s and 500s: a message, nothing else.
type MessageResponse struct {
	Message string `json:"message"`
}

// FailureResponse is the body of client-caused failures: the resource-level
// message plus field-level detail.
type FailureResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func respondBadRequest(c echo.Context, message string, err error) error {
	return c.JSON(http.StatusBadRequest, FailureResponse{
		Message: message,
		Error:   err.Error(),
	})
}

// respondStoreError translates a store error into the public response.
// Validation and conflict detail is client-caused and safe to return;
// anything unexpected is logged and masked behind failMsg.
func respondStoreError(c echo.Context, err error, badMsg, failMsg string) error {
	var vErr *apperrors.ValidationError
	if errors.As(err, &vErr) {
		return respondBadRequest(c, badMsg, vErr)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return c.JSON(http.StatusNotFound, MessageResponse{Message: appErr.Message})
		case errors.Is(err, apperrors.ErrConflict):
			return c.JSON(http.StatusConflict, FailureResponse{
				Message: badMsg,
				Error:   appErr.Message,
			})
		}
	}

	return respondInternal(c, err, failMsg)
}

// respondReadError masks every read failure behind a generic 500.
func respondReadError(c echo.Context, err error, failMsg string) error {
	return respondInternal(c, err, failMsg)
}

// respondInternal logs the cause and returns only the public message.
func respondInternal(c echo.Context, err error, failMsg string) error {
	appErr := apperrors.Internal(failMsg, err)
	c.Logger().Error(appErr)
	return c.JSON(http.StatusInternalServerError, MessageResponse{Message: appErr.Message})
}

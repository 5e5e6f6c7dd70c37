package echo

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	contentTypeJSON          = "application/json"
	maxStrictBodyBytes int64 = 1 << 20

	errContentTypeJSONRequired = "Content-Type must be application/json"
	errInvalidRequestBody      = "invalid request body"
)

// bindStrictJSON decodes the request body into dst, rejecting unknown fields
// so server-owned fields supplied by the client fail instead of being
// silently trusted or dropped.
func bindStrictJSON(c echo.Context, dst interface{}) error {
	if !strings.HasPrefix(strings.ToLower(c.Request().Header.Get(echo.HeaderContentType)), contentTypeJSON) {
		return errors.New(errContentTypeJSONRequired)
	}

	body := io.LimitReader(c.Request().Body, maxStrictBodyBytes)
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return errors.New(errInvalidRequestBody)
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return errors.New(errInvalidRequestBody)
	}

	return nil
}

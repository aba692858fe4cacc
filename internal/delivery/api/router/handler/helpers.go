package handler

import (
	"net/http"

	"learnhub/internal/delivery/api/response"
	"learnhub/internal/delivery/api/validator"
	"learnhub/internal/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the body into req and runs the struct rules,
// writing the 400 response itself when either step fails.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BadRequest(c, "INVALID_INPUT", "Request body could not be parsed")
	}

	if err := c.Validate(req); err != nil {
		var fields validator.FieldErrors
		if errors.As(err, &fields) {
			return false, response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", fields)
		}

		return false, response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	return true, nil
}

func invalidPageQuery(c echo.Context) error {
	return response.BadRequest(c, "INVALID_QUERY", "page and limit must be integers")
}

package middleware

import (
	"fmt"
	"net/http"

	"github.com/hotelhub/booking-service/internal/dto"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error as a dto.ErrorResponse so clients get a
// uniform JSON shape for validation failures, conflicts and internal errors
// alike.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		switch m := he.Message.(type) {
		case string:
			msg = m
		case error:
			msg = m.Error()
		default:
			msg = fmt.Sprintf("%v", m)
		}
	}

	_ = c.JSON(code, dto.ErrorResponse{Message: msg})
}

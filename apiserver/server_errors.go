package apiserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alphagov/paas-nlu-usage/nluusage"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

var statusByKind = map[nluusage.Kind]int{
	nluusage.MissingParameter:     http.StatusBadRequest,
	nluusage.InvalidParameter:     http.StatusBadRequest,
	nluusage.AuthenticationFailed: http.StatusUnauthorized,
	nluusage.OrganizationNotFound: http.StatusNotFound,
	nluusage.TransportFailure:     http.StatusBadGateway,
}

func errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	resp := ErrorResponse{
		Error: "internal server error",
	}

	var (
		clientErr *nluusage.Error
		httpErr   *echo.HTTPError
	)
	switch {
	case errors.As(err, &clientErr):
		if status, ok := statusByKind[clientErr.Kind]; ok {
			code = status
		}
		resp.Error = clientErr.Message
		resp.Kind = string(clientErr.Kind)
	case errors.As(err, &httpErr):
		code = httpErr.Code
		resp.Error = fmt.Sprintf("%v", httpErr.Message)
	}

	c.Logger().Error(err)
	if c.Response().Committed {
		return
	}
	if err := c.JSON(code, resp); err != nil {
		c.Logger().Error(err)
	}
}

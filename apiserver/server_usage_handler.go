package apiserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/alphagov/paas-nlu-usage/nluusage"
)

func UsageHandler(client nluusage.UsageClient) echo.HandlerFunc {
	return func(c echo.Context) error {
		opts := nluusage.GetUsageOptions{
			Month: c.QueryParam("month"),
		}
		if billableOnly := c.QueryParam("billable_only"); billableOnly != "" {
			b, err := strconv.ParseBool(billableOnly)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "billable_only must be true or false")
			}
			opts.BillableOnly = b
		}

		snapshot, err := client.GetUsage(c.Request().Context(), opts)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, snapshot)
	}
}

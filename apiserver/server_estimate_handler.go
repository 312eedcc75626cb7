package apiserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alphagov/paas-nlu-usage/nluusage"
)

type EstimateRequest struct {
	FeatureCount     int64  `json:"feature_count"`
	Plan             string `json:"plan"`
	IncludeFreeUsage bool   `json:"include_free_usage"`
	Payload          string `json:"payload"`
}

func EstimateHandler(client nluusage.UsageClient, metrics *estimateMetrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req EstimateRequest
		if err := c.Bind(&req); err != nil {
			return err
		}

		estimate, err := client.EstimateCost(c.Request().Context(), nluusage.EstimateCostOptions{
			FeatureCount:     req.FeatureCount,
			Plan:             req.Plan,
			IncludeFreeUsage: req.IncludeFreeUsage,
			Payload:          req.Payload,
		})
		if err != nil {
			return err
		}

		metrics.observe(estimate.Plan, estimate.ItemCost)
		return c.JSON(http.StatusOK, estimate)
	}
}

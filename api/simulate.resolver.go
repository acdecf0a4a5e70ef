package api

import (
	"assetplanner/internal/app"
	"assetplanner/internal/config"
	"assetplanner/internal/domain"
	"assetplanner/internal/logger"
	"context"
	"errors"

	"github.com/gin-gonic/gin"
)

// SimulateRequest carries the raw man-denominated inputs under the
// same keys as the persisted config document. Omitted keys fall back
// to the document defaults.
type SimulateRequest config.Config

type SimulateResponse struct {
	*app.RunSimulationResult
}

func (m ApiHandler) runSimulation(c *gin.Context) (*app.RunSimulationResult, bool) {
	requestBody := SimulateRequest(config.Default())
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return nil, false
	}

	ctx, profile := domain.NewCtxWithProfile(context.Background())
	ctx = context.WithValue(ctx, logger.ContextKey, m.Logger)
	defer func() {
		profile.End()
		if bytes, err := profile.ToJsonBytes(); err == nil {
			m.Logger.Debugw("simulation profile", "profile", string(bytes))
		}
	}()

	result, err := m.SimulationHandler.Run(ctx, app.RunSimulationInput{
		Inputs: app.InputsFromConfig(config.Config(requestBody)),
	})

	var rangeErr domain.InvalidRangeError
	if errors.As(err, &rangeErr) {
		returnErrorJsonCode(rangeErr, c, 400)
		return nil, false
	}
	if err != nil {
		returnErrorJson(err, c)
		return nil, false
	}

	return result, true
}

func (m ApiHandler) simulate(c *gin.Context) {
	result, ok := m.runSimulation(c)
	if !ok {
		return
	}

	c.JSON(200, SimulateResponse{result})
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voxdrive/voxdrive-backend/dto"
	"github.com/voxdrive/voxdrive-backend/usecases"
)

type OutcomeUriInput struct {
	OutcomeId string `uri:"outcome_id" binding:"required,uuid"`
}

func handleAddAcceptableAlternate(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uriInput OutcomeUriInput
		if err := c.ShouldBindUri(&uriInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var data dto.AlternateBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewExpectedOutcomeUsecase()
		outcome, err := usecase.AddAcceptableAlternate(ctx, uriInput.OutcomeId, data.Alternate)

		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"expected_outcome": dto.AdaptExpectedOutcomeDto(outcome)})
	}
}

func handleRemoveAcceptableAlternate(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uriInput OutcomeUriInput
		if err := c.ShouldBindUri(&uriInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var data dto.AlternateBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewExpectedOutcomeUsecase()
		outcome, err := usecase.RemoveAcceptableAlternate(ctx, uriInput.OutcomeId, data.Alternate)

		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"expected_outcome": dto.AdaptExpectedOutcomeDto(outcome)})
	}
}

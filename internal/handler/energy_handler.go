package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/protektiq/lifeflow/internal/domain"
)

type EnergyHandler struct {
	energyRepo domain.EnergyRepository
}

func NewEnergyHandler(energyRepo domain.EnergyRepository) *EnergyHandler {
	return &EnergyHandler{energyRepo: energyRepo}
}

type setEnergyRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Level  int    `json:"level" binding:"required"`
}

// HandleSetEnergy records the reported energy level for a date. Plans
// generated afterwards for that date read it during synthesis.
func (h *EnergyHandler) HandleSetEnergy(c *gin.Context) {
	ctx := c.Request.Context()

	var req setEnergyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", "user_id must be a valid UUID")
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", "date must be YYYY-MM-DD")
		return
	}

	if err := h.energyRepo.Set(ctx, userID, date, req.Level); err != nil {
		if errors.Is(err, domain.ErrInvalidEnergyLevel) {
			respondError(c, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "storage_error", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "recorded", "level": req.Level})
}

package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Rabsxd/water-reminder-app-sub001/services"
	"github.com/Rabsxd/water-reminder-app-sub001/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HydrationController struct {
	Hydration *services.HydrationService
	RT        *services.RealtimeHub
}

func NewHydrationController(h *services.HydrationService, rt *services.RealtimeHub) *HydrationController {
	return &HydrationController{Hydration: h, RT: rt}
}

// respondRejection maps a validation rejection onto the right HTTP status so
// the client can switch on the reason code. Anything else is a 500.
func respondRejection(c *gin.Context, err error) {
	var rej *utils.Rejection
	if errors.As(err, &rej) {
		status := http.StatusUnprocessableEntity
		if rej.Reason == utils.ReasonNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"rejection": rej})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// GET /hydration/today
func (hc *HydrationController) Today(c *gin.Context) {
	uid := c.GetUint("userID")

	snap, err := hc.Hydration.Today(uid, time.Now())
	if err != nil {
		respondRejection(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

type addEntryReq struct {
	AmountMl *int   `json:"amount_ml" binding:"required"`
	Kind     string `json:"kind" binding:"required,oneof=quick custom"`
}

// POST /hydration/entries
func (hc *HydrationController) AddEntry(c *gin.Context) {
	uid := c.GetUint("userID")

	var req addEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		// A missing or non-numeric amount never reaches the engine.
		c.JSON(http.StatusBadRequest, gin.H{"rejection": &utils.Rejection{
			Reason: utils.ReasonNotANumber, Field: "amount_ml", Message: "amount must be a number",
		}})
		return
	}

	snap, err := hc.Hydration.AddEntry(uid, *req.AmountMl, req.Kind, time.Now())
	if err != nil {
		respondRejection(c, err)
		return
	}

	if hc.RT != nil {
		hc.RT.BroadcastIntake(uid, snap)
	}
	c.JSON(http.StatusCreated, snap)
}

// DELETE /hydration/entries/:id
func (hc *HydrationController) RemoveEntry(c *gin.Context) {
	uid := c.GetUint("userID")

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	snap, err := hc.Hydration.RemoveEntry(uid, entryID, time.Now())
	if err != nil {
		respondRejection(c, err)
		return
	}

	if hc.RT != nil {
		hc.RT.BroadcastIntake(uid, snap)
	}
	c.JSON(http.StatusOK, snap)
}

// POST /hydration/reset
func (hc *HydrationController) Reset(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := hc.Hydration.ResetAll(uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

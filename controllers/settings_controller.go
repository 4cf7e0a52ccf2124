package controllers

import (
	"net/http"

	"github.com/Rabsxd/water-reminder-app-sub001/services"
	"github.com/Rabsxd/water-reminder-app-sub001/utils"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	Hydration *services.HydrationService
}

func NewSettingsController(h *services.HydrationService) *SettingsController {
	return &SettingsController{Hydration: h}
}

// GET /hydration/settings
func (sc *SettingsController) Get(c *gin.Context) {
	uid := c.GetUint("userID")

	settings, err := sc.Hydration.GetSettings(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// PUT /hydration/settings — partial, all-or-nothing. The notification
// scheduler on the phone re-reads the response to reschedule reminders.
func (sc *SettingsController) Update(c *gin.Context) {
	uid := c.GetUint("userID")

	var upd services.SettingsUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"rejection": &utils.Rejection{
			Reason: utils.ReasonNotANumber, Message: "settings fields must be numbers or booleans",
		}})
		return
	}

	settings, err := sc.Hydration.UpdateSettings(uid, upd)
	if err != nil {
		respondRejection(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// GET /hydration/target/recommended?weight_kg=70
func (sc *SettingsController) RecommendedTarget(c *gin.Context) {
	var q struct {
		WeightKg float64 `form:"weight_kg" binding:"required,gt=0"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weight_kg query param required"})
		return
	}

	target, err := utils.RecommendedDailyTargetMl(q.WeightKg)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommended_target_ml": target})
}

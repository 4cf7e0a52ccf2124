// controllers/analytics_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/Rabsxd/water-reminder-app-sub001/services"
	"github.com/Rabsxd/water-reminder-app-sub001/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Svc *services.AnalyticsService
}

func NewAnalyticsController(svc *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Svc: svc}
}

// GET /analytics/summary?period=week|month
func (h *AnalyticsController) GetSummary(c *gin.Context) {
	uid := c.GetUint("userID")

	period := c.DefaultQuery("period", "week")
	out, err := h.Svc.Summary(uid, period, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /analytics/streak
func (h *AnalyticsController) GetStreak(c *gin.Context) {
	uid := c.GetUint("userID")

	streak, err := h.Svc.Streak(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"streak": streak})
}

// GET /analytics/history — finalized days, newest first.
func (h *AnalyticsController) GetHistory(c *gin.Context) {
	uid := c.GetUint("userID")

	history, err := h.Svc.History(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}

// GET /analytics/history/export — CSV to S3, returns the public URL.
func (h *AnalyticsController) ExportHistory(c *gin.Context) {
	uid := c.GetUint("userID")

	data, err := h.Svc.ExportCSV(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	url, err := utils.UploadHistoryExport(uid, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// POST /analytics/report/weekly — mail the weekly summary to the account email.
func (h *AnalyticsController) SendWeeklyReport(c *gin.Context) {
	uid := c.GetUint("userID")
	email := c.GetString("email")

	body, err := h.Svc.WeeklyReport(uid, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := utils.SendWeeklyReportEmail(email, body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "weekly report sent"})
}

package controllers

import (
	"net/http"
	"time"

	"github.com/Rabsxd/water-reminder-app-sub001/services"

	"github.com/gin-gonic/gin"
)

type ReminderController struct {
	Reminders *services.ReminderService
}

func NewReminderController(r *services.ReminderService) *ReminderController {
	return &ReminderController{Reminders: r}
}

// GET /reminders/status — the phone's scheduler polls this to decide whether
// the next local notification is permitted right now.
func (rc *ReminderController) Status(c *gin.Context) {
	uid := c.GetUint("userID")

	status, err := rc.Reminders.Status(uid, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}

// POST /reminders/send — server-side push, respecting the wake window.
func (rc *ReminderController) Send(c *gin.Context) {
	uid := c.GetUint("userID")

	sent, err := rc.Reminders.SendReminder(uid, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": sent})
}

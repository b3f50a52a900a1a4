package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/models"
	"backend/services"
)

// NotificationController owns the reminder scheduler and the Telegram
// client. It is constructed once at startup and injected into the router;
// no package-level state.
type NotificationController struct {
	notifier  *services.TelegramService
	scheduler *services.NotificationScheduler
}

func NewNotificationController(notifier *services.TelegramService, scheduler *services.NotificationScheduler) *NotificationController {
	return &NotificationController{notifier: notifier, scheduler: scheduler}
}

// Start generates a schedule, sends the daily overview, and registers a
// reminder per meal.
func (n *NotificationController) Start(c *gin.Context) {
	if !n.notifier.Configured() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID must be set"})
		return
	}

	var req services.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, _, err := services.GenerateScheduleFromRequest(req)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "issues": verr.Issues})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := n.notifier.SendDailySchedule(schedule); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	count := n.scheduler.ScheduleMeals(schedule)
	c.JSON(http.StatusOK, gin.H{"message": "meal reminders scheduled", "scheduled": count})
}

// Stop clears all pending reminders.
func (n *NotificationController) Stop(c *gin.Context) {
	n.scheduler.Clear()
	c.Status(http.StatusNoContent)
}

// Test sends a probe message to verify the Telegram connection.
func (n *NotificationController) Test(c *gin.Context) {
	if err := n.notifier.TestConnection(); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "test notification sent"})
}

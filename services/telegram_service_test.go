package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backend/models"
)

func TestTelegramServiceConfigured(t *testing.T) {
	if NewTelegramService("", "").Configured() {
		t.Error("empty credentials reported as configured")
	}
	if !NewTelegramService("token", "42").Configured() {
		t.Error("full credentials reported as unconfigured")
	}
}

func TestTelegramSendMessage(t *testing.T) {
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bottoken/sendMessage" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("bad payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewTelegramService("token", "42")
	svc.baseURL = server.URL + "/bottoken"

	if err := svc.SendMessage("hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["chat_id"] != "42" || got["text"] != "hello" || got["parse_mode"] != "HTML" {
		t.Errorf("payload = %v", got)
	}
}

func TestTelegramSendMessageAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"description":"Unauthorized"}`))
	}))
	defer server.Close()

	svc := NewTelegramService("bad", "42")
	svc.baseURL = server.URL + "/botbad"

	err := svc.SendMessage("hello")
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	if !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "Unauthorized") {
		t.Errorf("error %q does not surface status and body", err)
	}
}

func TestTelegramSendMessageUnconfigured(t *testing.T) {
	if err := NewTelegramService("", "").SendMessage("hello"); err == nil {
		t.Error("expected error when credentials are missing")
	}
}

func TestFormatMealMessage(t *testing.T) {
	meal := models.ScheduledMeal{
		Number: 3, TimeLabel: "07:15 PM", Type: models.MealPostWorkout,
		ProteinG: 51, CarbsG: 53, FatG: 20, Calories: 596,
		Reasoning: "MPS peak window (1-4hr post-workout)",
	}
	msg := formatMealMessage(meal)
	for _, want := range []string{"MEAL 3", "07:15 PM", "Post Workout", "596", "51g", "53g", "20g"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestFormatScheduleMessage(t *testing.T) {
	schedule, _ := GenerateSchedule(trainingDayUser(4))
	msg := formatScheduleMessage(schedule)

	if !strings.Contains(msg, "Daily Totals:") {
		t.Errorf("message missing totals: %q", msg)
	}
	for _, meal := range schedule.Meals {
		if !strings.Contains(msg, meal.TimeLabel) {
			t.Errorf("message missing meal at %s", meal.TimeLabel)
		}
	}
}

func TestNotificationSchedulerJobs(t *testing.T) {
	scheduler := NewNotificationScheduler(NewTelegramService("token", "42"))
	schedule, _ := GenerateSchedule(trainingDayUser(4))

	if n := scheduler.ScheduleMeals(schedule); n != 4 {
		t.Errorf("ScheduleMeals = %d, want 4", n)
	}
	if scheduler.Pending() != 4 {
		t.Errorf("Pending = %d, want 4", scheduler.Pending())
	}

	// Rescheduling replaces, never appends.
	three, _ := GenerateSchedule(trainingDayUser(3))
	scheduler.ScheduleMeals(three)
	if scheduler.Pending() != 3 {
		t.Errorf("Pending after reschedule = %d, want 3", scheduler.Pending())
	}

	scheduler.Clear()
	if scheduler.Pending() != 0 {
		t.Errorf("Pending after clear = %d, want 0", scheduler.Pending())
	}
}

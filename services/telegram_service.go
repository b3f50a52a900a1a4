package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"backend/models"
)

// TelegramService delivers meal reminders through the Telegram Bot API.
type TelegramService struct {
	botToken string
	chatID   string
	client   *http.Client
	baseURL  string
}

func NewTelegramService(botToken, chatID string) *TelegramService {
	return &TelegramService{
		botToken: botToken,
		chatID:   chatID,
		client:   &http.Client{Timeout: 10 * time.Second},
		baseURL:  "https://api.telegram.org/bot" + botToken,
	}
}

// Configured reports whether bot credentials are present.
func (t *TelegramService) Configured() bool {
	return t.botToken != "" && t.chatID != ""
}

// SendMessage posts an HTML-formatted message to the configured chat.
func (t *TelegramService) SendMessage(text string) error {
	if !t.Configured() {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID must be set")
	}

	payload := map[string]string{
		"chat_id":    t.chatID,
		"text":       text,
		"parse_mode": "HTML",
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal telegram payload: %w", err)
	}

	resp, err := t.client.Post(t.baseURL+"/sendMessage", "application/json", bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("failed to call telegram API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API error %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// SendMealReminder sends a single meal's targets and rationale.
func (t *TelegramService) SendMealReminder(meal models.ScheduledMeal) error {
	return t.SendMessage(formatMealMessage(meal))
}

// SendDailySchedule sends the whole day as one overview message.
func (t *TelegramService) SendDailySchedule(schedule *models.DaySchedule) error {
	return t.SendMessage(formatScheduleMessage(schedule))
}

// TestConnection sends a short probe message.
func (t *TelegramService) TestConnection() error {
	return t.SendMessage("Chrono-nutrition notifications connected!")
}

func formatMealMessage(meal models.ScheduledMeal) string {
	return fmt.Sprintf(
		"<b>MEAL %d</b> - %s\n<i>%s</i>\n\n<b>Targets:</b>\n- Calories: %d\n- Protein: %dg\n- Carbs: %dg\n- Fat: %dg\n\n<i>%s</i>",
		meal.Number, meal.TimeLabel, meal.Type.Display(),
		meal.Calories, meal.ProteinG, meal.CarbsG, meal.FatG,
		meal.Reasoning,
	)
}

func formatScheduleMessage(schedule *models.DaySchedule) string {
	var sb strings.Builder
	sb.WriteString("<b>TODAY'S MEAL SCHEDULE</b>\n\n")

	for _, meal := range schedule.Meals {
		sb.WriteString(fmt.Sprintf("<b>%s</b> - %s\n  %d cal | %dg P | %dg C | %dg F\n\n",
			meal.TimeLabel, meal.Type.Display(),
			meal.Calories, meal.ProteinG, meal.CarbsG, meal.FatG))
	}

	sb.WriteString(fmt.Sprintf("<b>Daily Totals:</b> %d cal | %dg protein",
		schedule.TotalCalories(), schedule.TotalProtein()))
	return sb.String()
}

package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func scheduleRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/schedule", GenerateSchedule)
	r.POST("/schedule/suggestions", ScheduleSuggestions(nil))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func scheduleBody() map[string]any {
	return map[string]any{
		"wake_time":            "07:00",
		"sleep_time":           "23:00",
		"workout_time":         "17:00",
		"workout_type":         "lifting",
		"workout_duration_min": 60,
		"daily_calories":       2500,
		"daily_protein_g":      180,
		"daily_carbs_g":        280,
		"daily_fat_g":          70,
		"num_meals":            4,
		"goal":                 "muscle_gain",
	}
}

func TestGenerateScheduleEndpoint(t *testing.T) {
	w := postJSON(t, scheduleRouter(), "/schedule", scheduleBody())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Meals []struct {
			Number   int    `json:"number"`
			Time24   string `json:"time_24h"`
			Type     string `json:"type"`
			ProteinG int    `json:"protein_g"`
		} `json:"meals"`
		Warnings []struct {
			Code string `json:"code"`
		} `json:"warnings"`
		Totals struct {
			Protein int `json:"protein"`
			Carbs   int `json:"carbs"`
			Fat     int `json:"fat"`
		} `json:"totals"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if len(resp.Meals) != 4 {
		t.Fatalf("got %d meals, want 4", len(resp.Meals))
	}
	if resp.Meals[0].Time24 != "07:45" {
		t.Errorf("first meal at %s, want 07:45", resp.Meals[0].Time24)
	}
	if resp.Totals.Protein != 180 || resp.Totals.Carbs != 280 || resp.Totals.Fat != 70 {
		t.Errorf("totals = %+v", resp.Totals)
	}
	if len(resp.Warnings) == 0 {
		t.Error("expected spacing warnings for this workout timing")
	}
}

func TestGenerateScheduleEndpointValidation(t *testing.T) {
	body := scheduleBody()
	body["wake_time"] = "25:00"
	body["num_meals"] = 9

	w := postJSON(t, scheduleRouter(), "/schedule", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp struct {
		Error  string   `json:"error"`
		Issues []string `json:"issues"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if len(resp.Issues) != 2 {
		t.Errorf("got %d issues, want 2: %v", len(resp.Issues), resp.Issues)
	}
}

func TestGenerateScheduleEndpointMalformedJSON(t *testing.T) {
	r := scheduleRouter()
	req := httptest.NewRequest(http.MethodPost, "/schedule", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestScheduleSuggestionsEndpoint(t *testing.T) {
	body := scheduleBody()
	body["groceries"] = []string{"chicken breast", "rice", "broccoli", "olive oil"}

	w := postJSON(t, scheduleRouter(), "/schedule/suggestions", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Meals []struct {
			Number     int    `json:"number"`
			Suggestion string `json:"suggestion"`
		} `json:"meals"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if len(resp.Meals) != 4 {
		t.Fatalf("got %d meals, want 4", len(resp.Meals))
	}
	for _, m := range resp.Meals {
		if m.Suggestion == "" {
			t.Errorf("meal %d has no suggestion", m.Number)
		}
	}
}

package models

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    Clock
		wantErr bool
	}{
		{"07:00", Clock{7, 0}, false},
		{"23:59", Clock{23, 59}, false},
		{"00:00", Clock{0, 0}, false},
		{"7:5", Clock{7, 5}, false},
		{"24:00", Clock{}, true},
		{"12:60", Clock{}, true},
		{"noon", Clock{}, true},
		{"", Clock{}, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseClock(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClockMinutes(t *testing.T) {
	tests := []struct {
		c    Clock
		want int
	}{
		{Clock{7, 0}, 420},
		{Clock{12, 30}, 750},
		{Clock{0, 0}, 0},
	}
	for _, tt := range tests {
		if got := tt.c.Minutes(); got != tt.want {
			t.Errorf("%v.Minutes() = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestClockFromMinutes(t *testing.T) {
	tests := []struct {
		in   int
		want Clock
	}{
		{420, Clock{7, 0}},
		{750, Clock{12, 30}},
		{24*60 + 60, Clock{1, 0}}, // wraps past midnight
		{-30, Clock{23, 30}},      // negative wraps backward
		{0, Clock{0, 0}},
	}
	for _, tt := range tests {
		if got := ClockFromMinutes(tt.in); got != tt.want {
			t.Errorf("ClockFromMinutes(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClockAdd(t *testing.T) {
	tests := []struct {
		c     Clock
		delta int
		want  Clock
	}{
		{Clock{7, 0}, 45, Clock{7, 45}},
		{Clock{23, 30}, 60, Clock{0, 30}},
		{Clock{0, 30}, -60, Clock{23, 30}},
		{Clock{12, 0}, 0, Clock{12, 0}},
	}
	for _, tt := range tests {
		if got := tt.c.Add(tt.delta); got != tt.want {
			t.Errorf("%v.Add(%d) = %v, want %v", tt.c, tt.delta, got, tt.want)
		}
	}
}

func TestClockMinutesUntil(t *testing.T) {
	tests := []struct {
		from, to Clock
		want     int
	}{
		{Clock{7, 0}, Clock{8, 30}, 90},
		{Clock{23, 0}, Clock{1, 0}, 120}, // crosses midnight
		{Clock{8, 0}, Clock{7, 0}, -60},  // small negative stays same-day
		{Clock{12, 0}, Clock{12, 0}, 0},
	}
	for _, tt := range tests {
		if got := tt.from.MinutesUntil(tt.to); got != tt.want {
			t.Errorf("%v.MinutesUntil(%v) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestClockDisplay(t *testing.T) {
	tests := []struct {
		c    Clock
		want string
	}{
		{Clock{7, 45}, "07:45 AM"},
		{Clock{12, 0}, "12:00 PM"},
		{Clock{0, 15}, "12:15 AM"},
		{Clock{19, 15}, "07:15 PM"},
	}
	for _, tt := range tests {
		if got := tt.c.Display(); got != tt.want {
			t.Errorf("%v.Display() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestDeriveMacros(t *testing.T) {
	tests := []struct {
		name      string
		user      UserInputs
		wantCarbs int
		wantFat   int
	}{
		{
			name:      "muscle gain splits 60/40",
			user:      UserInputs{DailyCalories: 2500, DailyProteinG: 180, Goal: GoalMuscleGain},
			wantCarbs: 267, // (2500-720)*0.6/4
			wantFat:   79,  // (2500-720)*0.4/9
		},
		{
			name:      "fat loss splits 40/60",
			user:      UserInputs{DailyCalories: 2000, DailyProteinG: 150, Goal: GoalFatLoss},
			wantCarbs: 140,
			wantFat:   93,
		},
		{
			name:      "explicit targets untouched",
			user:      UserInputs{DailyCalories: 2500, DailyProteinG: 180, DailyCarbsG: 280, DailyFatG: 70, Goal: GoalMaintenance},
			wantCarbs: 280,
			wantFat:   70,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.user.DeriveMacros()
			if tt.user.DailyCarbsG != tt.wantCarbs {
				t.Errorf("carbs = %d, want %d", tt.user.DailyCarbsG, tt.wantCarbs)
			}
			if tt.user.DailyFatG != tt.wantFat {
				t.Errorf("fat = %d, want %d", tt.user.DailyFatG, tt.wantFat)
			}
		})
	}
}

package models

import "time"

// Period is the reporting window of a Report
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// TrackedItem is one logged item (a drink, a pill, a habit check-in)
type TrackedItem struct {
	ID         string    `json:"id"`
	PresetID   string    `json:"presetId,omitempty"`   // reference to a preset if used
	CustomName string    `json:"customName,omitempty"` // custom name if not using a preset
	Amount     float64   `json:"amount"`
	Unit       string    `json:"unit"` // e.g. "mg", "ml", "units", "servings"
	Timestamp  time.Time `json:"timestamp"`
	Notes      string    `json:"notes,omitempty"`
}

// Preset is a reusable template for logging items
type Preset struct {
	ID            string  `json:"id" toml:"id"`
	Name          string  `json:"name" toml:"name" validate:"required"`
	Category      string  `json:"category,omitempty" toml:"category"`
	DefaultAmount float64 `json:"defaultAmount" toml:"default_amount"`
	Unit          string  `json:"unit" toml:"unit" validate:"required"`
	Icon          string  `json:"icon,omitempty" toml:"icon"`
	Color         string  `json:"color,omitempty" toml:"color"`
}

// DailyLimit caps the amount logged per calendar day
type DailyLimit struct {
	MaxAmount        float64 `json:"maxAmount"`
	Unit             string  `json:"unit"`
	WarningThreshold float64 `json:"warningThreshold,omitempty" validate:"gte=0,lte=100"` // percent of MaxAmount
}

// Notifications holds the reminder preferences
type Notifications struct {
	Enabled       bool     `json:"enabled"`
	ReminderTimes []string `json:"reminderTimes,omitempty"` // e.g. ["09:00", "15:00"]
	LimitWarning  bool     `json:"limitWarning"`
}

// TimelineCalculation describes decay of items over time (e.g. caffeine half-life)
type TimelineCalculation struct {
	DecayRate float64 `json:"decayRate,omitempty"`
	DecayUnit string  `json:"decayUnit,omitempty" validate:"omitempty,oneof=hours minutes"`
}

// Settings are the user preferences of the items tracker
type Settings struct {
	DailyLimit          *DailyLimit          `json:"dailyLimit,omitempty"`
	Presets             []Preset             `json:"presets" validate:"dive"`
	Theme               string               `json:"theme" validate:"oneof=light dark system"`
	Notifications       Notifications        `json:"notifications"`
	TimelineCalculation *TimelineCalculation `json:"timelineCalculation,omitempty"`
}

// AchievementCriteria describes what an achievement is measured against
type AchievementCriteria struct {
	Type    string  `json:"type"` // streak, total, limit, custom
	Target  float64 `json:"target"`
	Current float64 `json:"current"`
}

// Achievement is a declared goal with its unlock state
type Achievement struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Icon        string              `json:"icon,omitempty"`
	Unlocked    bool                `json:"unlocked"`
	UnlockedAt  *time.Time          `json:"unlockedAt,omitempty"`
	Progress    *float64            `json:"progress,omitempty"` // 0-100 for progressive achievements
	Criteria    AchievementCriteria `json:"criteria"`
}

// Report is a derived summary of a period, never persisted
type Report struct {
	Period        Period             `json:"period"`
	StartDate     time.Time          `json:"startDate"`
	EndDate       time.Time          `json:"endDate"`
	TotalAmount   float64            `json:"totalAmount"`
	AveragePerDay float64            `json:"averagePerDay"`
	PeakAmount    float64            `json:"peakAmount"`
	PeakDate      time.Time          `json:"peakDate"`
	ItemsByPreset map[string]float64 `json:"itemsByPreset"`
}

// LimitStatus is the progress of a day against the daily limit
type LimitStatus struct {
	Current    float64     `json:"current"`
	Limit      *DailyLimit `json:"limit,omitempty"` // nil when no limit is set
	Percentage float64     `json:"percentage"`
	Remaining  float64     `json:"remaining"`
	NearLimit  bool        `json:"nearLimit"`
	OverLimit  bool        `json:"overLimit"`
}

// AppConfig customises the items tracker for a specific use
type AppConfig struct {
	AppName            string
	ItemName           string // e.g. "Drink", "Meal", "Activity"
	ItemNamePlural     string
	DefaultUnit        string
	EnableTimeline     bool
	EnableAchievements bool
	EnableReports      bool
	EnableExport       bool
	DefaultPresets     []Preset
	Achievements       []Achievement
}

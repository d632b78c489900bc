package models

import "time"

// Trend classifies how the working weight of an exercise is moving
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendSteady Trend = "steady"
	TrendNew    Trend = "new"
)

// Exercise is a machine from the fixed training roster
type Exercise struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Optional        bool   `json:"optional,omitempty"`
	MachineSettings string `json:"machineSettings,omitempty"`
}

// Exercises is the training roster. It is configuration, not user data.
var Exercises = []Exercise{
	{ID: "A3", Name: "Leg Press", MachineSettings: "Lehne, Beine, Loch"},
	{ID: "B6", Name: "Back/Lat Pull-Row", MachineSettings: "2 Sitz, 3 Lehne, 3 Schultern"},
	{ID: "F3.1", Name: "Back Extension", MachineSettings: "16 Sitzp., 2 Fuß, 8 Beine"},
	{ID: "F2.1", Name: "Leg Curl", MachineSettings: "Sitzp., Loch, Fuß"},
	{ID: "C2", Name: "Chest Press", MachineSettings: "nein Sitz, 5 Griffe, 8 Hebel"},
	{ID: "C5", Name: "Shoulder/Arms", MachineSettings: "Sitz, Polster, Arme"},
	{ID: "D6", Name: "Grip/Arms", MachineSettings: "5 Sitz, 13 Lehne, horiz. Griffe"},
	{ID: "J1", Name: "Rotation/Core", Optional: true, MachineSettings: "Turm"},
}

// WorkoutEntry is one logged set on a machine
type WorkoutEntry struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	ExerciseID  string    `json:"exerciseId"`
	WeightKg    float64   `json:"weightKg"`
	TimeSeconds int       `json:"timeSeconds"`
	Notes       string    `json:"notes,omitempty"`
}

// ExerciseStats summarises the full history of one exercise
type ExerciseStats struct {
	ExerciseID    string         `json:"exerciseId"`
	LastWeight    *float64       `json:"lastWeight"` // nil when nothing was logged yet
	LastTime      *int           `json:"lastTime"`
	BestWeight    float64        `json:"bestWeight"`
	BestTime      int            `json:"bestTime"`
	TotalSessions int            `json:"totalSessions"`
	Trend         Trend          `json:"trend"`
	RecentEntries []WorkoutEntry `json:"recentEntries"` // newest first
}

// WorkoutSession groups all entries of one calendar day
type WorkoutSession struct {
	Date        time.Time      `json:"date"`
	Entries     []WorkoutEntry `json:"entries"`
	TotalVolume float64        `json:"totalVolume"` // sum of weights, not weight x time
	TotalSets   int            `json:"totalSets"`
	AvgTime     float64        `json:"avgTime"`
}

// DashboardSummary holds the headline counters of the workout dashboard
type DashboardSummary struct {
	ThisWeek      int `json:"thisWeek"`
	TotalSessions int `json:"totalSessions"`
	Improving     int `json:"improving"`
	PersonalBests int `json:"personalBests"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Achievement is an immutable unlock record. A user holds at most one
// achievement of each type.
type Achievement struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"index"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Points      int       `json:"points"`
	UnlockedAt  time.Time `json:"unlocked_at"`
}

func (a *Achievement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.UnlockedAt.IsZero() {
		a.UnlockedAt = time.Now()
	}
	return nil
}

// AchievementRule unlocks one achievement type once the user's activity
// counts satisfy its predicate.
type AchievementRule struct {
	Type        string
	Title       string
	Description string
	Points      int
	Unlocked    func(workouts, meals int64) bool
}

// AchievementRules is evaluated in order by the achievement check. The
// rules are independent; order only determines unlock order within one
// check pass.
var AchievementRules = []AchievementRule{
	{
		Type:        "first_workout",
		Title:       "First Workout",
		Description: "Log your first workout",
		Points:      10,
		Unlocked:    func(workouts, meals int64) bool { return workouts >= 1 },
	},
	{
		Type:        "workout_warrior",
		Title:       "Workout Warrior",
		Description: "Log 10 workouts",
		Points:      50,
		Unlocked:    func(workouts, meals int64) bool { return workouts >= 10 },
	},
	{
		Type:        "workout_champion",
		Title:       "Workout Champion",
		Description: "Log 50 workouts",
		Points:      200,
		Unlocked:    func(workouts, meals int64) bool { return workouts >= 50 },
	},
	{
		Type:        "nutrition_start",
		Title:       "Nutrition Starter",
		Description: "Log your first meal",
		Points:      10,
		Unlocked:    func(workouts, meals int64) bool { return meals >= 1 },
	},
	{
		Type:        "meal_master",
		Title:       "Meal Master",
		Description: "Log 25 meals",
		Points:      75,
		Unlocked:    func(workouts, meals int64) bool { return meals >= 25 },
	},
}

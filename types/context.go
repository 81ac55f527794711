package types

import "time"

// Response type constants used for contextual follow-up suggestions.
const (
	ResponseTypeTask     = "TASK"
	ResponseTypeClient   = "CLIENT"
	ResponseTypeCalendar = "CALENDAR"
	ResponseTypeGoal     = "GOAL"
)

// Context is the caller-supplied snapshot of situational signals for one
// enhancement call. Absent signals stay zero and simply fail to match.
type Context struct {
	Efficiency      float64 `json:"efficiency,omitempty"`
	TasksCompleted  int     `json:"tasks_completed,omitempty"`
	Streak          int     `json:"streak,omitempty"`
	UrgentTasks     int     `json:"urgent_tasks,omitempty"`
	OverdueTasks    int     `json:"overdue_tasks,omitempty"`
	MeetingsToday   int     `json:"meetings_today,omitempty"`
	FailedTasks     int     `json:"failed_tasks,omitempty"`
	MissedDeadlines int     `json:"missed_deadlines,omitempty"`
	CompletionRate  float64 `json:"completion_rate,omitempty"`
	GoalsAchieved   int     `json:"goals_achieved,omitempty"`
	Conflicts       int     `json:"conflicts,omitempty"`
	NewRecords      int     `json:"new_records,omitempty"`
	Milestones      int     `json:"milestones,omitempty"`
	TimeLeft        float64 `json:"time_left,omitempty"`

	UserPreferences    map[string]string `json:"user_preferences,omitempty"`
	UserHistory        UserHistory       `json:"user_history,omitempty"`
	RecentInteractions []string          `json:"recent_interactions,omitempty"`
	ResponseType       string            `json:"response_type,omitempty"`
	Behavior           UserBehavior      `json:"user_behavior,omitempty"`
}

// Signal returns a numeric context signal by its indicator name. Unknown
// indicators are 0, same as absent ones.
func (c Context) Signal(name string) float64 {
	switch name {
	case "efficiency":
		return c.Efficiency
	case "tasksCompleted":
		return float64(c.TasksCompleted)
	case "streak":
		return float64(c.Streak)
	case "urgentTasks":
		return float64(c.UrgentTasks)
	case "overdueTasks":
		return float64(c.OverdueTasks)
	case "meetingsToday":
		return float64(c.MeetingsToday)
	case "failedTasks":
		return float64(c.FailedTasks)
	case "missedDeadlines":
		return float64(c.MissedDeadlines)
	case "completionRate":
		return c.CompletionRate
	case "goalsAchieved":
		return float64(c.GoalsAchieved)
	case "conflicts":
		return float64(c.Conflicts)
	case "newRecords":
		return float64(c.NewRecords)
	case "milestones":
		return float64(c.Milestones)
	case "timeLeft":
		return c.TimeLeft
	default:
		return 0
	}
}

// Preference reads a user preference from the snapshot with a fallback.
func (c Context) Preference(key, fallback string) string {
	if v, ok := c.UserPreferences[key]; ok && v != "" {
		return v
	}
	return fallback
}

type UserHistory struct {
	RecentAchievements []string `json:"recent_achievements,omitempty"`
	PreferredTimeOfDay string   `json:"preferred_time_of_day,omitempty"`
}

// UserBehavior is the behavioral feature set derived from conversation
// history by the context manager.
type UserBehavior struct {
	TotalInteractions        int           `json:"total_interactions"`
	AverageSessionLength     time.Duration `json:"average_session_length"`
	FrequentQueries          []string      `json:"frequent_queries,omitempty"`
	PreferredTimeOfDay       string        `json:"preferred_time_of_day,omitempty"`
	ResponsivenessPeriod     string        `json:"responsiveness_period,omitempty"` // "fast", "medium", "thoughtful", "unknown"
	FrequentlyChecksCalendar bool          `json:"frequently_checks_calendar"`
	LikesDetailedInfo        bool          `json:"likes_detailed_info"`
	SetsReminders            bool          `json:"sets_reminders"`
	MotivationSeeking        bool          `json:"motivation_seeking"`
}

// HistoryEntry is one recorded interaction. Owned and appended exclusively
// by the context manager.
type HistoryEntry struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Context   Context        `json:"context"`
	Data      map[string]any `json:"data,omitempty"`
}

// EnrichedContext is the context snapshot augmented with historical data,
// returned by ContextManager.UpdateContext.
type EnrichedContext struct {
	Context
	ConversationHistory []HistoryEntry `json:"conversation_history,omitempty"` // last 5 entries
	SessionLength       time.Duration  `json:"session_length"`
	InteractionCount    int            `json:"interaction_count"`
}

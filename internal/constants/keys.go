package constants

import "time"

// Store keys. The first five are the keys the application has always used;
// KeyReminders holds reminders waiting for delivery.
const (
	KeyUsername             = "username"
	KeyTasks                = "tasks"
	KeyTheme                = "theme"
	KeyStudySubjects        = "studySubjects"
	KeyNotificationsEnabled = "notificationsEnabled"
	KeyReminders            = "reminders"
)

// LogoutKeys are removed from the store on logout.
var LogoutKeys = []string{
	KeyUsername,
	KeyTasks,
	KeyTheme,
	KeyStudySubjects,
	KeyNotificationsEnabled,
	KeyReminders,
}

const (
	// Reminder content
	ReminderTitle = "Task Reminder! ⏰"

	// Seed data
	SeedTaskID          = "t1"
	SeedTaskTitle       = "Welcome to your To-Do App!"
	SeedTaskSubtitle    = "Tap the circle to complete me."
	SeedTaskDueIn       = 10 * time.Minute
	SeedSubjectID       = "s1"
	SeedSubjectTitle    = "Sample Study Subject"
	SeedSubjectSeconds  = 3660
	TaskIDPrefix        = "t_"
	SubjectIDPrefix     = "s_"
	DefaultTaskDueAhead = 5 * time.Minute
)

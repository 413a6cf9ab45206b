package state

import (
	"context"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/logger"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/reminder"
)

// Tasks returns a copy of the tasks in insertion order.
func (c *Container) Tasks() []models.Task {
	out := make([]models.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Task looks a task up by id.
func (c *Container) Task(id string) (models.Task, bool) {
	if i := c.taskIndex(id); i >= 0 {
		return c.tasks[i], true
	}
	return models.Task{}, false
}

func (c *Container) taskIndex(id string) int {
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// AddTask appends a new not-started task built from draft and returns it.
// The draft is not validated.
func (c *Container) AddTask(draft models.TaskDraft) models.Task {
	task := models.Task{
		ID:       c.newID(constants.TaskIDPrefix),
		Title:    draft.Title,
		Subtitle: draft.Subtitle,
		Time:     draft.Time,
		Priority: draft.Priority,
		Status:   models.TaskNotStarted,
	}
	c.tasks = append(c.tasks, task)
	c.persist()
	return task
}

// DeleteTask removes the task with id. Confirmation is the caller's job.
func (c *Container) DeleteTask(id string) {
	i := c.taskIndex(id)
	if i < 0 {
		return
	}
	c.tasks = append(c.tasks[:i:i], c.tasks[i+1:]...)
	c.persist()
}

// UpdateTaskStatus sets the status of the task with id. The status is not
// checked.
func (c *Container) UpdateTaskStatus(id string, status models.TaskStatus) {
	i := c.taskIndex(id)
	if i < 0 {
		return
	}
	c.tasks[i].Status = status
	c.persist()
}

// ScheduleTaskReminder asks the scheduler to remind about task at its time.
// Nothing happens when notifications are off or the time has passed.
// Scheduler failures are logged.
func (c *Container) ScheduleTaskReminder(ctx context.Context, task models.Task) {
	if !c.notificationsEnabled {
		logger.Debug("Notifications are disabled, reminder not set", "task", task.ID)
		return
	}
	if c.scheduler == nil {
		return
	}
	if !task.Time.After(c.now()) {
		logger.Debug("Reminder time has passed, skipping", "task", task.ID, "time", task.Time)
		return
	}

	_, err := c.scheduler.Schedule(ctx, constants.ReminderTitle, task.Title, task.Time, reminder.Metadata{TaskID: task.ID})
	if err != nil {
		logger.Warn("Failed to schedule notification", "task", task.ID, "error", err)
	}
}

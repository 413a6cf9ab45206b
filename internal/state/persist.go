package state

import (
	"encoding/json"
	"strconv"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/logger"
	"github.com/julianstephens/studylit/internal/storage"
)

// persist queues the full snapshot of the four persisted values. It does
// nothing before Load has finished or after logout. Values are encoded here
// so the writer never sees container memory.
func (c *Container) persist() {
	if !c.loaded || c.loggedOut {
		return
	}

	entries := make([]storage.Entry, 0, 4)

	if data, err := json.Marshal(c.tasks); err != nil {
		logger.Error("Failed to serialize tasks", "error", err)
	} else {
		entries = append(entries, storage.Entry{Key: constants.KeyTasks, Value: string(data)})
	}

	entries = append(entries, storage.Entry{Key: constants.KeyTheme, Value: string(c.theme)})

	if data, err := json.Marshal(c.subjects); err != nil {
		logger.Error("Failed to serialize study subjects", "error", err)
	} else {
		entries = append(entries, storage.Entry{Key: constants.KeyStudySubjects, Value: string(data)})
	}

	entries = append(entries, storage.Entry{
		Key:   constants.KeyNotificationsEnabled,
		Value: strconv.FormatBool(c.notificationsEnabled),
	})

	c.writer.Enqueue(entries...)
}

package state

import (
	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/storage"
)

func (c *Container) Theme() models.Theme {
	return c.theme
}

func (c *Container) NotificationsEnabled() bool {
	return c.notificationsEnabled
}

func (c *Container) Preferences() models.Preferences {
	return models.Preferences{Theme: c.theme, NotificationsEnabled: c.notificationsEnabled}
}

func (c *Container) ToggleTheme() {
	c.theme = c.theme.Toggle()
	c.persist()
}

func (c *Container) ToggleNotifications() {
	c.notificationsEnabled = !c.notificationsEnabled
	c.persist()
}

func (c *Container) Username() string {
	return c.username
}

// SetUsername stores the sign-up name. It is written on its own, outside
// the snapshot.
func (c *Container) SetUsername(name string) {
	c.username = name
	c.writer.Enqueue(storage.Entry{Key: constants.KeyUsername, Value: name})
}

package state

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/logger"
	"github.com/julianstephens/studylit/internal/models"
)

// Load reads the persisted snapshot. Absent keys take their seed value;
// any read or parse failure puts every key back to its seed. Seeds that
// replace a failed read stay in memory until the next mutation, so stored
// data is never overwritten by a load alone. The container is ready
// afterwards whatever happened. Only the first call does anything.
func (c *Container) Load(ctx context.Context) {
	if c.loadStarted {
		return
	}
	c.loadStarted = true
	defer func() { c.loaded = true }()

	c.loadUsername(ctx)
	c.checkReminders(ctx)

	seeded, err := c.loadSnapshot(ctx)
	if err != nil {
		logger.Error("Failed to load data from storage", "error", err)
		c.seed()
		return
	}

	// Keys that were truly absent: persist seeds now so their ids and
	// times stay put across runs.
	if seeded {
		c.loaded = true
		c.persist()
	}
}

func (c *Container) loadSnapshot(ctx context.Context) (seeded bool, err error) {
	rawTasks, hasTasks, err := c.store.Get(ctx, constants.KeyTasks)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", constants.KeyTasks, err)
	}
	rawTheme, hasTheme, err := c.store.Get(ctx, constants.KeyTheme)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", constants.KeyTheme, err)
	}
	rawSubjects, hasSubjects, err := c.store.Get(ctx, constants.KeyStudySubjects)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", constants.KeyStudySubjects, err)
	}
	rawNotif, hasNotif, err := c.store.Get(ctx, constants.KeyNotificationsEnabled)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", constants.KeyNotificationsEnabled, err)
	}

	tasks := seedTasks(c.now())
	if hasTasks && rawTasks != "" {
		tasks = nil
		if err := json.Unmarshal([]byte(rawTasks), &tasks); err != nil {
			return false, fmt.Errorf("parse %s: %w", constants.KeyTasks, err)
		}
	}

	subjects := seedSubjects(c.now())
	if hasSubjects && rawSubjects != "" {
		subjects = nil
		if err := json.Unmarshal([]byte(rawSubjects), &subjects); err != nil {
			return false, fmt.Errorf("parse %s: %w", constants.KeyStudySubjects, err)
		}
	}

	notif := constants.DefaultNotificationsEnabled
	if hasNotif {
		if err := json.Unmarshal([]byte(rawNotif), &notif); err != nil {
			return false, fmt.Errorf("parse %s: %w", constants.KeyNotificationsEnabled, err)
		}
	}

	theme := models.Theme(constants.DefaultTheme)
	if hasTheme && rawTheme != "" {
		theme = models.Theme(rawTheme)
		if theme != models.ThemeLight && theme != models.ThemeDark {
			logger.Warn("Unknown theme in storage, using default", "theme", rawTheme)
			theme = models.Theme(constants.DefaultTheme)
		}
	}

	if tasks == nil {
		tasks = []models.Task{}
	}
	c.tasks = tasks
	c.subjects = normalizeSubjects(subjects)
	c.theme = theme
	c.notificationsEnabled = notif

	seeded = !hasTasks || !hasSubjects || !hasTheme || !hasNotif
	return seeded, nil
}

// normalizeSubjects makes nil histories empty so they serialize as [].
func normalizeSubjects(subjects []models.StudySubject) []models.StudySubject {
	if subjects == nil {
		return []models.StudySubject{}
	}
	for i := range subjects {
		if subjects[i].History == nil {
			subjects[i].History = []models.Session{}
		}
	}
	return subjects
}

func (c *Container) loadUsername(ctx context.Context) {
	name, found, err := c.store.Get(ctx, constants.KeyUsername)
	if err != nil {
		logger.Warn("Failed to read username", "error", err)
		return
	}
	if found {
		c.username = name
	}
}

func (c *Container) checkReminders(ctx context.Context) {
	if c.scheduler == nil {
		return
	}
	if err := c.scheduler.Permission(ctx); err != nil {
		c.reminderErr = err
		logger.Info("Reminders will not be shown", "reason", err)
	}
}

func (c *Container) seed() {
	now := c.now()
	c.tasks = seedTasks(now)
	c.subjects = seedSubjects(now)
	c.theme = models.Theme(constants.DefaultTheme)
	c.notificationsEnabled = constants.DefaultNotificationsEnabled
}

package state

import (
	"time"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
)

func seedTasks(now time.Time) []models.Task {
	return []models.Task{{
		ID:       constants.SeedTaskID,
		Title:    constants.SeedTaskTitle,
		Subtitle: constants.SeedTaskSubtitle,
		Time:     now.Add(constants.SeedTaskDueIn),
		Priority: models.PriorityHigh,
		Status:   models.TaskNotStarted,
	}}
}

func seedSubjects(now time.Time) []models.StudySubject {
	return []models.StudySubject{{
		ID:        constants.SeedSubjectID,
		Title:     constants.SeedSubjectTitle,
		Status:    models.SubjectPaused,
		TotalTime: constants.SeedSubjectSeconds,
		History:   []models.Session{{Date: now, Seconds: constants.SeedSubjectSeconds}},
	}}
}

package session

import (
	"github.com/ankitn/skillforge/internal/curriculum"
	"github.com/ankitn/skillforge/internal/practice"
)

// startedMsg is sent when the engine has begun the session.
type startedMsg struct {
	Err error
}

// questionMsg is sent when the engine presents a new question.
type questionMsg struct {
	Question *curriculum.Question
}

// masteryMsg is sent when the celebration delay elapses after a
// threshold crossing.
type masteryMsg struct {
	Record practice.MasteryRecord
}

// refreshMsg asks the screen to re-read persisted skill progress.
type refreshMsg struct{}

// progressMsg carries the re-read skill progress.
type progressMsg struct {
	Points   int
	Mastered bool
	Err      error
}

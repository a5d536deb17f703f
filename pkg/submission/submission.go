package submission

import (
	"fmt"
	"strconv"
	"time"
)

// Placeholder substitutes any missing textual field. It never reaches
// the sink as an empty string or null.
const Placeholder = "—"

// TimestampLayout is the fixed submission timestamp format, local
// process time, no timezone conversion.
const TimestampLayout = "2006-01-02 15:04:05"

// Submission is the fully assembled order record. It is built once all
// three intake steps are complete and consumed exactly once by the
// pipeline.
type Submission struct {
	Timestamp string
	Name      string
	Niche     string
	Task      string
	UserID    int64
	Username  string
}

// New builds a submission, stamping the current time and substituting
// the placeholder for any empty field. A missing name or niche should
// be unreachable given the state machine, but degrades to the
// placeholder rather than aborting the submission.
func New(name, niche, task string, userID int64, username string) Submission {
	return Submission{
		Timestamp: time.Now().Format(TimestampLayout),
		Name:      orPlaceholder(name),
		Niche:     orPlaceholder(niche),
		Task:      orPlaceholder(task),
		UserID:    userID,
		Username:  orPlaceholder(username),
	}
}

// Row returns the six sink columns in their fixed order:
// timestamp, name, niche, task, user_id, username.
func (s Submission) Row() []string {
	return []string{
		s.Timestamp,
		s.Name,
		s.Niche,
		s.Task,
		strconv.FormatInt(s.UserID, 10),
		s.Username,
	}
}

// OperatorText formats the operator notification for a saved submission.
func (s Submission) OperatorText() string {
	return fmt.Sprintf(
		"📩 Новая заявка!\n\n👤 Имя: %s\n📌 Ниша: %s\n📝 Задача: %s\n🆔 ID: %d\n👤 @%s\n📅 %s",
		s.Name, s.Niche, s.Task, s.UserID, s.Username, s.Timestamp)
}

func orPlaceholder(v string) string {
	if v == "" {
		return Placeholder
	}
	return v
}

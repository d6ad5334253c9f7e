package assistant

import (
	"fmt"
	"strings"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/model"
)

const (
	noPendingTasksText = "🎉 Great news! You have no pending tasks. You're all caught up!"
	addTaskText        = "✨ I'd be happy to help you create a new task! Please provide:\n• Task title\n• Priority (high/medium/low)\n• Due time (optional)\n\nFor example: 'Create presentation - high priority - 2:00 PM'"
	taskHelpText       = "I can help you with tasks! Ask me about pending tasks, completed tasks, or to add new ones."
	noFocusText        = "🎯 Great job staying on top of your tasks! Keep up the momentum!"
)

func splitTasks(tasks []*model.Task) (pending, completed []*model.Task) {
	for _, t := range tasks {
		if t == nil {
			continue
		}
		if t.Completed {
			completed = append(completed, t)
		} else {
			pending = append(pending, t)
		}
	}
	return pending, completed
}

// TaskReply answers task questions. It is advisory only and never creates a task.
func (e *Engine) TaskReply(text string, snapshot model.Snapshot) string {
	pending, completed := splitTasks(snapshot.Tasks)
	msg := lower(text)

	switch {
	case containsAny(msg, "pending", "what"):
		if len(pending) == 0 {
			return noPendingTasksText
		}

		lines := make([]string, 0, len(pending))
		for _, t := range pending {
			due := ""
			if t.DueAt != nil {
				due = "(due at " + clock(t.DueAt.In(e.now().Location())) + ")"
			}
			lines = append(lines, fmt.Sprintf("• %s %s - %s priority", t.Title, due, t.Priority))
		}

		return fmt.Sprintf("📋 You have %d pending tasks:\n\n%s\n\nWould you like me to help you prioritize or add a new task?",
			len(pending), strings.Join(lines, "\n"))

	case containsAny(msg, "add", "create"):
		return addTaskText

	case containsAny(msg, "complete"):
		return fmt.Sprintf("🎯 You've completed %d tasks today. Keep up the excellent work!", len(completed))
	}

	return taskHelpText
}

// Suggest proposes which pending task to focus on
func (e *Engine) Suggest(tasks []*model.Task) string {
	pending, _ := splitTasks(tasks)

	var high []*model.Task
	for _, t := range pending {
		if t.Priority == model.PriorityHigh {
			high = append(high, t)
		}
	}

	if len(high) > 0 {
		return fmt.Sprintf("🔥 Focus suggestion: You have %d high-priority tasks. Consider tackling \"%s\" first!",
			len(high), high[0].Title)
	}

	return noFocusText
}

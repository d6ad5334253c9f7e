package assistant

import (
	"fmt"
	"strings"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/model"
)

const (
	takeNoteText = "📝 I'm ready to help you take a note! What would you like to remember? I can help organize it by category (work, personal, learning)."
	findNoteText = "🔍 I can help you find notes! What topic or keyword are you looking for?"
	noteHelpText = "I can help you take notes, find existing ones, or organize them by category!"
)

func (e *Engine) NoteReply(text string, snapshot model.Snapshot) string {
	msg := lower(text)

	switch {
	case containsAny(msg, "take", "create"):
		return takeNoteText
	case containsAny(msg, "find", "search"):
		return findNoteText
	case containsAny(msg, "summary"):
		count, categories := noteCategories(snapshot.Notes)
		return fmt.Sprintf("📚 You have %d notes across %d categories: %s. Would you like me to summarize any specific category?",
			count, len(categories), strings.Join(categories, ", "))
	}

	return noteHelpText
}

// noteCategories counts the non-nil notes and returns their distinct categories in order of
// first occurrence
func noteCategories(notes []*model.Note) (int, []string) {
	seen := make(map[string]struct{}, len(notes))
	categories := make([]string, 0, len(notes))
	count := 0
	for _, n := range notes {
		if n == nil {
			continue
		}
		count++
		if _, ok := seen[n.Category]; ok {
			continue
		}
		seen[n.Category] = struct{}{}
		categories = append(categories, n.Category)
	}
	return count, categories
}

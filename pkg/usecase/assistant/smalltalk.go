package assistant

import "github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/model"

// Greetings are the replies to a greeting
var Greetings = []string{
	"👋 Hello! I'm your personal assistant, ready to help you stay organized and productive!",
	"🌟 Hi there! How can I assist you with your tasks, notes, or schedule today?",
	"✨ Greetings! I'm here to help you manage your day efficiently. What would you like to know?",
	"🎯 Hello! Ready to tackle your goals together? Ask me about tasks, notes, or your calendar!",
}

// Fallbacks are the replies when no intent matched
var Fallbacks = []string{
	"🤔 I'm here to help you with tasks, notes, calendar events, and weather updates. What would you like to know?",
	"✨ I can assist you with organizing your day! Try asking about your pending tasks, creating notes, or checking your schedule.",
	"🎯 I'm your productivity companion! Ask me about tasks, notes, calendar events, or weather information.",
	"📋 I can help you stay organized! Feel free to ask about your tasks, take notes, or check your calendar.",
}

func (e *Engine) GreetingReply(_ string, _ model.Snapshot) string {
	return e.choose(Greetings)
}

func (e *Engine) GeneralReply(_ string, _ model.Snapshot) string {
	return e.choose(Fallbacks)
}

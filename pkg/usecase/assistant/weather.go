package assistant

import (
	"fmt"
	"strconv"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/model"
)

const weatherHelpText = "🌦️ I can provide weather updates to help you plan your day! The weather widget shows current conditions and forecasts."

func (e *Engine) WeatherReply(_ string, snapshot model.Snapshot) string {
	w := snapshot.Weather
	if !w.Known() {
		return weatherHelpText
	}

	location := w.Location
	if location == "" {
		location = "your area"
	}

	return fmt.Sprintf("🌤️ Current weather in %s:\n• Temperature: %s°C (feels like %s°C)\n• Conditions: %s\n• Humidity: %s%%\n• Wind: %s km/h\n\nPerfect weather for productivity! 🌟",
		location, num(*w.Temperature), num(w.FeelsLike), w.Condition, num(w.Humidity), num(w.WindSpeed))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

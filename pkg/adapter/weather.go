package adapter

import (
	"context"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/model"
)

// StaticWeather always reports the same reading. The dashboard widget has no live feed.
type StaticWeather struct {
	reading model.Weather
}

// NewStaticWeather returns the mock reading shown by the weather widget
func NewStaticWeather() *StaticWeather {
	temperature := 12.0
	return &StaticWeather{
		reading: model.Weather{
			Location:    "Groningen, Netherlands",
			Temperature: &temperature,
			FeelsLike:   9,
			Condition:   "cloudy",
			Humidity:    78,
			WindSpeed:   15,
		},
	}
}

// NewFixedWeather reports the given reading
func NewFixedWeather(reading model.Weather) *StaticWeather {
	return &StaticWeather{reading: reading}
}

func (s *StaticWeather) GetWeather(ctx context.Context) (*model.Weather, error) {
	w := s.reading
	if w.Temperature != nil {
		t := *w.Temperature
		w.Temperature = &t
	}
	return &w, nil
}

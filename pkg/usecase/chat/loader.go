package chat

import (
	"context"
	"errors"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/model"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

// Loader builds snapshots from the data stores. Every source is optional.
type Loader struct {
	Tasks   repository.TaskStore
	Notes   repository.NoteStore
	Events  repository.EventStore
	Weather repository.WeatherSource
}

// Load reads every configured source. A failing source leaves its field nil and its error is
// returned joined with the others alongside the partial snapshot.
func (l *Loader) Load(ctx context.Context) (model.Snapshot, error) {
	var (
		snapshot model.Snapshot
		errs     []error
	)

	if l.Tasks != nil {
		tasks, err := l.Tasks.ListTasks(ctx)
		if err != nil {
			errs = append(errs, goerr.Wrap(err, "failed to list tasks"))
		} else {
			snapshot.Tasks = nonNil(tasks)
		}
	}

	if l.Notes != nil {
		notes, err := l.Notes.ListNotes(ctx)
		if err != nil {
			errs = append(errs, goerr.Wrap(err, "failed to list notes"))
		} else {
			snapshot.Notes = nonNil(notes)
		}
	}

	if l.Events != nil {
		events, err := l.Events.ListEvents(ctx)
		if err != nil {
			errs = append(errs, goerr.Wrap(err, "failed to list events"))
		} else {
			snapshot.Events = nonNil(events)
		}
	}

	if l.Weather != nil {
		weather, err := l.Weather.GetWeather(ctx)
		if err != nil {
			errs = append(errs, goerr.Wrap(err, "failed to get weather"))
		} else {
			snapshot.Weather = weather
		}
	}

	return snapshot, errors.Join(errs...)
}

// nonNil turns an empty result into an empty slice so that it replaces the previous value
func nonNil[T any](items []*T) []*T {
	if items == nil {
		return []*T{}
	}
	return items
}

package chat_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/adapter"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/model"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/repository"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/usecase/chat"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

type failingTasks struct{}

func (failingTasks) ListTasks(ctx context.Context) ([]*model.Task, error) {
	return nil, goerr.New("tasks unavailable")
}

func TestLoaderLoad(t *testing.T) {
	mem := repository.NewMemory(model.Snapshot{
		Tasks: []*model.Task{{ID: "t1", Title: "Ship release"}},
	})
	loader := &chat.Loader{
		Tasks:   mem,
		Notes:   mem,
		Events:  mem,
		Weather: adapter.NewStaticWeather(),
	}

	snapshot, err := loader.Load(context.Background())
	gt.NoError(t, err)
	gt.A(t, snapshot.Tasks).Length(1)
	gt.NotNil(t, snapshot.Notes)
	gt.A(t, snapshot.Notes).Length(0)
	gt.NotNil(t, snapshot.Events)
	gt.True(t, snapshot.Weather.Known())
}

func TestLoaderPartialFailure(t *testing.T) {
	mem := repository.NewMemory(model.Snapshot{
		Notes: []*model.Note{{ID: "n1", Title: "Ideas"}},
	})
	loader := &chat.Loader{
		Tasks: failingTasks{},
		Notes: mem,
	}

	snapshot, err := loader.Load(context.Background())
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("failed to list tasks")
	gt.Nil(t, snapshot.Tasks)
	gt.A(t, snapshot.Notes).Length(1)
	gt.Nil(t, snapshot.Weather)

	// The partial result leaves the failing field untouched on merge
	prev := model.Snapshot{Tasks: []*model.Task{{ID: "old"}}}
	merged := prev.Merge(snapshot)
	gt.Equal(t, merged.Tasks[0].ID, "old")
	gt.A(t, merged.Notes).Length(1)

	var joined interface{ Unwrap() []error }
	gt.True(t, errors.As(err, &joined))
}

package cli_test

import (
	"context"
	"testing"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/cli"
	"github.com/m-mizutani/gt"
)

func TestHistoryRejectsNegativeRange(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")

	for _, args := range [][]string{
		{"assistant", "history", "--offset=-1"},
		{"assistant", "history", "--limit=-3"},
	} {
		err := cli.Run(context.Background(), args)
		gt.NotNil(t, err)
		gt.Equal(t, err.Code, 1)
		gt.S(t, err.Message).Contains("must not be negative")
	}
}

func TestHistoryLocalMode(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")

	err := cli.Run(context.Background(), []string{"assistant", "history", "--offset=0", "--limit=5"})
	gt.True(t, err == nil)
}

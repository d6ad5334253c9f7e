package policy_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/model"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/policy"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/usecase/assistant"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func writePolicy(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	gt.NoError(t, os.WriteFile(filepath.Join(dir, "intent.rego"), []byte(src), 0644))
	return dir
}

func TestOrderedPolicyMatchesBuiltinRules(t *testing.T) {
	ctx := context.Background()
	c, err := policy.Load(ctx, "testdata")
	gt.NoError(t, err)
	gt.NotNil(t, c)

	for _, text := range []string{
		"write a todo for the meeting",
		"Write down my idea",
		"schedule a meeting",
		"How's the WEATHER?",
		"hello",
		"this",
		"xyzzy",
		"",
	} {
		intent, ok, err := c.Intent(ctx, text)
		gt.NoError(t, err)
		gt.True(t, ok)
		gt.Equal(t, intent, assistant.Classify(text))
	}

	intent, _, err := c.Intent(ctx, "write a todo for the meeting")
	gt.NoError(t, err)
	gt.Equal(t, intent, model.IntentTask)
}

func TestEngineWithPolicy(t *testing.T) {
	ctx := context.Background()
	dir := writePolicy(t, `package intent

intent := "task" if {
	contains(input.lower, "remind")
}
`)
	c, err := policy.Load(ctx, dir)
	gt.NoError(t, err)

	engine := assistant.New(assistant.WithClassifier(c.Func(ctx)))

	_, intent := engine.RespondWithIntent("remind me to pay rent", model.Snapshot{})
	gt.Equal(t, intent, model.IntentTask)

	// Undefined result falls back to the built-in rules
	_, intent = engine.RespondWithIntent("take a note", model.Snapshot{})
	gt.Equal(t, intent, model.IntentNote)
}

func TestUnknownIntentFallsBack(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := logging.With(context.Background(), logging.New("info", "console", buf))

	dir := writePolicy(t, `package intent

intent := "shopping"
`)
	c, err := policy.Load(ctx, dir)
	gt.NoError(t, err)

	_, _, err = c.Intent(ctx, "buy milk")
	gt.True(t, errors.Is(err, policy.ErrUnknownIntent))

	gt.Equal(t, c.Func(ctx)("hello"), model.IntentGreeting)
	gt.S(t, buf.String()).Contains("intent policy failed")
}

func TestLoadEmptyDir(t *testing.T) {
	c, err := policy.Load(context.Background(), t.TempDir())
	gt.NoError(t, err)
	gt.Nil(t, c)
}

func TestLoadInvalidPolicy(t *testing.T) {
	dir := writePolicy(t, "package intent\n\nintent := \n")
	_, err := policy.Load(context.Background(), dir)
	gt.Error(t, err)
}

package policy

import (
	"context"
	"strings"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/model"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/usecase/assistant"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/open-policy-agent/opa/v1/rego"
)

var (
	ErrUnknownIntent = goerr.New("policy returned unknown intent")
)

// Classifier decides intents with rego policies. Policies live in `package intent` and set
// `intent` to one of the intent names. Input is `{"text": <raw>, "lower": <lowercased>}`.
type Classifier struct {
	query *rego.PreparedEvalQuery
}

// Load prepares the policies in dir. It returns nil without error when dir has no .rego
// files, so callers keep the built-in rules.
func Load(ctx context.Context, dir string) (*Classifier, error) {
	modules, err := loadModules(dir)
	if err != nil {
		return nil, err
	}
	if len(modules) == 0 {
		return nil, nil
	}

	query, err := prepareQuery(ctx, modules, intentQuery)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to prepare intent policy", goerr.V("dir", dir))
	}

	return &Classifier{query: query}, nil
}

// Intent evaluates the policy. ok is false when the policy leaves intent undefined.
func (c *Classifier) Intent(ctx context.Context, text string) (model.Intent, bool, error) {
	input := map[string]any{
		"text":  text,
		"lower": strings.ToLower(text),
	}

	rs, err := c.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", false, goerr.Wrap(err, "failed to evaluate intent policy")
	}
	if len(rs) == 0 || len(rs[0].Expressions) == 0 {
		return "", false, nil
	}

	name, ok := rs[0].Expressions[0].Value.(string)
	if !ok {
		return "", false, goerr.Wrap(ErrUnknownIntent, "intent is not a string",
			goerr.V("value", rs[0].Expressions[0].Value))
	}

	intent := model.Intent(name)
	if !intent.Valid() {
		return "", false, goerr.Wrap(ErrUnknownIntent, "invalid intent", goerr.V("intent", name))
	}

	return intent, true, nil
}

// Func adapts the classifier for assistant.WithClassifier. Undefined results and policy errors
// fall back to assistant.Classify; errors are logged with the logger in ctx.
func (c *Classifier) Func(ctx context.Context) assistant.Classifier {
	return func(text string) model.Intent {
		intent, ok, err := c.Intent(ctx, text)
		if err != nil {
			logging.From(ctx).Warn("intent policy failed, using built-in rules", "error", err)
			return assistant.Classify(text)
		}
		if !ok {
			return assistant.Classify(text)
		}
		return intent
	}
}

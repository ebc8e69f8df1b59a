// Package replicate implements newsbrief.Generator using models hosted on
// Replicate.
package replicate

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/newsbrief"
	"github.com/replicate/replicate-go"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "ibm-granite/granite-3.3-8b-instruct"

// Runner runs a model prediction and waits for its output.
type Runner interface {
	Run(ctx context.Context, model string, input replicate.PredictionInput) (replicate.PredictionOutput, error)
}

// NewRunner creates a Runner backed by the Replicate API.
func NewRunner(token string) (Runner, error) {
	if token == "" {
		return nil, newsbrief.Errorf(newsbrief.EINVALID, "replicate API token required")
	}
	client, err := replicate.NewClient(replicate.WithToken(token))
	if err != nil {
		return nil, err
	}
	return &clientRunner{client: client}, nil
}

type clientRunner struct {
	client *replicate.Client
}

func (r *clientRunner) Run(ctx context.Context, model string, input replicate.PredictionInput) (replicate.PredictionOutput, error) {
	return r.client.Run(ctx, model, input, nil)
}

// Ensure Generator implements newsbrief.Generator at compile time.
var _ newsbrief.Generator = (*Generator)(nil)

// Generator implements newsbrief.Generator by running a text model.
type Generator struct {
	runner Runner
	model  string
}

// NewGenerator creates a new Generator. An empty model selects DefaultModel.
func NewGenerator(runner Runner, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{runner: runner, model: model}
}

// Model returns the model identifier used for predictions.
func (g *Generator) Model() string {
	return g.model
}

// Generate runs the model with prompt and returns its output fragments.
func (g *Generator) Generate(ctx context.Context, prompt string) ([]string, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, newsbrief.Errorf(newsbrief.EINVALID, "prompt required")
	}

	output, err := g.runner.Run(ctx, g.model, replicate.PredictionInput{"prompt": prompt})
	if err != nil {
		return nil, err
	}
	return Fragments(output)
}

// Fragments converts prediction output to text fragments. Streaming text
// models return a list of tokens; others return a single string.
func Fragments(output replicate.PredictionOutput) ([]string, error) {
	switch v := output.(type) {
	case nil:
		return nil, newsbrief.Errorf(newsbrief.EINTERNAL, "replicate returned no output")
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []any:
		fragments := make([]string, 0, len(v))
		for _, item := range v {
			switch s := item.(type) {
			case nil:
			case string:
				fragments = append(fragments, s)
			default:
				fragments = append(fragments, fmt.Sprint(s))
			}
		}
		return fragments, nil
	default:
		return []string{fmt.Sprint(v)}, nil
	}
}

package suggestions

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/breakloop/community-backend/pkg/errors"
	"github.com/breakloop/community-backend/pkg/logger"
)

// Suggestion is one immediately actionable alternative activity.
type Suggestion struct {
	Title    string   `json:"title"`
	Desc     string   `json:"desc"`
	Duration string   `json:"duration"`
	Actions  []string `json:"actions"`
	Type     string   `json:"type"`
}

// Request carries the context the prompt is built from.
type Request struct {
	Mood      string `json:"mood" validate:"required"`
	TimeOfDay string `json:"timeOfDay"`
	Location  string `json:"location"`
	TargetApp string `json:"targetApp"`
}

// Service generates alternative-activity suggestions. When no provider is
// configured the service reports itself disabled instead of erroring.
type Service interface {
	Enabled() bool
	Suggest(ctx context.Context, req Request) ([]Suggestion, error)
}

// TextGenerator is the provider surface the service depends on.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type service struct {
	logg      *logger.Logger
	generator TextGenerator
}

// Params carries the service dependencies. A nil Generator disables the
// service.
type Params struct {
	Logger    *logger.Logger
	Generator TextGenerator
}

func NewService(params Params) (Service, error) {
	if params.Logger == nil {
		return nil, errors.New(errors.CodeDependency, "suggestions service requires a logger")
	}
	return &service{
		logg:      params.Logger,
		generator: params.Generator,
	}, nil
}

func (s *service) Enabled() bool {
	return s.generator != nil
}

func (s *service) Suggest(ctx context.Context, req Request) ([]Suggestion, error) {
	if s.generator == nil {
		return nil, errors.New(errors.CodeDependency, "suggestions are not configured")
	}
	if strings.TrimSpace(req.Mood) == "" {
		return nil, errors.New(errors.CodeValidation, "mood is required")
	}

	text, err := s.generator.GenerateText(ctx, buildPrompt(req))
	if err != nil {
		s.logg.Error(ctx, "suggestion generation failed", err)
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return []Suggestion{}, nil
	}

	parsed, err := parseSuggestions(text)
	if err != nil {
		s.logg.Warn(ctx, "could not parse generated suggestions")
		return nil, errors.Wrap(errors.CodeDependency, err, "unreadable suggestion payload")
	}
	return parsed, nil
}

func buildPrompt(req Request) string {
	var b strings.Builder
	b.WriteString("Suggest 3 alternative activities that are easy to start right now.\n")
	b.WriteString("Context:\n")
	fmt.Fprintf(&b, "- Emotional state: %s\n", req.Mood)
	if req.TimeOfDay != "" {
		fmt.Fprintf(&b, "- Time of day: %s\n", req.TimeOfDay)
	}
	if req.Location != "" {
		fmt.Fprintf(&b, "- Location: %s\n", req.Location)
	}
	if req.TargetApp != "" {
		fmt.Fprintf(&b, "- Triggered by opening: %s\n", req.TargetApp)
	}
	b.WriteString("Requirements: no advance planning, no travel to venues, minimal setup.\n")
	b.WriteString("Return a JSON array of objects with keys: 'title' (short string), ")
	b.WriteString("'desc' (1 sentence), 'duration' (e.g. '15m'), 'actions' (array of 3 short steps), ")
	b.WriteString("'type' (social/calm/creative/active/productive/rest).")
	return b.String()
}

var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// parseSuggestions tolerates prose around the JSON array the model was
// asked for.
func parseSuggestions(text string) ([]Suggestion, error) {
	payload := text
	if match := jsonArrayPattern.FindString(text); match != "" {
		payload = match
	}
	var suggestions []Suggestion
	if err := json.Unmarshal([]byte(payload), &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

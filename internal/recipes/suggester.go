package recipes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"frigo/internal/models"

	"github.com/tmc/langchaingo/llms"
)

// ErrNoModel is returned when recipe suggestions are requested but the
// server was started without an LLM configured.
var ErrNoModel = errors.New("no language model configured for recipe suggestions")

const systemPrompt = `You are a practical home cook. Given the contents of a fridge,
suggest recipes that use what is on hand, preferring items that are expiring soon.
For each recipe give a name, the fridge items it uses, and short instructions.`

// Suggester turns the current fridge contents into recipe ideas.
type Suggester struct {
	model       llms.Model
	maxTokens   int
	temperature float64
}

// NewSuggester creates a suggester backed by the given model. A nil model is
// allowed; Suggest then fails with ErrNoModel so the tool surface can report
// the condition instead of crashing.
func NewSuggester(model llms.Model) *Suggester {
	return &Suggester{
		model:       model,
		maxTokens:   1024,
		temperature: 0.7,
	}
}

// Suggest asks the model for up to maxRecipes recipe ideas based on the
// fridge snapshot. An optional user prompt narrows the request ("something
// vegetarian", "use up the milk").
func (s *Suggester) Suggest(ctx context.Context, fridge models.Fridge, prompt string, maxRecipes int) (string, error) {
	if s.model == nil {
		return "", ErrNoModel
	}
	if maxRecipes <= 0 {
		maxRecipes = 3
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, s.buildPrompt(fridge, prompt, maxRecipes)),
	}

	response, err := s.model.GenerateContent(ctx, messages,
		llms.WithMaxTokens(s.maxTokens),
		llms.WithTemperature(s.temperature),
	)
	if err != nil {
		return "", fmt.Errorf("generating recipe suggestions: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}

	return response.Choices[0].Content, nil
}

// buildPrompt renders the inventory into the user message. Expiring and
// expired items are called out so the model prioritizes them.
func (s *Suggester) buildPrompt(fridge models.Fridge, prompt string, maxRecipes int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Suggest up to %d recipes.\n", maxRecipes)
	if prompt != "" {
		fmt.Fprintf(&b, "Request: %s\n", prompt)
	}

	b.WriteString("\nFridge contents:\n")
	for _, zone := range fridge.Zones {
		if len(zone.Items) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s:\n", zone.Name)
		for _, item := range zone.Items {
			fmt.Fprintf(&b, "- %s (%g %s, %s)", item.Name, item.Quantity.Value, item.Quantity.Unit, item.Category)
			switch item.Status {
			case models.StatusExpiringSoon:
				b.WriteString(" [expiring soon]")
			case models.StatusExpired:
				b.WriteString(" [expired - do not use]")
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

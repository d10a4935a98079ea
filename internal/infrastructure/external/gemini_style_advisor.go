package external

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/entities"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/repositories"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/valueobjects"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/logging"
)

type GeminiStyleAdvisor struct {
	pool    repositories.GenAIClientPool
	model   string
	timeout time.Duration
}

func NewGeminiStyleAdvisor(pool repositories.GenAIClientPool, model string, timeout time.Duration) repositories.StyleAdvisorAIService {
	return &GeminiStyleAdvisor{
		pool:    pool,
		model:   model,
		timeout: timeout,
	}
}

func (s *GeminiStyleAdvisor) GenerateAdvice(ctx context.Context, request *entities.AdviceRequest) (*entities.AdviceResult, error) {
	client, err := s.pool.GetGenAIClient(ctx)
	if err != nil {
		return nil, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	parts := []*genai.Part{genai.NewPartFromText(buildAdvicePrompt(request))}
	for _, slot := range valueobjects.Slots {
		img := request.Image(slot)
		if img == nil {
			continue
		}
		parts = append(parts,
			genai.NewPartFromText(fmt.Sprintf("Photo of the %s:", strings.ToLower(slot.Title()))),
			genai.NewPartFromBytes(img.Data(), img.MimeType()),
		)
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	logging.Ctx(ctx).Debug().
		Str("model", s.model).
		Str("request_id", string(request.ID())).
		Int("parts", len(parts)).
		Msg("requesting style advice")

	resp, err := client.Models.GenerateContent(ctx, s.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return entities.NewAdviceResult(request.ID(), resp.Text()), nil
}

func (s *GeminiStyleAdvisor) Close() error {
	return s.pool.Close()
}

func buildAdvicePrompt(request *entities.AdviceRequest) string {
	var sb strings.Builder

	info := request.Occasion().Info()
	palette := request.Palette()

	sb.WriteString("You are a friendly personal stylist. Give short, practical advice on the outfit below.\n")
	sb.WriteString("Answer in at most four sentences of plain text. Do not use markdown, lists or headings.\n\n")

	sb.WriteString(fmt.Sprintf("Occasion: %s (%s)\n", info.Name, info.Style))
	for _, slot := range valueobjects.Slots {
		sb.WriteString(fmt.Sprintf("%s color: %s\n", slot.Title(), palette.For(slot)))
	}

	sb.WriteString("\nSuggested looks already shown to the user:\n")
	for _, rec := range request.Recommendations() {
		sb.WriteString(fmt.Sprintf("- %s (%s): upper %s, lower %s, shoes %s\n",
			rec.Title, rec.Rating, rec.Colors.Upper, rec.Colors.Lower, rec.Colors.Shoe))
	}

	sb.WriteString("\nSay which look suits the occasion best and one change that would improve it.")
	return sb.String()
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"cvcraft-backend/internal/domain"
	"cvcraft-backend/pkg/apperror"
	"cvcraft-backend/pkg/logger"
)

type SuggestionConfig struct {
	// Generator is optional. Without it, or when it fails, a canned text is used.
	Generator domain.TextGenerator
	// Pick chooses an index in [0, n). Defaults to a random pick.
	Pick   func(n int) int
	Logger *slog.Logger
}

type suggestionUsecase struct {
	manager *WorkspaceManager
	gen     domain.TextGenerator
	pick    func(n int) int
	log     *slog.Logger
}

func NewSuggestionUsecase(manager *WorkspaceManager, cfg SuggestionConfig) domain.SuggestionUsecase {
	if cfg.Pick == nil {
		cfg.Pick = rand.IntN
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Log
	}
	if log == nil {
		log = slog.Default()
	}
	return &suggestionUsecase{manager: manager, gen: cfg.Generator, pick: cfg.Pick, log: log}
}

func (u *suggestionUsecase) SuggestSummary(ctx context.Context, workspaceID string) (*domain.CVDocument, error) {
	ws, err := u.manager.Get(workspaceID)
	if err != nil {
		return nil, err
	}
	doc := ws.Builder.Snapshot()

	text := u.generate(ctx, summaryPrompt(doc))
	if text == "" {
		text = domain.SummarySuggestions[u.pick(len(domain.SummarySuggestions))]
	}
	return ws.Builder.SetSummary(text)
}

func (u *suggestionUsecase) SuggestExperience(ctx context.Context, workspaceID string, id domain.EntryID) (*domain.CVDocument, error) {
	ws, err := u.manager.Get(workspaceID)
	if err != nil {
		return nil, err
	}
	doc := ws.Builder.Snapshot()

	var entry *domain.ExperienceEntry
	for i := range doc.Experience {
		if doc.Experience[i].ID == id {
			entry = &doc.Experience[i]
			break
		}
	}
	if entry == nil {
		return nil, apperror.NotFound("Experience entry not found")
	}

	text := u.generate(ctx, experiencePrompt(entry))
	if text == "" {
		tmpl := domain.ExperienceTemplates[u.pick(len(domain.ExperienceTemplates))]
		text = fmt.Sprintf(tmpl, entry.Company, entry.JobTitle)
	}
	return ws.Builder.Update(domain.SectionExperience, id, "description", text)
}

func (u *suggestionUsecase) generate(ctx context.Context, prompt string) string {
	if u.gen == nil {
		return ""
	}
	text, err := u.gen.Generate(ctx, prompt)
	if err != nil {
		u.log.Warn("Text generation failed, using canned suggestion", "error", err)
		return ""
	}
	return strings.TrimSpace(text)
}

func summaryPrompt(doc *domain.CVDocument) string {
	var b strings.Builder
	b.WriteString("Write a professional CV summary of two or three sentences in plain text, without markdown.\n")
	if doc.PersonalInfo.FullName != "" {
		fmt.Fprintf(&b, "Name: %s\n", doc.PersonalInfo.FullName)
	}
	for _, e := range doc.Experience {
		if e.JobTitle != "" || e.Company != "" {
			fmt.Fprintf(&b, "Experience: %s at %s\n", e.JobTitle, e.Company)
		}
	}
	for _, e := range doc.Education {
		if e.Degree != "" {
			fmt.Fprintf(&b, "Education: %s %s\n", e.Degree, e.Field)
		}
	}
	if len(doc.Skills) > 0 {
		names := make([]string, 0, len(doc.Skills))
		for _, s := range doc.Skills {
			names = append(names, s.Name)
		}
		fmt.Fprintf(&b, "Skills: %s\n", strings.Join(names, ", "))
	}
	return b.String()
}

func experiencePrompt(e *domain.ExperienceEntry) string {
	return fmt.Sprintf(
		"Write three short CV bullet points, one per line starting with \"- \", for a %s position at %s. Plain text only.\nCurrent notes: %s",
		e.JobTitle, e.Company, e.Description,
	)
}

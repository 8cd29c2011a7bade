package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"cvcraft-backend/internal/domain"
	"cvcraft-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func first(int) int { return 0 }

func TestSuggestion_CannedFallback(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ws, _ := e.manager.Open(ctx, "")
	uc := usecase.NewSuggestionUsecase(e.manager, usecase.SuggestionConfig{Pick: first})

	doc, err := uc.SuggestSummary(ctx, ws.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SummarySuggestions[0], doc.PersonalInfo.Summary)

	doc, _ = ws.Builder.Add(domain.SectionExperience, domain.NewEntryInput{})
	id := doc.Experience[0].ID
	ws.Builder.Update(domain.SectionExperience, id, "company", "Acme")
	ws.Builder.Update(domain.SectionExperience, id, "jobTitle", "Engineer")

	doc, err = uc.SuggestExperience(ctx, ws.ID, id)
	require.NoError(t, err)
	assert.Contains(t, doc.Experience[0].Description, "at Acme")

	_, err = uc.SuggestExperience(ctx, ws.ID, 12345)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestSuggestion_Generator(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ws, _ := e.manager.Open(ctx, "")
	ws.Builder.SetPersonalInfo("fullName", "Jane")

	gen := new(MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool { return strings.Contains(p, "Name: Jane") })).
		Return("  Seasoned engineer.  ", nil).Once()
	uc := usecase.NewSuggestionUsecase(e.manager, usecase.SuggestionConfig{Generator: gen, Pick: first})

	doc, err := uc.SuggestSummary(ctx, ws.ID)
	require.NoError(t, err)
	assert.Equal(t, "Seasoned engineer.", doc.PersonalInfo.Summary)

	gen.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("quota exceeded")).Once()
	doc, err = uc.SuggestSummary(ctx, ws.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SummarySuggestions[0], doc.PersonalInfo.Summary, "generator failure falls back")
	gen.AssertExpectations(t)
}

package service

import (
	"strings"
	"testing"

	"github.com/ds124wfegd/ai-power-backend/internal/entity"
	"github.com/ds124wfegd/ai-power-backend/internal/pkg/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEmptyPromptRejected тестирует валидацию пустого промпта на всех операциях
func TestEmptyPromptRejected(t *testing.T) {
	svc := NewGenerateService()

	prompts := []struct {
		name   string
		prompt string
	}{
		{name: "empty string", prompt: ""},
		{name: "spaces only", prompt: "   "},
		{name: "tabs and newlines", prompt: "\t\n  \n"},
	}

	for _, tt := range prompts {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GenerateText(tt.prompt)
			assert.ErrorIs(t, err, entity.ErrPromptRequired)

			_, err = svc.GenerateImage(tt.prompt)
			assert.ErrorIs(t, err, entity.ErrPromptRequired)

			_, err = svc.GenerateScript(tt.prompt)
			assert.ErrorIs(t, err, entity.ErrPromptRequired)
		})
	}
}

// TestPromptTrimming проверяет, что окружающие пробелы не влияют на результат
func TestPromptTrimming(t *testing.T) {
	svc := NewGenerateService()

	trimmed, err := svc.GenerateText("solar sails")
	require.NoError(t, err)

	padded, err := svc.GenerateText("  solar sails\n")
	require.NoError(t, err)

	assert.Equal(t, trimmed, padded)
	assert.Equal(t, "solar sails", padded.Prompt)

	trimmedImg, err := svc.GenerateImage("solar sails")
	require.NoError(t, err)

	paddedImg, err := svc.GenerateImage("\tsolar sails  ")
	require.NoError(t, err)

	assert.Equal(t, trimmedImg, paddedImg)
}

// TestGenerateText тестирует текстовый ответ
func TestGenerateText(t *testing.T) {
	svc := NewGenerateService()

	response, err := svc.GenerateText("orbital data centers")
	require.NoError(t, err)

	assert.Equal(t, "orbital data centers", response.Prompt)
	assert.Contains(t, response.Text, "orbital data centers")
}

// TestGenerateImage тестирует ответ с изображением
func TestGenerateImage(t *testing.T) {
	svc := NewGenerateService()

	response, err := svc.GenerateImage("orbital data centers")
	require.NoError(t, err)

	assert.Equal(t, "orbital data centers", response.Prompt)
	assert.Equal(t, synth.SVGFormat, response.Format)
	assert.True(t, strings.HasPrefix(response.DataURL, "data:image/svg+xml;base64,"))
}

// TestGenerateScript тестирует ответ со сценарием
func TestGenerateScript(t *testing.T) {
	svc := NewGenerateService()

	response, err := svc.GenerateScript("orbital data centers")
	require.NoError(t, err)

	assert.Equal(t, "orbital data centers", response.Prompt)
	assert.Equal(t, 10, response.EstimatedMinutes)
	assert.GreaterOrEqual(t, len(strings.Fields(response.Script)), 1200)
}

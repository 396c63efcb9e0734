package service

import (
	"strings"

	"github.com/ds124wfegd/ai-power-backend/internal/entity"
	"github.com/ds124wfegd/ai-power-backend/internal/pkg/synth"
)

func (s *generateService) GenerateText(prompt string) (*entity.TextResponse, error) {
	prompt, err := normalizePrompt(prompt)
	if err != nil {
		return nil, err
	}

	return &entity.TextResponse{
		Prompt: prompt,
		Text:   synth.Text(prompt),
	}, nil
}

func (s *generateService) GenerateImage(prompt string) (*entity.ImageResponse, error) {
	prompt, err := normalizePrompt(prompt)
	if err != nil {
		return nil, err
	}

	return &entity.ImageResponse{
		Prompt:  prompt,
		DataURL: synth.DataURL(prompt),
		Format:  synth.SVGFormat,
	}, nil
}

func (s *generateService) GenerateScript(prompt string) (*entity.ScriptResponse, error) {
	prompt, err := normalizePrompt(prompt)
	if err != nil {
		return nil, err
	}

	return &entity.ScriptResponse{
		Prompt:           prompt,
		Script:           synth.Script(prompt),
		EstimatedMinutes: synth.EstimatedMinutes,
	}, nil
}

// normalizePrompt trims surrounding whitespace; synthesizers only ever see
// the trimmed prompt, so padded prompts behave as their trimmed form.
func normalizePrompt(prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", entity.ErrPromptRequired
	}
	return prompt, nil
}

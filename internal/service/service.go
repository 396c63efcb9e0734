package service

import (
	"github.com/ds124wfegd/ai-power-backend/internal/entity"
)

type GenerateService interface {
	GenerateText(prompt string) (*entity.TextResponse, error)
	GenerateImage(prompt string) (*entity.ImageResponse, error)
	GenerateScript(prompt string) (*entity.ScriptResponse, error)
}

type generateService struct{}

func NewGenerateService() GenerateService {
	return &generateService{}
}

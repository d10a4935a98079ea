package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/entities"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/repositories"
)

var (
	ErrAdvisorBusy   = errors.New("service temporarily unavailable due to high demand")
	ErrEmptyAdvice   = errors.New("no advice generated")
	ErrInvalidAdvice = errors.New("invalid advice request")
)

type AdviceDomainService struct {
	aiService repositories.StyleAdvisorAIService
}

func NewAdviceDomainService(aiService repositories.StyleAdvisorAIService) *AdviceDomainService {
	return &AdviceDomainService{
		aiService: aiService,
	}
}

func (s *AdviceDomainService) ProcessAdvice(ctx context.Context, request *entities.AdviceRequest) (*entities.AdviceResult, error) {
	if err := s.validateRequest(request); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}

	if err := request.PrepareImages(); err != nil {
		return nil, fmt.Errorf("image preparation failed: %w", err)
	}

	result, err := s.aiService.GenerateAdvice(ctx, request)
	if err != nil {
		if s.isQuotaError(err) {
			return nil, fmt.Errorf("%w: %v", ErrAdvisorBusy, err)
		}
		return nil, fmt.Errorf("advice generation failed: %w", err)
	}

	if result == nil || !result.HasText() {
		return nil, ErrEmptyAdvice
	}

	return result, nil
}

func (s *AdviceDomainService) validateRequest(request *entities.AdviceRequest) error {
	if request == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidAdvice)
	}

	palette := request.Palette()
	if palette.Upper.IsEmpty() || palette.Lower.IsEmpty() || palette.Shoe.IsEmpty() {
		return fmt.Errorf("%w: all three colors are required", ErrInvalidAdvice)
	}

	return nil
}

func (s *AdviceDomainService) isQuotaError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "quota exceeded") ||
		strings.Contains(errStr, "resourceexhausted") ||
		strings.Contains(errStr, "resource_exhausted")
}

// Package mocks provides testify mocks for the wizard's collaborators.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/whalekit/strategist/pkg/models"
)

// MockGenerator is a mock implementation of the generation.Generator
// interface.
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateContent(ctx context.Context, scenarioID string) ([]models.ContentSequence, error) {
	args := m.Called(ctx, scenarioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.ContentSequence), args.Error(1)
}

func (m *MockGenerator) ExtractBusinessInfo(ctx context.Context, description string, files []string) (models.BusinessInfo, error) {
	args := m.Called(ctx, description, files)

	return args.Get(0).(models.BusinessInfo), args.Error(1)
}

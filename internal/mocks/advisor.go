package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/advisorlabs/course-advisor/internal/models"
)

// MockPredictor is a testify mock for services.Predictor.
type MockPredictor struct {
	mock.Mock
}

func (m *MockPredictor) Predict(profile models.Profile) (models.Category, error) {
	args := m.Called(profile)
	return args.Get(0).(models.Category), args.Error(1)
}

// MockCatalogStore is a testify mock for services.CatalogStore.
type MockCatalogStore struct {
	mock.Mock
}

func (m *MockCatalogStore) FirstMatch(keywords []string) (string, error) {
	args := m.Called(keywords)
	return args.String(0), args.Error(1)
}

func (m *MockCatalogStore) CountMatching(keywords []string) int {
	args := m.Called(keywords)
	return args.Int(0)
}

func (m *MockCatalogStore) Titles() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockCatalogStore) Len() int {
	args := m.Called()
	return args.Int(0)
}

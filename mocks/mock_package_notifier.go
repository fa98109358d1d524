package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"studioportal/internal/domain"
)

// MockPackageNotifier is a mock implementation of port.PackageNotifier.
type MockPackageNotifier struct {
	mock.Mock
}

func (m *MockPackageNotifier) SendPackageUpdated(ctx context.Context, toEmail string, pkg *domain.Package) error {
	args := m.Called(ctx, toEmail, pkg)
	return args.Error(0)
}

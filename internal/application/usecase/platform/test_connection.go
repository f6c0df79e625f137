// Package platform contains use cases around the commerce-platform connectors.
package platform

import (
	"context"

	"github.com/marketing-manager/backend/internal/application/adapter"
	"github.com/marketing-manager/backend/internal/domain/entity"
)

// ConnectorFactory builds a connector for one platform and credential set.
// The concrete factory lives in the integration layer.
type ConnectorFactory func(platform entity.Platform) (adapter.PlatformConnector, error)

// TestConnectionInput represents the input for a connection test.
type TestConnectionInput struct {
	Platform entity.Platform
}

// TestConnectionOutput represents the output of a connection test.
type TestConnectionOutput struct {
	Platform  string
	Connected bool
}

// TestConnectionUseCase validates platform credentials by probing the
// vendor's product catalog.
type TestConnectionUseCase struct {
	factory ConnectorFactory
}

// NewTestConnectionUseCase creates a new TestConnectionUseCase instance.
func NewTestConnectionUseCase(factory ConnectorFactory) *TestConnectionUseCase {
	return &TestConnectionUseCase{
		factory: factory,
	}
}

// Execute runs the connection test. A failing probe is a result, not an
// error: only an unknown platform fails.
func (uc *TestConnectionUseCase) Execute(ctx context.Context, input TestConnectionInput) (*TestConnectionOutput, error) {
	connector, err := uc.factory(input.Platform)
	if err != nil {
		return nil, err
	}

	return &TestConnectionOutput{
		Platform:  connector.PlatformName(),
		Connected: connector.TestConnection(ctx),
	}, nil
}

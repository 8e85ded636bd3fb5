package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Hashimp6/broperty/internal/whatsapp"
)

type MockChatbotService struct {
	mock.Mock
}

func (m *MockChatbotService) Verify(mode, token, challenge string) (string, error) {
	args := m.Called(mode, token, challenge)
	return args.String(0), args.Error(1)
}

func (m *MockChatbotService) HandleWebhook(ctx context.Context, w whatsapp.Webhook) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

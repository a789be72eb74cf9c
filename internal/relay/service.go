package relay

//go:generate mockgen -destination=./service_mock_test.go -package=relay -source=service.go Service

import (
	"context"
	"fmt"
)

// Service defines the business logic of the relay.
type Service interface {
	// Analyse sends the prompt to Cohere and returns the generated text.
	Analyse(ctx context.Context, prompt string) (string, error)
}

// Options are the fixed parts of every outbound chat request.
type Options struct {
	Model     string
	MaxTokens int
}

// service is the concrete implementation of the Service interface.
type service struct {
	chat  ChatClient       // client for the external Cohere API
	creds CredentialSource // read once per call, never cached
	opts  Options
}

// NewService is the constructor for the relay service.
func NewService(chat ChatClient, creds CredentialSource, opts Options) Service {
	return &service{
		chat:  chat,
		creds: creds,
		opts:  opts,
	}
}

// Analyse implements the Service interface.
func (s *service) Analyse(ctx context.Context, prompt string) (string, error) {
	apiKey, err := s.creds.APIKey()
	if err != nil {
		return "", err
	}

	payload, err := s.chat.Chat(ctx, apiKey, NewChatRequest(s.opts.Model, s.opts.MaxTokens, prompt))
	if err != nil {
		return "", fmt.Errorf("cohere client failed: %w", err)
	}

	return ExtractText(payload)
}

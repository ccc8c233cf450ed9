package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/cezvahid/tonto/internal/services/messaging Service

// Service is the interface for the messaging service
type Service interface {
	// Announce returns the message for a game event, with the event's
	// substitution fields filled in
	Announce(ctx context.Context, input *AnnounceInput) (*AnnounceOutput, error)
}

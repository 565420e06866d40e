package port

import "github.com/verrdonm/videochat/internal/core/domain"

// Client is the outbound half of one connected peer. The owning participant
// serializes Send calls; implementations never see two at once for the same
// client.
type Client interface {
	Send(msg domain.Message) error
	Close() error
}

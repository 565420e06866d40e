package service

import (
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/verrdonm/videochat/internal/core/domain"
	"github.com/verrdonm/videochat/internal/core/port"
)

// Participant pairs a name with the send half of its connection. It is created
// at join time and dropped at leave time; it never outlives the connection.
type Participant struct {
	name string

	// mu keeps concurrent deliveries from interleaving on the wire. Two
	// senders relaying to the same recipient queue behind each other here.
	mu     sync.Mutex
	client port.Client
}

func NewParticipant(name string, client port.Client) *Participant {
	return &Participant{name: name, client: client}
}

func (p *Participant) Name() string {
	return p.name
}

// Send writes one message to the connection. A vanished peer is steady state
// in this domain, not a fault: write errors are logged and swallowed so relay
// callers stay unaffected.
func (p *Participant) Send(msg domain.Message) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.client.Send(msg); err != nil {
		log.Warn().Err(err).Str("name", p.name).Msg("Failed to deliver message")
	}
}

// Close closes the underlying connection.
func (p *Participant) Close() {
	if err := p.client.Close(); err != nil {
		log.Debug().Err(err).Str("name", p.name).Msg("Error closing connection")
	}
}

package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/verrdonm/videochat/internal/core/domain"
)

// fakeClient records everything sent through it. sendDelay widens the window
// in which overlapping Send calls would be caught.
type fakeClient struct {
	mu       sync.Mutex
	messages []domain.Message
	closed   bool

	sendErr   error
	sendDelay time.Duration

	inFlight atomic.Int32
	overlap  atomic.Bool
}

func (f *fakeClient) Send(msg domain.Message) error {
	if f.inFlight.Add(1) != 1 {
		f.overlap.Store(true)
	}
	if f.sendDelay > 0 {
		time.Sleep(f.sendDelay)
	}
	f.inFlight.Add(-1)

	if f.sendErr != nil {
		return f.sendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakeClient) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeClient) Messages() []domain.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Message, len(f.messages))
	copy(out, f.messages)
	return out
}

func (f *fakeClient) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *fakeClient) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = nil
}

func offerTo(recipient, sender string) domain.Message {
	return domain.Message{
		Recipient: recipient,
		Payload:   domain.Payload{Offer: &domain.Signal{Sender: sender, Payload: "SDP..."}},
	}
}

package service

import (
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/verrdonm/videochat/internal/core/domain"
)

// Room holds the participants of one room keyed by name. Each room carries its
// own lock, so traffic in one room never blocks another.
type Room struct {
	mu           sync.RWMutex
	participants map[string]*Participant
}

func NewRoom() *Room {
	return &Room{participants: make(map[string]*Participant)}
}

// AddParticipant registers p under its name. The first writer wins: when the
// name is already taken the room is left untouched and false is returned.
func (r *Room) AddParticipant(p *Participant) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.participants[p.Name()]; ok {
		return false
	}
	r.participants[p.Name()] = p
	return true
}

// RemoveParticipant drops the named participant. Idempotent.
func (r *Room) RemoveParticipant(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.participants, name)
}

// Deliver forwards msg to the participant it addresses. An unknown recipient
// is a silent drop; stale targets are expected here.
func (r *Room) Deliver(msg domain.Message) {
	r.mu.RLock()
	p, ok := r.participants[msg.Recipient]
	r.mu.RUnlock()
	if !ok {
		log.Debug().Str("recipient", msg.Recipient).Msg("Recipient not in room, dropping message")
		return
	}
	p.Send(msg)
}

// OtherParticipantNames returns every current name except exclude. Order is
// whatever map iteration yields; callers must not depend on it.
func (r *Room) OtherParticipantNames(exclude string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Reject(lo.Keys(r.participants), func(name string, _ int) bool {
		return name == exclude
	})
}

// Empty reports whether the room has no participants left.
func (r *Room) Empty() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.participants) == 0
}

func (r *Room) closeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, p := range r.participants {
		p.Close()
		delete(r.participants, name)
	}
}

package service

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/verrdonm/videochat/internal/core/domain"
)

// RoomService owns the room map and routes joins, leaves and relays to the
// right room. Safe for any number of concurrent callers; the registry lock
// covers only the room map itself, each room serializes its own membership.
type RoomService struct {
	mu    sync.RWMutex
	rooms map[string]*Room

	// rosterDelay is the grace period between a join completing and the
	// roster push to the joiner. The roster is computed when the push fires,
	// so near-simultaneous joiners see each other. Zero pushes synchronously.
	rosterDelay time.Duration
}

func NewRoomService(rosterDelay time.Duration) *RoomService {
	return &RoomService{
		rooms:       make(map[string]*Room),
		rosterDelay: rosterDelay,
	}
}

// Join adds p to the named room, creating the room on first use, then pushes
// the current roster to the joiner alone. Returns false without registering
// anything when the name is already taken in the room; the rejected
// connection stays with the caller.
func (s *RoomService) Join(roomID string, p *Participant) bool {
	s.mu.Lock()
	room, ok := s.rooms[roomID]
	if !ok {
		room = NewRoom()
		s.rooms[roomID] = room
		log.Info().Str("room", roomID).Msg("Room created")
	}
	added := room.AddParticipant(p)
	s.mu.Unlock()

	if !added {
		log.Warn().Str("room", roomID).Str("name", p.Name()).Msg("Name already taken, rejecting join")
		return false
	}
	log.Info().Str("room", roomID).Str("name", p.Name()).Msg("Participant joined")

	if s.rosterDelay == 0 {
		s.pushRoster(room, p)
		return true
	}
	go func() {
		time.Sleep(s.rosterDelay)
		s.pushRoster(room, p)
	}()
	return true
}

// pushRoster tells the joiner who else is in the room. Delivery goes through
// the room, so a joiner that already left gets a silent drop; failures never
// reach the join caller.
func (s *RoomService) pushRoster(room *Room, p *Participant) {
	names := room.OtherParticipantNames(p.Name())
	room.Deliver(domain.NewPeersMessage(p.Name(), names))
}

// Leave removes the named participant; a missing room or name is a no-op.
// Remaining peers are not notified. The last leaver takes the room with it.
func (s *RoomService) Leave(roomID, name string) {
	s.mu.RLock()
	room, ok := s.rooms[roomID]
	s.mu.RUnlock()
	if !ok {
		return
	}
	room.RemoveParticipant(name)
	log.Info().Str("room", roomID).Str("name", name).Msg("Participant left")

	// Joins mutate membership under the registry write lock, so re-checking
	// emptiness under it cannot race with a concurrent join.
	s.mu.Lock()
	if room, ok := s.rooms[roomID]; ok && room.Empty() {
		delete(s.rooms, roomID)
		log.Info().Str("room", roomID).Msg("Room deleted")
	}
	s.mu.Unlock()
}

// Relay forwards msg to its recipient inside the named room. Unknown rooms
// and recipients are silent drops; the sender gets no acknowledgment either
// way.
func (s *RoomService) Relay(roomID string, msg domain.Message) {
	s.mu.RLock()
	room, ok := s.rooms[roomID]
	s.mu.RUnlock()
	if !ok {
		log.Debug().Str("room", roomID).Msg("Unknown room, dropping message")
		return
	}
	room.Deliver(msg)
}

// Shutdown closes every live connection and clears all rooms.
func (s *RoomService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, room := range s.rooms {
		room.closeAll()
		delete(s.rooms, id)
	}
	log.Info().Msg("Room service stopped")
}

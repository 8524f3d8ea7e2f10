package services

import (
	"sync"

	"github.com/Flame02op/multiplayer-bingo-app/game"
	"github.com/Flame02op/multiplayer-bingo-app/utils/logger"
)

// Service is the registry of live rooms, keyed by session code. Sessions are
// created lazily: looking up a code that does not exist yet yields a fresh
// lobby under that code, so a shared link works before anyone has joined.
type Service struct {
	mu    sync.Mutex
	rooms map[string]*Room

	announcer *Announcer
	archive   *Archive
}

func New(announcer *Announcer, archive *Archive) *Service {
	return &Service{
		rooms:     make(map[string]*Room),
		announcer: announcer,
		archive:   archive,
	}
}

// Room returns the live room for a code, creating it if absent.
func (s *Service) Room(code string) *Room {
	code = game.NormalizeCode(code)

	s.mu.Lock()
	defer s.mu.Unlock()
	if room, ok := s.rooms[code]; ok {
		return room
	}
	room := NewRoom(code, s.announcer, s.archive)
	s.rooms[code] = room
	logger.Infof("[Service] created session %s", code)
	return room
}

// CreateRoom makes a room under a newly generated code.
func (s *Service) CreateRoom() *Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := game.NewCode()
	for s.rooms[code] != nil {
		code = game.NewCode()
	}
	room := NewRoom(code, s.announcer, s.archive)
	s.rooms[code] = room
	logger.Infof("[Service] created session %s", code)
	return room
}

// Lookup returns the room for a code without creating one.
func (s *Service) Lookup(code string) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[game.NormalizeCode(code)]
	return room, ok
}

// Archive exposes the round archive for the REST layer.
func (s *Service) Archive() *Archive {
	return s.archive
}

package room

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"mindsoul/server/model"
)

// Member is one live socket connection as the registry sees it. The write
// func is injected by the transport layer; raw connection handles never
// enter the registry.
type Member struct {
	ID    string
	Alias string
	write func(v any) error
}

// NewMember wraps a transport write func. The func must be safe for the
// registry to call from any member's goroutine.
func NewMember(write func(v any) error) *Member {
	return &Member{
		ID:    uuid.NewString(),
		write: write,
	}
}

// Registry owns all room membership for the process. Rooms are created
// implicitly on first join and evaporate when the last member disconnects.
type Registry struct {
	mu     sync.RWMutex
	rooms  map[string]map[*Member]struct{}
	joined map[*Member]map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		rooms:  make(map[string]map[*Member]struct{}),
		joined: make(map[*Member]map[string]struct{}),
	}
}

// Join adds the member to the named room, creating it if needed. Joining a
// room twice is a no-op for membership, so duplicate joins never cause
// duplicate delivery. Any room name and alias are accepted.
func (r *Registry) Join(m *Member, roomName, alias string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.Alias = alias

	members, ok := r.rooms[roomName]
	if !ok {
		members = make(map[*Member]struct{})
		r.rooms[roomName] = members
	}
	members[m] = struct{}{}

	joined, ok := r.joined[m]
	if !ok {
		joined = make(map[string]struct{})
		r.joined[m] = joined
	}
	joined[roomName] = struct{}{}

	log.Debug("member joined room", "room", roomName, "alias", alias, "member", m.ID)
}

// Relay delivers payload to every current member of the room except the
// sender. Delivery is best-effort: a failed write is logged and skipped, and
// relaying into an unknown or empty room is a silent no-op.
func (r *Registry) Relay(roomName string, sender *Member, payload model.Envelope) {
	r.mu.RLock()
	members := make([]*Member, 0, len(r.rooms[roomName]))
	for m := range r.rooms[roomName] {
		if m != sender {
			members = append(members, m)
		}
	}
	r.mu.RUnlock()

	for _, m := range members {
		if err := m.write(payload); err != nil {
			log.Debug("relay write failed", "room", roomName, "member", m.ID, "error", err)
		}
	}
}

// Disconnect removes the member from every room it joined. Disconnection is
// the only exit; there is no explicit leave.
func (r *Registry) Disconnect(m *Member) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for roomName := range r.joined[m] {
		delete(r.rooms[roomName], m)
		if len(r.rooms[roomName]) == 0 {
			delete(r.rooms, roomName)
		}
	}
	delete(r.joined, m)
}

// Rooms returns the number of live rooms.
func (r *Registry) Rooms() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

// Members returns the current membership count of a room. An unknown room
// has zero members.
func (r *Registry) Members(roomName string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms[roomName])
}

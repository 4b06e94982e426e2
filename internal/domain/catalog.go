package domain

import (
	"fmt"
	"strings"
)

type MapID string
type AgentID string
type Role string

const (
	RoleDuelist    Role = "duelist"
	RoleController Role = "controller"
	RoleInitiator  Role = "initiator"
	RoleSentinel   Role = "sentinel"
)

// MaxCatalogSize is the largest map or agent count the 6-bit header fields can carry.
const MaxCatalogSize = 63

// Roles lists every role in display order.
var Roles = []Role{RoleDuelist, RoleController, RoleInitiator, RoleSentinel}

func (r Role) Valid() bool {
	switch r {
	case RoleDuelist, RoleController, RoleInitiator, RoleSentinel:
		return true
	default:
		return false
	}
}

type Map struct {
	ID   MapID
	Name string
}

type Agent struct {
	ID   AgentID
	Name string
	Role Role
	Icon string
}

// Catalog is the ordered set of maps and agents. Positions are wire-format
// indexes, so reordering either list changes the meaning of shared links.
type Catalog struct {
	maps       []Map
	agents     []Agent
	mapIndex   map[MapID]int
	agentIndex map[AgentID]int
}

func NewCatalog(maps []Map, agents []Agent) (Catalog, error) {
	if len(maps) > MaxCatalogSize {
		return Catalog{}, fmt.Errorf("%w: %d maps (max %d)", ErrCatalogTooLarge, len(maps), MaxCatalogSize)
	}
	if len(agents) > MaxCatalogSize {
		return Catalog{}, fmt.Errorf("%w: %d agents (max %d)", ErrCatalogTooLarge, len(agents), MaxCatalogSize)
	}

	c := Catalog{
		maps:       append([]Map(nil), maps...),
		agents:     append([]Agent(nil), agents...),
		mapIndex:   make(map[MapID]int, len(maps)),
		agentIndex: make(map[AgentID]int, len(agents)),
	}

	for i, m := range c.maps {
		if strings.TrimSpace(string(m.ID)) == "" {
			return Catalog{}, fmt.Errorf("%w: map %d has an empty id", ErrInvalidCatalog, i)
		}
		if _, ok := c.mapIndex[m.ID]; ok {
			return Catalog{}, fmt.Errorf("%w: duplicate map %q", ErrInvalidCatalog, m.ID)
		}
		if m.Name == "" {
			c.maps[i].Name = string(m.ID)
		}
		c.mapIndex[m.ID] = i
	}

	for i, a := range c.agents {
		if strings.TrimSpace(string(a.ID)) == "" {
			return Catalog{}, fmt.Errorf("%w: agent %d has an empty id", ErrInvalidCatalog, i)
		}
		if _, ok := c.agentIndex[a.ID]; ok {
			return Catalog{}, fmt.Errorf("%w: duplicate agent %q", ErrInvalidCatalog, a.ID)
		}
		if !a.Role.Valid() {
			return Catalog{}, fmt.Errorf("%w: agent %q has unknown role %q", ErrInvalidCatalog, a.ID, a.Role)
		}
		if a.Name == "" {
			c.agents[i].Name = string(a.ID)
		}
		c.agentIndex[a.ID] = i
	}

	return c, nil
}

func (c Catalog) Maps() []Map {
	return append([]Map(nil), c.maps...)
}

func (c Catalog) Agents() []Agent {
	return append([]Agent(nil), c.agents...)
}

func (c Catalog) MapCount() int   { return len(c.maps) }
func (c Catalog) AgentCount() int { return len(c.agents) }

func (c Catalog) MapAt(i int) Map { return c.maps[i] }

func (c Catalog) AgentAt(i int) Agent { return c.agents[i] }

func (c Catalog) MapIndex(id MapID) (int, bool) {
	i, ok := c.mapIndex[id]
	return i, ok
}

func (c Catalog) AgentIndex(id AgentID) (int, bool) {
	i, ok := c.agentIndex[id]
	return i, ok
}

func (c Catalog) HasMap(id MapID) bool {
	_, ok := c.mapIndex[id]
	return ok
}

func (c Catalog) Agent(id AgentID) (Agent, bool) {
	i, ok := c.agentIndex[id]
	if !ok {
		return Agent{}, false
	}
	return c.agents[i], true
}

// LookupMap matches a map by id or display name, ignoring case.
func (c Catalog) LookupMap(name string) (Map, bool) {
	needle := strings.TrimSpace(name)
	for _, m := range c.maps {
		if strings.EqualFold(string(m.ID), needle) || strings.EqualFold(m.Name, needle) {
			return m, true
		}
	}
	return Map{}, false
}

// LookupAgent matches an agent by id or display name, ignoring case.
func (c Catalog) LookupAgent(name string) (Agent, bool) {
	needle := strings.TrimSpace(name)
	for _, a := range c.agents {
		if strings.EqualFold(string(a.ID), needle) || strings.EqualFold(a.Name, needle) {
			return a, true
		}
	}
	return Agent{}, false
}

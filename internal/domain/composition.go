package domain

import (
	"encoding/json"
	"fmt"
)

// SlotsPerMap is the number of roster positions in one composition.
const SlotsPerMap = 5

// EmptySlot marks a slot with no agent.
const EmptySlot AgentID = ""

// Composition is the five-slot roster for one map. Slot i belongs to player i+1.
type Composition [SlotsPerMap]AgentID

func (c Composition) IsEmpty() bool {
	return c == Composition{}
}

// Filled counts non-empty slots.
func (c Composition) Filled() int {
	n := 0
	for _, agent := range c {
		if agent != EmptySlot {
			n++
		}
	}
	return n
}

// SlotOf reports the slot holding agent, or -1.
func (c Composition) SlotOf(agent AgentID) int {
	if agent == EmptySlot {
		return -1
	}
	for i, a := range c {
		if a == agent {
			return i
		}
	}
	return -1
}

func (c Composition) MarshalJSON() ([]byte, error) {
	out := make([]*string, SlotsPerMap)
	for i, agent := range c {
		if agent == EmptySlot {
			continue
		}
		id := string(agent)
		out[i] = &id
	}
	return json.Marshal(out)
}

func (c *Composition) UnmarshalJSON(data []byte) error {
	var in []*string
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if len(in) != SlotsPerMap {
		return fmt.Errorf("composition must have %d slots, got %d", SlotsPerMap, len(in))
	}

	var out Composition
	for i, agent := range in {
		if agent != nil {
			out[i] = AgentID(*agent)
		}
	}
	*c = out
	return nil
}

// Compositions is sparse: an absent map is the same as an all-empty one.
type Compositions map[MapID]Composition

func (c Compositions) Get(id MapID) Composition {
	return c[id]
}

func (c Compositions) Clone() Compositions {
	out := make(Compositions, len(c))
	for id, comp := range c {
		out[id] = comp
	}
	return out
}

// Normalize returns a copy without all-empty entries.
func (c Compositions) Normalize() Compositions {
	out := make(Compositions, len(c))
	for id, comp := range c {
		if comp.IsEmpty() {
			continue
		}
		out[id] = comp
	}
	return out
}

// Equal compares after normalization, so absent and all-empty maps match.
func (c Compositions) Equal(other Compositions) bool {
	a, b := c.Normalize(), other.Normalize()
	if len(a) != len(b) {
		return false
	}
	for id, comp := range a {
		if b[id] != comp {
			return false
		}
	}
	return true
}

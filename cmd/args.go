package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/velolib/valolab/internal/domain"
)

var errInvalidSlot = errors.New("slot must be a number from 1 to 5")

func (a *app) lookupMap(name string) (domain.Map, error) {
	m, ok := a.catalog.LookupMap(name)
	if !ok {
		return domain.Map{}, fmt.Errorf("%w: %q", domain.ErrUnknownMap, name)
	}
	return m, nil
}

// lookupAgent resolves an agent by id or name. "none" and "-" mean an empty slot.
func (a *app) lookupAgent(name string) (domain.AgentID, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "-":
		return domain.EmptySlot, nil
	}

	agent, ok := a.catalog.LookupAgent(name)
	if !ok {
		return domain.EmptySlot, fmt.Errorf("%w: %q", domain.ErrUnknownAgent, name)
	}
	return agent.ID, nil
}

// parseSlot turns a 1-based player slot into a slot index.
func parseSlot(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 || n > domain.SlotsPerMap {
		return 0, fmt.Errorf("%w: %q", errInvalidSlot, raw)
	}
	return n - 1, nil
}

func slotLabel(catalog domain.Catalog, id domain.AgentID) string {
	if id == domain.EmptySlot {
		return "-"
	}
	if agent, ok := catalog.Agent(id); ok {
		return agent.Name
	}
	return string(id)
}

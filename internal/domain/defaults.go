package domain

var defaultMaps = []Map{
	{ID: "Ascent"},
	{ID: "Bind"},
	{ID: "Haven"},
	{ID: "Split"},
	{ID: "Fracture"},
	{ID: "Breeze"},
	{ID: "Icebox"},
	{ID: "Pearl"},
	{ID: "Lotus"},
	{ID: "Sunset"},
	{ID: "Abyss"},
	{ID: "Corrode"},
}

var defaultAgents = []Agent{
	{ID: "astra", Name: "Astra", Role: RoleController},
	{ID: "breach", Name: "Breach", Role: RoleInitiator},
	{ID: "brimstone", Name: "Brimstone", Role: RoleController},
	{ID: "chamber", Name: "Chamber", Role: RoleSentinel},
	{ID: "clove", Name: "Clove", Role: RoleController},
	{ID: "cypher", Name: "Cypher", Role: RoleSentinel},
	{ID: "deadlock", Name: "Deadlock", Role: RoleSentinel},
	{ID: "fade", Name: "Fade", Role: RoleInitiator},
	{ID: "gekko", Name: "Gekko", Role: RoleInitiator},
	{ID: "harbor", Name: "Harbor", Role: RoleController},
	{ID: "iso", Name: "Iso", Role: RoleDuelist},
	{ID: "jett", Name: "Jett", Role: RoleDuelist},
	{ID: "kayo", Name: "KAY/O", Role: RoleInitiator},
	{ID: "killjoy", Name: "Killjoy", Role: RoleSentinel},
	{ID: "neon", Name: "Neon", Role: RoleDuelist},
	{ID: "omen", Name: "Omen", Role: RoleController},
	{ID: "phoenix", Name: "Phoenix", Role: RoleDuelist},
	{ID: "raze", Name: "Raze", Role: RoleDuelist},
	{ID: "reyna", Name: "Reyna", Role: RoleDuelist},
	{ID: "sage", Name: "Sage", Role: RoleSentinel},
	{ID: "skye", Name: "Skye", Role: RoleInitiator},
	{ID: "sova", Name: "Sova", Role: RoleInitiator},
	{ID: "tejo", Name: "Tejo", Role: RoleInitiator},
	{ID: "veto", Name: "Veto", Role: RoleSentinel},
	{ID: "viper", Name: "Viper", Role: RoleController},
	{ID: "vyse", Name: "Vyse", Role: RoleSentinel},
	{ID: "waylay", Name: "Waylay", Role: RoleDuelist},
	{ID: "yoru", Name: "Yoru", Role: RoleDuelist},
}

// DefaultCatalog returns the built-in catalog. Append new agents and maps at
// the end; inserting in the middle breaks every previously shared link.
func DefaultCatalog() Catalog {
	agents := make([]Agent, len(defaultAgents))
	for i, a := range defaultAgents {
		a.Icon = "agents/" + string(a.ID) + ".webp"
		agents[i] = a
	}

	catalog, err := NewCatalog(defaultMaps, agents)
	if err != nil {
		panic("domain: invalid default catalog: " + err.Error())
	}
	return catalog
}

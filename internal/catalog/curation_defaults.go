package catalog

// DefaultCuration returns the built-in popular games list. Configuration may
// replace either half of it.
func DefaultCuration() Curation {
	return Curation{
		Names:           DefaultPopularNames(),
		VariantKeywords: DefaultVariantKeywords(),
		FallbackSize:    DefaultFallbackSize,
	}
}

// DefaultVariantKeywords returns title fragments that denote add-ons,
// bundles and re-releases rather than base games.
func DefaultVariantKeywords() []string {
	return []string{
		"dlc",
		"pack",
		"expansion",
		"season pass",
		"bundle",
		"collection",
		"edition",
		"ultimate",
		"gold",
		"premium",
		"deluxe",
		"complete",
		"booster",
		"card",
		"trading",
		"starter",
		"upgrade",
		"add-on",
		"skin",
		"cosmetic",
		"weapon",
		"character",
		"hero",
		"champion",
	}
}

// DefaultPopularNames returns well-known base-game titles.
func DefaultPopularNames() []string {
	return []string{
		// Open world and RPG
		"elden ring",
		"the witcher 3",
		"cyberpunk 2077",
		"baldur's gate 3",
		"red dead redemption 2",
		"skyrim",
		"the elder scrolls v",
		"fallout 4",
		"fallout: new vegas",
		"mass effect",
		"dragon age",
		"starfield",
		"hogwarts legacy",
		"dark souls",
		"sekiro",
		"disco elysium",
		"divinity: original sin 2",

		// Action and shooters
		"resident evil 2",
		"resident evil 3",
		"resident evil 4",
		"resident evil village",
		"doom",
		"doom eternal",
		"half-life 2",
		"portal 2",
		"bioshock",
		"borderlands 2",
		"borderlands 3",
		"titanfall 2",
		"devil may cry 5",
		"monster hunter: world",
		"monster hunter rise",
		"god of war",
		"horizon zero dawn",
		"death stranding",
		"metal gear solid v",
		"tomb raider",
		"hitman 3",
		"dishonored",
		"prey",
		"control",
		"alan wake 2",

		// Strategy and simulation
		"civilization vi",
		"sid meier's civilization vi",
		"xcom 2",
		"stellaris",
		"crusader kings iii",
		"total war: warhammer iii",
		"cities: skylines",
		"frostpunk",
		"rimworld",
		"factorio",
		"stardew valley",

		// Indie
		"hades",
		"hollow knight",
		"celeste",
		"dead cells",
		"slay the spire",
		"terraria",
		"cuphead",
		"inside",
		"ori and the will of the wisps",
		"outer wilds",
		"subnautica",
		"valheim",
		"among us",
	}
}

package catalog

// Default returns the built-in Lady Luck reward table. Weights are relative;
// the money-bag ladder dominates, scrolls and socketed equipment are the
// long tail.
func Default() *Table {
	return &Table{rewards: []Reward{
		// Money bag progression (class 1-10)
		{ID: "money_bag_1", DisplayName: "Class 1 Pouch", Category: CategoryCurrencyBag, Weight: 25, Quantity: 1},
		{ID: "money_bag_2", DisplayName: "Class 2 Pouch", Category: CategoryCurrencyBag, Weight: 20, Quantity: 1},
		{ID: "money_bag_3", DisplayName: "Class 3 Sack", Category: CategoryCurrencyBag, Weight: 15, Quantity: 1},
		{ID: "money_bag_4", DisplayName: "Class 4 Sack", Category: CategoryCurrencyBag, Weight: 12, Quantity: 1},
		{ID: "money_bag_5", DisplayName: "Class 5 Chest", Category: CategoryCurrencyBag, Weight: 10, Quantity: 1},
		{ID: "money_bag_6", DisplayName: "Class 6 Chest", Category: CategoryCurrencyBag, Weight: 8, Quantity: 1},
		{ID: "money_bag_7", DisplayName: "Class 7 Treasury", Category: CategoryCurrencyBag, Weight: 6, Quantity: 1},
		{ID: "money_bag_8", DisplayName: "Class 8 Treasury", Category: CategoryCurrencyBag, Weight: 4, Quantity: 1},
		{ID: "money_bag_9", DisplayName: "Class 9 Royal Coffer", Category: CategoryCurrencyBag, Weight: 2, Quantity: 1},
		{ID: "money_bag_10", DisplayName: "Class 10 Imperial Hoard", Category: CategoryCurrencyBag, Weight: 1, Quantity: 1},

		// Ignis upgrade materials (+1 common through +6 ultra rare)
		{ID: "ignis_plus_1", DisplayName: "+1 Ignis", Category: CategoryMaterial, Weight: 20, Quantity: 1},
		{ID: "ignis_plus_2", DisplayName: "+2 Ignis", Category: CategoryMaterial, Weight: 10, Quantity: 1},
		{ID: "ignis_plus_3", DisplayName: "+3 Ignis", Category: CategoryMaterial, Weight: 5, Quantity: 1},
		{ID: "ignis_plus_4", DisplayName: "+4 Ignis", Category: CategoryMaterial, Weight: 1, Quantity: 1},
		{ID: "ignis_plus_5", DisplayName: "+5 Ignis", Category: CategoryMaterial, Weight: 0.2, Quantity: 1},
		{ID: "ignis_plus_6", DisplayName: "+6 Ignis", Category: CategoryMaterial, Weight: 0.05, Quantity: 1},

		// Comets and wyrm spheres
		{ID: "comet_stone", DisplayName: "Comet", Category: CategoryMaterial, Weight: 15, Quantity: 1},
		{ID: "wyrm_sphere_artifact", DisplayName: "Wyrm Sphere", Category: CategoryMaterial, Weight: 5, Quantity: 1},

		// Scrolls (very rare)
		{ID: "comet_scroll", DisplayName: "Comet Scroll", Category: CategoryMaterial, Weight: 0.5, Quantity: 1},
		{ID: "wyrm_sphere_scroll", DisplayName: "Wyrm Sphere Scroll", Category: CategoryMaterial, Weight: 0.15, Quantity: 1},

		// Gemstones
		{ID: "gem_drake_radiant", DisplayName: "Radiant Drake Heartstone", Category: CategoryGem, Weight: 1, Quality: "Radiant", Quantity: 1},
		{ID: "gem_phoenix_radiant", DisplayName: "Radiant Ember Talon", Category: CategoryGem, Weight: 1, Quality: "Radiant", Quantity: 1},
		{ID: "gem_unicorn_radiant", DisplayName: "Radiant Unicorn Shard", Category: CategoryGem, Weight: 1, Quality: "Radiant", Quantity: 1},

		// High-end equipment (extremely rare)
		{ID: "boots_10", DisplayName: "Brilliant 2-Socket Boots", Category: CategoryEquipment, Weight: 0.1, Quality: "Brilliant", Sockets: 2, Level: 10, Quantity: 1},
		{ID: "bs_10", DisplayName: "Brilliant 2-Socket Mageblade", Category: CategoryEquipment, Weight: 0.1, Quality: "Brilliant", Sockets: 2, Level: 10, Quantity: 1},
	}}
}

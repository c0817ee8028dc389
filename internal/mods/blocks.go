package mods

import (
	"strings"

	"github.com/go-theft-auto/modkit/catalog"
)

var blockKeys = []string{
	"air", "cave_air", "void_air",
	"stone", "granite", "diorite", "andesite", "deepslate", "tuff", "calcite",
	"dirt", "grass_block", "coarse_dirt", "podzol", "mud", "clay", "gravel", "sand", "red_sand",
	"sandstone", "red_sandstone", "bedrock", "obsidian", "crying_obsidian", "netherrack", "basalt",
	"blackstone", "end_stone", "glowstone", "magma_block", "soul_sand", "soul_soil",
	"coal_ore", "deepslate_coal_ore", "iron_ore", "deepslate_iron_ore", "copper_ore",
	"deepslate_copper_ore", "gold_ore", "deepslate_gold_ore", "redstone_ore",
	"deepslate_redstone_ore", "emerald_ore", "deepslate_emerald_ore", "lapis_ore",
	"deepslate_lapis_ore", "diamond_ore", "deepslate_diamond_ore", "nether_gold_ore",
	"nether_quartz_ore", "ancient_debris", "amethyst_block", "budding_amethyst",
	"oak_log", "oak_planks", "oak_leaves", "birch_log", "birch_planks", "spruce_log",
	"spruce_planks", "jungle_log", "acacia_log", "dark_oak_log", "dark_oak_planks",
	"mangrove_log", "cherry_log", "water", "lava", "ice", "packed_ice", "snow_block",
	"chest", "trapped_chest", "ender_chest", "barrel", "spawner", "furnace", "crafting_table",
	"tnt", "bookshelf", "cobweb", "torch", "rail", "powered_rail",
}

// DefaultXrayBlocks are the blocks highlighted when nothing is stored.
var DefaultXrayBlocks = []string{
	"ancient_debris", "diamond_ore", "deepslate_diamond_ore", "emerald_ore", "gold_ore", "spawner",
}

// BlockCatalog returns the demo block catalog. Air variants are excluded since
// they have nothing to highlight.
func BlockCatalog() *catalog.Catalog {
	items := make([]catalog.Item, 0, len(blockKeys))
	for _, k := range blockKeys {
		items = append(items, catalog.Item{Key: k, Name: displayName(k), Ref: k})
	}
	return catalog.New(items, catalog.ExcludeKeyContaining("air"))
}

// displayName turns "deepslate_iron_ore" into "Deepslate Iron Ore".
func displayName(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

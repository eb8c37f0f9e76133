package premium

// StickerPremium sums the catalog bonuses of recognized stickers on an item,
// in minor currency units. Unrecognized stickers contribute nothing.
func (m *Model) StickerPremium(stickerNames []string) int64 {
	var bonus int64
	for _, name := range stickerNames {
		bonus += m.stickerCatalog[name]
	}
	return bonus
}

package premium

// PhasePremium returns the fixed multiplier for a named special variant
// (Doppler phases, gem variants). Unknown or empty tags are neutral.
func (m *Model) PhasePremium(phaseTag string) float64 {
	if phaseTag == "" {
		return 1.0
	}
	if multi, ok := m.phaseTable[phaseTag]; ok {
		return multi
	}
	return 1.0
}

// IsTopPhase reports whether the tag is one of the highest-value gem
// variants. Used by the scorer to grant its phase bonus.
func (m *Model) IsTopPhase(phaseTag string) bool {
	switch phaseTag {
	case "Emerald", "Sapphire", "Ruby":
		return true
	}
	return false
}

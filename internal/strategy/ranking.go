package strategy

import (
	"sort"
	"strings"
)

// DiversificationCap limits how many entries of one normalized item title may
// appear in a ranked result, so a single flooded listing page cannot eat the
// whole daily budget.
const DiversificationCap = 3

// Rank sorts opportunities by total score descending and returns at most
// topN of them, dropping any entry beyond the diversification cap for its
// title. The sort is stable: equal scores keep their input order.
func Rank(opportunities []*ScoredOpportunity, topN int) []*ScoredOpportunity {
	if topN <= 0 || len(opportunities) == 0 {
		return nil
	}

	sorted := make([]*ScoredOpportunity, len(opportunities))
	copy(sorted, opportunities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score.Total > sorted[j].Score.Total
	})

	ranked := make([]*ScoredOpportunity, 0, topN)
	perTitle := make(map[string]int)
	for _, opp := range sorted {
		title := normalizeTitle(opp.Title)
		if perTitle[title] >= DiversificationCap {
			continue
		}
		perTitle[title]++
		ranked = append(ranked, opp)
		if len(ranked) == topN {
			break
		}
	}
	return ranked
}

// normalizeTitle folds a market hash name into the key used for the
// diversification cap.
func normalizeTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}

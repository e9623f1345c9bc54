package display

import (
	"math"
	"strconv"
	"strings"

	"github.com/matthewbaird/catalogview/internal/fqn"
	"github.com/matthewbaird/catalogview/internal/types"
)

// tierPrefix is the FQN prefix of tier tags (Tier.Tier1 ... Tier.Tier5).
const tierPrefix = "Tier" + fqn.Separator + "Tier"

// isTierTag reports whether the tag is Tier.TierN with a numeric N.
func isTierTag(tagFQN string) bool {
	if !strings.HasPrefix(tagFQN, tierPrefix) {
		return false
	}
	level := strings.TrimSpace(tagFQN[len(tierPrefix):])
	return level != "" && level[0] >= '0' && level[0] <= '9'
}

// TierTag returns the first tier tag, if any.
func TierTag(tags []types.TagLabel) (types.TagLabel, bool) {
	for _, t := range tags {
		if isTierTag(t.TagFQN) {
			return t, true
		}
	}
	return types.TagLabel{}, false
}

// TierFromTags returns the FQN of the first tier tag, or "".
func TierFromTags(tags []types.TagLabel) string {
	t, _ := TierTag(tags)
	return t.TagFQN
}

// TagsWithoutTier drops tier tags.
func TagsWithoutTier(tags []types.TagLabel) []types.TagLabel {
	out := make([]types.TagLabel, 0, len(tags))
	for _, t := range tags {
		if !isTierTag(t.TagFQN) {
			out = append(out, t)
		}
	}
	return out
}

// Ordinalize renders n with its English ordinal suffix: 1st, 2nd, 3rd,
// 4th, 11th, 21st.
func Ordinalize(n float64) string {
	suffix := "th"
	mod10 := math.Mod(n, 10)
	mod100 := math.Mod(n, 100)
	switch {
	case mod10 == 1 && mod100 != 11:
		suffix = "st"
	case mod10 == 2 && mod100 != 12:
		suffix = "nd"
	case mod10 == 3 && mod100 != 13:
		suffix = "rd"
	}
	return strconv.FormatFloat(n, 'f', -1, 64) + suffix
}

// UsagePercentile renders a usage percentile rank rounded to one decimal,
// e.g. "45th pctile" or, with literal, "Usage 45th pctile".
func UsagePercentile(pctRank float64, literal bool) string {
	percentile := math.Round(pctRank*10) / 10
	s := Ordinalize(percentile) + " pctile"
	if literal {
		s = "Usage " + s
	}
	return s
}

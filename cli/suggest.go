package cli

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// closestMatch returns the candidate nearest to target, ignoring case, or ""
// when no candidate contains the characters of target in order.
func closestMatch(target string, candidates []string) string {
	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

// didYouMean formats a suggestion suffix for an error message.
func didYouMean(target string, candidates []string) string {
	if match := closestMatch(target, candidates); match != "" {
		return fmt.Sprintf(", did you mean '%s'?", match)
	}
	return ""
}

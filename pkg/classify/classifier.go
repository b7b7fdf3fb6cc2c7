// Package classify scores normalized articles against a keyword
// taxonomy to decide relevance, primary category and severity tier.
// The scoring is a deterministic weight accumulation, not a
// probabilistic model, so results are stable and testable.
package classify

import (
	"regexp"
	"sort"
	"strings"

	"github.com/threatwatch/threatwatch/pkg/domain"
)

// Classifier matches keyword rules against article text
type Classifier struct {
	rules   []domain.KeywordRule
	maxTags int
}

// New creates a classifier from the given taxonomy; an empty rule set
// falls back to the built-in defaults
func New(rules []domain.KeywordRule, maxTags int) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	if maxTags <= 0 {
		maxTags = 10
	}
	return &Classifier{rules: rules, maxTags: maxTags}
}

// Result holds the classifier output for a relevant article
type Result struct {
	Category     string
	Severity     domain.Severity
	Tags         []string
	Technologies []string
	CVE          string
}

// cveRe matches the standard CVE identifier format
var cveRe = regexp.MustCompile(`CVE-\d{4}-\d{4,}`)

// severity indicator lists, evaluated in order: specific severe terms
// must be checked before generic ones so a "critical exploit" never
// lands in the medium tier
var severityRules = []struct {
	severity domain.Severity
	terms    []string
}{
	{domain.SeverityCritical, []string{"critical", "zero-day", "0-day", "actively exploited", "emergency patch", "remote code execution", "rce"}},
	{domain.SeverityHigh, []string{"exploit", "breach", "ransomware", "backdoor", "stolen", "drained", "hijack"}},
	{domain.SeverityMedium, []string{"vulnerability", "patch", "flaw", "bug", "cve-", "misconfiguration"}},
}

// knownTechnologies are matched as substrings to fill the
// affected-technology set
var knownTechnologies = []string{
	"ethereum", "solana", "bitcoin", "polygon", "arbitrum", "optimism",
	"metamask", "ledger", "trezor", "uniswap", "chainlink",
	"windows", "linux", "macos", "android", "ios",
	"chrome", "firefox", "kubernetes", "docker", "aws", "azure",
	"wordpress", "apache", "nginx", "openssl",
}

// Classify scores the article text against the taxonomy. Returns
// ok=false when no keyword matches at all: the item is irrelevant and
// must be dropped, which is not an error.
func (c *Classifier) Classify(title, body string) (result Result, ok bool) {
	text := strings.ToLower(title + " " + body)

	// accumulate weight per category over all matched keywords
	scores := make(map[string]int)
	var matched []domain.KeywordRule
	for _, rule := range c.rules {
		if strings.Contains(text, strings.ToLower(rule.Keyword)) {
			scores[rule.Category] += rule.Weight
			matched = append(matched, rule)
		}
	}
	if len(matched) == 0 {
		return Result{}, false
	}

	result.Category = topCategory(scores)
	result.Severity = classifySeverity(title, matched)
	result.Tags = topTags(matched, c.maxTags)
	result.CVE = cveRe.FindString(title + " " + body)

	for _, tech := range knownTechnologies {
		if strings.Contains(text, tech) {
			result.Technologies = append(result.Technologies, tech)
		}
	}

	return result, true
}

// topCategory picks the category with the highest accumulated weight;
// ties break lexicographically to keep the result deterministic
func topCategory(scores map[string]int) string {
	best, bestScore := "", -1
	for category, score := range scores {
		if score > bestScore || (score == bestScore && category < best) {
			best, bestScore = category, score
		}
	}
	if name, found := categoryNames[best]; found {
		return name
	}
	return best
}

// classifySeverity evaluates the ordered indicator lists against the
// title and the matched keywords, first match wins; no indicator at all
// means "low"
func classifySeverity(title string, matched []domain.KeywordRule) domain.Severity {
	haystack := strings.ToLower(title)
	for _, rule := range matched {
		haystack += " " + strings.ToLower(rule.Keyword)
	}

	for _, sr := range severityRules {
		for _, term := range sr.terms {
			if strings.Contains(haystack, term) {
				return sr.severity
			}
		}
	}
	return domain.SeverityLow
}

// topTags returns the matched keywords ordered by weight then name,
// capped at n
func topTags(matched []domain.KeywordRule, n int) []string {
	sorted := make([]domain.KeywordRule, len(matched))
	copy(sorted, matched)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Weight != sorted[j].Weight {
			return sorted[i].Weight > sorted[j].Weight
		}
		return sorted[i].Keyword < sorted[j].Keyword
	})

	seen := make(map[string]bool)
	tags := make([]string, 0, n)
	for _, rule := range sorted {
		if seen[rule.Keyword] {
			continue
		}
		seen[rule.Keyword] = true
		tags = append(tags, rule.Keyword)
		if len(tags) == n {
			break
		}
	}
	return tags
}

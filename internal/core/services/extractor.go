package services

import (
	"regexp"
	"strings"
)

// Domain extraction patterns.
var (
	// domainPattern matches a domain with optional protocol, optional
	// www, a second-level label, a TLD, an optional second TLD label
	// (co.uk style) and an optional path that is discarded.
	domainPattern = regexp.MustCompile(
		`(?i)(?:https?://)?(?:www\.)?` +
			`([a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?` + // second-level label
			`\.[a-z]{2,}` + // TLD or first part of a compound TLD
			`(?:\.[a-z]{2,})?)` + // optional second TLD part
			`(?:/[^\s,;.]*)?`, // optional path
	)

	// gluedDomainPattern finds a domain-shaped substring immediately
	// followed by another alphanumeric character, the signature of two
	// domains concatenated without a separator. The trailing character
	// is captured and reinserted after a boundary space. Only known
	// TLDs participate; a generic 2-3 letter fallback would mis-split
	// hosts like www.example.com at "www.exa".
	gluedDomainPattern = regexp.MustCompile(
		`(?i)([a-z0-9-]+\.(?:com|ru|org|net|co\.uk|io|info|biz|edu|gov|uk|de|fr|es|it|nl|eu|us|ca|au|jp|cn|in|br|mx|pl|cz|sk|ua|by|kz))([a-z0-9])`,
	)
)

// normaliseRule strips one URL artefact from a candidate domain.
// Rules apply in order; each is independently testable.
type normaliseRule struct {
	name string
	re   *regexp.Regexp
}

var normaliseRules = []normaliseRule{
	{name: "protocol", re: regexp.MustCompile(`^https?://`)},
	{name: "www", re: regexp.MustCompile(`^www\.`)},
}

// minDomainLen rejects noise such as bare 2-3 character matches.
const minDomainLen = 4

// normalizeDomain lowercases a domain or URL and strips protocol, www
// prefix, path/query and port, leaving the bare host.
func normalizeDomain(raw string) string {
	d := strings.ToLower(strings.TrimSpace(raw))
	for _, rule := range normaliseRules {
		d = rule.re.ReplaceAllString(d, "")
	}
	if i := strings.IndexByte(d, '/'); i >= 0 {
		d = d[:i]
	}
	if i := strings.IndexByte(d, ':'); i >= 0 {
		d = d[:i]
	}
	return d
}

// repairGluedDomains inserts a single space at every boundary where a
// domain is glued to following alphanumeric text, so concatenated
// domains split before matching. Running the repair again is a no-op:
// the inserted space breaks the boundary it repaired.
func repairGluedDomains(text string) string {
	return gluedDomainPattern.ReplaceAllString(text, "${1} ${2}")
}

// extractDomains returns every normalised domain in text, in order of
// appearance. Decimal-like tokens can false-positive as pseudo-domains;
// that is an accepted heuristic cost, not special-cased away.
func extractDomains(text string) []string {
	repaired := repairGluedDomains(text)
	matches := domainPattern.FindAllStringSubmatch(repaired, -1)
	domains := make([]string, 0, len(matches))
	for _, m := range matches {
		d := normalizeDomain(m[1])
		if len(d) >= minDomainLen {
			domains = append(domains, d)
		}
	}
	return domains
}

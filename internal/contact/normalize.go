package contact

import (
	"errors"
	"net/url"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"
)

var (
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z]{2,}$`)
	idnaProfile  = idna.Lookup
)

const (
	trackingPrefix     = "utm_"
	defaultPhoneRegion = "US"
)

// ErrInvalidDomain is returned when a value cannot be reduced to a lookup domain.
var ErrInvalidDomain = errors.New("invalid domain")

// NormalizeDomain reduces a domain or website URL to its ASCII host name,
// e.g. "https://www.Bücher.example/about" becomes "xn--bcher-kva.example".
func NormalizeDomain(raw string) (string, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return "", ErrInvalidDomain
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", ErrInvalidDomain
	}
	host := strings.Trim(u.Hostname(), ".")
	host = strings.TrimPrefix(host, "www.")
	if !isDomainValid(host) {
		return "", ErrInvalidDomain
	}
	ascii, err := idnaProfile.ToASCII(host)
	if err != nil || ascii == "" {
		return "", ErrInvalidDomain
	}
	return ascii, nil
}

// Normalizer cleans prospect contact details returned by the enrichment vendor.
type Normalizer struct {
	DefaultRegion string
}

// NewNormalizer builds a normalizer that parses national phone numbers in the given region.
func NewNormalizer(defaultRegion string) *Normalizer {
	region := strings.ToUpper(strings.TrimSpace(defaultRegion))
	if region == "" {
		region = defaultPhoneRegion
	}
	return &Normalizer{DefaultRegion: region}
}

// Email lower-cases and validates an address. Unusable input yields nil.
func (n *Normalizer) Email(raw string) *string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" || !emailPattern.MatchString(email) {
		return nil
	}
	parts := strings.SplitN(email, "@", 2)
	domain, err := NormalizeDomain(parts[1])
	if err != nil {
		return nil
	}
	email = parts[0] + "@" + domain
	return &email
}

// Phone formats a number as E.164. Unusable input yields nil.
func (n *Normalizer) Phone(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	region := n.DefaultRegion
	if region == "" {
		region = defaultPhoneRegion
	}
	number, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return nil
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return nil
	}
	formatted := phonenumbers.Format(number, phonenumbers.E164)
	return &formatted
}

// LinkedIn accepts linkedin.com profile URLs only and drops utm_ tracking parameters.
func (n *Normalizer) LinkedIn(raw string) *string {
	u, err := sanitizeURL(raw)
	if err != nil {
		return nil
	}
	host := strings.ToLower(strings.Trim(u.Hostname(), "."))
	if host != "linkedin.com" && !strings.HasSuffix(host, ".linkedin.com") {
		return nil
	}
	stripTracking(u)
	link := u.String()
	return &link
}

func sanitizeURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("empty url")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return nil, errors.New("invalid url")
	}
	u.Scheme = "https"
	return u, nil
}

func stripTracking(u *url.URL) {
	query := u.Query()
	changed := false
	for key := range query {
		if strings.HasPrefix(strings.ToLower(key), trackingPrefix) {
			query.Del(key)
			changed = true
		}
	}
	if changed {
		u.RawQuery = query.Encode()
	}
}

func isDomainValid(domain string) bool {
	if strings.Count(domain, ".") == 0 {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" || strings.HasPrefix(part, "-") || strings.HasSuffix(part, "-") {
			return false
		}
	}
	return true
}

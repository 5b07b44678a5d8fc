package affiliate

import (
	"strings"

	"golang.org/x/net/publicsuffix"
)

const retailerMarker = "amazon"

// Короткие домены, которыми Amazon раздает уже сокращенные ссылки.
var shortDomainAliases = map[string]struct{}{
	"amzn.to":   {},
	"amzn.com":  {},
	"amzn.eu":   {},
	"amzn.asia": {},
	"a.co":      {},
}

// HostPolicy решает, принадлежит ли хост магазину.
type HostPolicy interface {
	Allows(hostname string) bool
}

// LenientPolicy принимает любой хост, содержащий "amazon", и известные короткие домены.
type LenientPolicy struct{}

// Allows реализует HostPolicy.
func (LenientPolicy) Allows(hostname string) bool {
	hostname = strings.ToLower(hostname)
	return strings.Contains(hostname, retailerMarker) || isShortDomainAlias(hostname)
}

// StrictPolicy принимает только хосты, регистрируемый домен которых начинается с "amazon.",
// и известные короткие домены. Например, amazon.evil.com отклоняется.
type StrictPolicy struct{}

// Allows реализует HostPolicy.
func (StrictPolicy) Allows(hostname string) bool {
	hostname = strings.ToLower(hostname)
	if isShortDomainAlias(hostname) {
		return true
	}

	registrable, err := publicsuffix.EffectiveTLDPlusOne(hostname)
	if err != nil {
		return false
	}
	return strings.HasPrefix(registrable, retailerMarker+".")
}

func isShortDomainAlias(hostname string) bool {
	_, ok := shortDomainAliases[hostname]
	return ok
}

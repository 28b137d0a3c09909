// Package ipextract finds IP addresses embedded in free-form text,
// such as the body of a public IP echo service response.
package ipextract

import (
	"net/netip"
	"strings"
)

const (
	ipv4Alphabet = "0123456789."
	ipv6Alphabet = "0123456789abcdefABCDEF:"
)

// IPv4 extracts all valid IPv4 addresses from the given text.
// Candidates are maximal runs of characters from the IPv4
// alphabet (0123456789.). Duplicates are returned once.
func IPv4(text string) (addresses []netip.Addr) {
	return extract(text, ipv4Alphabet)
}

// IPv6 extracts all valid IPv6 addresses from the given text.
// Candidates are maximal runs of characters from the IPv6
// alphabet (0123456789abcdefABCDEF:). Duplicates are returned once.
func IPv6(text string) (addresses []netip.Addr) {
	return extract(text, ipv6Alphabet)
}

func extract(text, alphabet string) (addresses []netip.Addr) {
	seen := make(map[netip.Addr]struct{})
	for {
		runEnd := len(text)
		for i, r := range text {
			if !strings.ContainsRune(alphabet, r) {
				runEnd = i
				break
			}
		}

		candidate := text[:runEnd]
		address, err := netip.ParseAddr(candidate)
		if err != nil {
			// A sentence-final dot or colon belongs to the
			// surrounding prose, not to the address.
			address, err = netip.ParseAddr(strings.TrimRight(candidate, ".:"))
		}
		if err == nil {
			if _, ok := seen[address]; !ok {
				seen[address] = struct{}{}
				addresses = append(addresses, address)
			}
		}

		if runEnd == len(text) {
			return addresses
		}
		text = text[runEnd+1:] // skip the non alphabet character
	}
}

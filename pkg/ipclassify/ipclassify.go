// Package ipclassify classifies strings as IPv4, IPv6 or neither.
// It is purely syntactic and intentionally more permissive than
// netip.ParseAddr: IPv4 octets may carry leading zeros, since the
// final say on validity belongs to the remote lookup service.
package ipclassify

import (
	"strconv"
	"strings"
)

type Kind uint8

const (
	None Kind = iota
	IPv4
	IPv6
)

func (k Kind) String() string {
	switch k {
	case IPv4:
		return "ipv4"
	case IPv6:
		return "ipv6"
	default:
		return "none"
	}
}

// Classify returns the syntactic kind of the given address string.
// Surrounding whitespace is ignored.
func Classify(address string) Kind {
	address = strings.TrimSpace(address)
	switch {
	case isIPv4(address):
		return IPv4
	case isIPv6(address):
		return IPv6
	default:
		return None
	}
}

// isIPv4 matches four dot-separated groups of 1 to 3 decimal
// digits, each resolving to at most 255.
func isIPv4(s string) bool {
	const groups = 4
	parts := strings.Split(s, ".")
	if len(parts) != groups {
		return false
	}
	for _, part := range parts {
		if len(part) == 0 || len(part) > 3 {
			return false
		}
		for _, c := range part {
			if c < '0' || c > '9' {
				return false
			}
		}
		octet, err := strconv.Atoi(part)
		if err != nil || octet > 255 {
			return false
		}
	}
	return true
}

// isIPv6 matches the full 8-group hex form, or a single `::`
// zero-compression with up to 7 explicit groups around it.
func isIPv6(s string) bool {
	const fullGroups = 8
	left, right, compressed := strings.Cut(s, "::")
	if compressed && strings.Contains(right, "::") {
		return false // more than one compression
	}

	leftGroups, ok := splitGroups(left)
	if !ok {
		return false
	}
	rightGroups, ok := splitGroups(right)
	if !ok {
		return false
	}

	if !compressed {
		return len(leftGroups) == fullGroups
	}
	// The compression stands for at least one zero group.
	return len(leftGroups)+len(rightGroups) < fullGroups
}

func splitGroups(s string) (groups []string, ok bool) {
	if s == "" {
		return nil, true
	}
	groups = strings.Split(s, ":")
	for _, group := range groups {
		if len(group) == 0 || len(group) > 4 {
			return nil, false
		}
		for _, c := range group {
			validHexDigit := (c >= '0' && c <= '9') ||
				(c >= 'a' && c <= 'f') ||
				(c >= 'A' && c <= 'F')
			if !validHexDigit {
				return nil, false
			}
		}
	}
	return groups, true
}

package ipextract

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_IPv4(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		text      string
		extracted []netip.Addr
	}{
		"empty": {},
		"bare address": {
			text:      "1.2.3.4",
			extracted: []netip.Addr{netip.MustParseAddr("1.2.3.4")},
		},
		"echo body with surrounding text": {
			text:      "<p>Your IP address is 203.0.113.9.</p>",
			extracted: []netip.Addr{netip.MustParseAddr("203.0.113.9")},
		},
		"mixed garbage and addresses": {
			text: " 1.2.3.4 x.x.2.2 5.6.7.8.9 10.11.12.13",
			extracted: []netip.Addr{
				netip.MustParseAddr("1.2.3.4"),
				netip.MustParseAddr("10.11.12.13"),
			},
		},
		"duplicate address": {
			text:      "1.2.3.4 then 1.2.3.4 again",
			extracted: []netip.Addr{netip.MustParseAddr("1.2.3.4")},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			extracted := IPv4(testCase.text)

			assert.Equal(t, testCase.extracted, extracted)
		})
	}
}

func Test_IPv6(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		text      string
		extracted []netip.Addr
	}{
		"empty": {},
		"compact address": {
			text:      "::1",
			extracted: []netip.Addr{netip.MustParseAddr("::1")},
		},
		"two compact addresses": {
			text: ":1 ::1 ::0 ",
			extracted: []netip.Addr{
				netip.MustParseAddr("::1"),
				netip.MustParseAddr("::0"),
			},
		},
		"full address": {
			text:      "address 2408:8256:480:3162::cef found",
			extracted: []netip.Addr{netip.MustParseAddr("2408:8256:480:3162::cef")},
		},
		"trailing colon from prose": {
			text:      "addr 2001:db8::1: done",
			extracted: []netip.Addr{netip.MustParseAddr("2001:db8::1")},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			extracted := IPv6(testCase.text)

			assert.Equal(t, testCase.extracted, extracted)
		})
	}
}

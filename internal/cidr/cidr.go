// Package cidr provides IPv4 CIDR validation and range math for subnet
// management: canonical network records, alignment correction, and
// overlap detection.
package cidr

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"go4.org/netipx"
)

// Prefix lengths accepted by subnet policy. Anything shorter than /8 is
// too large to manage as a single pool; anything longer than /30 leaves
// no usable host addresses.
const (
	MinPrefix = 8
	MaxPrefix = 30
)

// Network is the canonical record for a validated IPv4 subnet.
type Network struct {
	Prefix      netip.Prefix
	Network     netip.Addr
	Broadcast   netip.Addr
	FirstUsable netip.Addr
	LastUsable  netip.Addr
	// Hosts is the total address count 2^(32-prefix), including the
	// network and broadcast addresses.
	Hosts int
}

// FormatError reports input that does not match the a.b.c.d/n shape.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid cidr format: %q", e.Input)
}

// RangeError reports an octet or prefix length outside its legal bounds.
type RangeError struct {
	Input string
	Field string
	Value int
}

func (e *RangeError) Error() string {
	if e.Field == "prefix" {
		return fmt.Sprintf("prefix /%d out of range [%d,%d] in %q", e.Value, MinPrefix, MaxPrefix, e.Input)
	}
	return fmt.Sprintf("octet %d out of range [0,255] in %q", e.Value, e.Input)
}

// AlignmentError reports a network address with host bits set outside
// its mask. Suggested carries the same address with those bits cleared
// so callers can offer a one-click correction.
type AlignmentError struct {
	Input     string
	Suggested string
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("%q has host bits set, did you mean %q", e.Input, e.Suggested)
}

// Validate parses and validates an IPv4 CIDR string, returning its
// canonical network record. It is pure and deterministic.
func Validate(s string) (Network, error) {
	addrPart, prefixPart, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return Network{}, &FormatError{Input: s}
	}

	octetParts := strings.Split(addrPart, ".")
	if len(octetParts) != 4 {
		return Network{}, &FormatError{Input: s}
	}

	var octets [4]byte
	for i, part := range octetParts {
		n, err := parseDecimal(part)
		if err != nil {
			return Network{}, &FormatError{Input: s}
		}
		if n > 255 {
			return Network{}, &RangeError{Input: s, Field: "octet", Value: n}
		}
		octets[i] = byte(n)
	}

	bits, err := parseDecimal(prefixPart)
	if err != nil {
		return Network{}, &FormatError{Input: s}
	}
	if bits < MinPrefix || bits > MaxPrefix {
		return Network{}, &RangeError{Input: s, Field: "prefix", Value: bits}
	}

	addr := netip.AddrFrom4(octets)
	prefix := netip.PrefixFrom(addr, bits)
	masked := prefix.Masked()
	if masked.Addr() != addr {
		return Network{}, &AlignmentError{Input: s, Suggested: masked.String()}
	}

	return fromPrefix(masked), nil
}

// FromPrefix builds the canonical record for an already-parsed IPv4
// prefix. The prefix must be masked and within the policy band.
func FromPrefix(p netip.Prefix) (Network, error) {
	if !p.IsValid() || !p.Addr().Is4() {
		return Network{}, &FormatError{Input: p.String()}
	}
	if p.Bits() < MinPrefix || p.Bits() > MaxPrefix {
		return Network{}, &RangeError{Input: p.String(), Field: "prefix", Value: p.Bits()}
	}
	masked := p.Masked()
	if masked.Addr() != p.Addr() {
		return Network{}, &AlignmentError{Input: p.String(), Suggested: masked.String()}
	}
	return fromPrefix(masked), nil
}

func fromPrefix(p netip.Prefix) Network {
	r := netipx.RangeOfPrefix(p)
	return Network{
		Prefix:      p,
		Network:     r.From(),
		Broadcast:   r.To(),
		FirstUsable: r.From().Next(),
		LastUsable:  r.To().Prev(),
		Hosts:       1 << (32 - p.Bits()),
	}
}

// String returns the canonical CIDR text.
func (n Network) String() string {
	return n.Prefix.String()
}

// Range returns the inclusive address range of the network.
func (n Network) Range() netipx.IPRange {
	return netipx.IPRangeFrom(n.Network, n.Broadcast)
}

// Contains reports whether addr lies inside the network range,
// including the network and broadcast addresses.
func (n Network) Contains(addr netip.Addr) bool {
	return n.Prefix.Contains(addr)
}

// Overlaps reports whether two networks share any address. The test is
// an inclusive range intersection over the 32-bit space, so a superset
// candidate is caught by the same comparison.
func Overlaps(a, b Network) bool {
	return a.Range().Overlaps(b.Range())
}

// parseDecimal accepts up to three ASCII digits. Unlike strconv alone
// it rejects signs, spaces and empty strings, keeping format errors
// distinct from range errors.
func parseDecimal(s string) (int, error) {
	if s == "" || len(s) > 3 {
		return 0, fmt.Errorf("not a decimal: %q", s)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("not a decimal: %q", s)
		}
	}
	return strconv.Atoi(s)
}

package requirements

import (
	"net/netip"

	"github.com/dmitrymomot/requirements/pkg/target"
)

// AddrValidator validates an IP address. The zero netip.Addr is null.
type AddrValidator struct {
	base[netip.Addr]
}

func Addr(s Subject, value netip.Addr) *AddrValidator {
	t := target.Valid(value)
	if !value.IsValid() {
		t = target.Null[netip.Addr]()
	}
	return &AddrValidator{base: newBase(s, t)}
}

// ParseAddr validates the textual form of an address. A string that does not
// parse is reported as a violation and leaves the address undefined.
func ParseAddr(s Subject, value string) *AddrValidator {
	v := &AddrValidator{base: newBase(s, target.Undefined[netip.Addr]())}
	addr, err := netip.ParseAddr(value)
	if err == nil {
		v.value = target.Valid(addr)
		return v
	}
	if !v.ch.disabled {
		v.fail(KindViolation, v.sentence("must be a valid IP address").With(v.name, v.ch.render(value)))
	}
	return v
}

func equalAddrs(a, b netip.Addr) bool { return a == b }

func (v *AddrValidator) WithContext(value any, name string) *AddrValidator {
	v.withContext(value, name)
	return v
}

func (v *AddrValidator) IsEqualTo(expected netip.Addr) *AddrValidator {
	v.isEqualTo(expected, v.literal(expected), equalAddrs, mustBeEqualTo)
	return v
}

func (v *AddrValidator) IsEqualToNamed(expected netip.Addr, name string) *AddrValidator {
	v.isEqualTo(expected, v.named(expected, name), equalAddrs, mustBeEqualTo)
	return v
}

func (v *AddrValidator) IsNotEqualTo(unwanted netip.Addr) *AddrValidator {
	v.isNotEqualTo(unwanted, v.literal(unwanted), equalAddrs, mayNotBeEqualTo)
	return v
}

func (v *AddrValidator) IsNotEqualToNamed(unwanted netip.Addr, name string) *AddrValidator {
	v.isNotEqualTo(unwanted, v.named(unwanted, name), equalAddrs, mayNotBeEqualTo)
	return v
}

// IsIPv4 accepts IPv4 addresses only, not IPv4-mapped IPv6 ones.
func (v *AddrValidator) IsIPv4() *AddrValidator {
	v.check(netip.Addr.Is4, v.describe("must be an IP v4 address"))
	return v
}

func (v *AddrValidator) IsIPv6() *AddrValidator {
	v.check(netip.Addr.Is6, v.describe("must be an IP v6 address"))
	return v
}

func (v *AddrValidator) IsLoopback() *AddrValidator {
	v.check(netip.Addr.IsLoopback, v.describe("must be a loopback address"))
	return v
}

package domain

import (
	"errors"
	"fmt"
	"net/netip"
)

// ErrInvalidAddress is returned when a candidate string is not a valid
// host:port socket address.
var ErrInvalidAddress = errors.New("invalid socket address")

// DefaultAddress is the bind address used when no candidate source yields a
// usable value.
var DefaultAddress = Address{ap: netip.AddrPortFrom(netip.AddrFrom4([4]byte{127, 0, 0, 1}), 8080)}

// Address is a validated IP and port pair suitable for binding a listening
// socket. The zero value is not valid; construct it with ParseAddress or use
// DefaultAddress.
type Address struct {
	ap netip.AddrPort
}

// ParseAddress parses s as an IP:port socket address. IPv6 hosts must be
// bracketed ("[::1]:8080"). Host names are not resolved and are rejected.
func ParseAddress(s string) (Address, error) {
	ap, err := netip.ParseAddrPort(s)
	if err != nil {
		return Address{}, fmt.Errorf("%w %q: %v", ErrInvalidAddress, s, err)
	}
	return Address{ap: ap}, nil
}

// IsValid reports whether a holds a parsed address.
func (a Address) IsValid() bool {
	return a.ap.IsValid()
}

// AddrPort returns the underlying netip.AddrPort.
func (a Address) AddrPort() netip.AddrPort {
	return a.ap
}

// String returns the address in host:port form.
func (a Address) String() string {
	return a.ap.String()
}

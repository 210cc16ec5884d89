package network

import (
	"net"
)

// NormalizeAddress returns addr with the passed default port appended if
// there is not already a port specified.
func NormalizeAddress(addr, defaultPort string) (string, error) {
	_, _, err := net.SplitHostPort(addr)
	// net.SplitHostPort returns an error if the given host is missing a
	// port, but theoretically it can return an error for other reasons,
	// and this is why we check addrWithPort for validity.
	if err != nil {
		addrWithPort := net.JoinHostPort(addr, defaultPort)
		_, _, err := net.SplitHostPort(addrWithPort)
		if err != nil {
			return "", err
		}

		return addrWithPort, nil
	}
	return addr, nil
}

package keagenutil

import (
	"net"

	cidr "github.com/apparentlymart/go-cidr/cidr"
	"github.com/pkg/errors"
)

// Parses an IPv4 prefix and returns the network it designates. Kea
// DHCPv4 subnets and pools only take IPv4 prefixes so the IPv6 ones
// are rejected.
func parseIPv4Prefix(prefix string) (*net.IPNet, error) {
	_, network, err := net.ParseCIDR(prefix)
	if err != nil {
		return nil, errors.Errorf("unable to parse the prefix %s", prefix)
	}
	if network.IP.To4() == nil {
		return nil, errors.Errorf("prefix %s is not an IPv4 prefix", prefix)
	}
	return network, nil
}

// Returns the lower and upper bound addresses of a pool specified as
// a prefix, e.g. 192.0.2.0/28 yields 192.0.2.0 and 192.0.2.15.
func ParsePoolPrefix(prefix string) (string, string, error) {
	network, err := parseIPv4Prefix(prefix)
	if err != nil {
		return "", "", err
	}
	lb, ub := cidr.AddressRange(network)
	return lb.String(), ub.String(), nil
}

// Returns the address of the host with the given number within the
// prefix. Negative numbers count back from the end of the prefix.
func HostAddress(prefix string, hostNum int) (string, error) {
	network, err := parseIPv4Prefix(prefix)
	if err != nil {
		return "", err
	}
	ip, err := cidr.Host(network, hostNum)
	if err != nil {
		return "", errors.Wrapf(err, "unable to compute host %d in prefix %s", hostNum, prefix)
	}
	return ip.String(), nil
}

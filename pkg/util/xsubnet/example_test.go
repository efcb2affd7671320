package xsubnet_test

import (
	"fmt"
	"net/netip"

	"github.com/emmamm05/bridge-configurator/pkg/util/xsubnet"
)

func ExampleValidIP() {
	fmt.Println(xsubnet.ValidIP("192.168.1.1"))
	fmt.Println(xsubnet.ValidIP("192.168.1"))
	fmt.Println(xsubnet.ValidIP("2001:db8::1"))
	// Output:
	// true
	// false
	// true
}

func ExampleVersionOf() {
	fmt.Println(xsubnet.VersionOf("192.168.1.1"))
	fmt.Println(xsubnet.VersionOf("192.168.1"))
	fmt.Println(xsubnet.VersionOf("2001:db8::1"))
	fmt.Println(xsubnet.VersionOf("not an ip"))
	// Output:
	// IPv4
	// IPv4
	// IPv6
	// unknown
}

func ExampleNormalizePrefix() {
	n, _ := xsubnet.NormalizePrefix("255.255.255.0", "192.168.1.1")
	fmt.Println(n)

	n, _ = xsubnet.NormalizePrefix("64", "2001:db8::1")
	fmt.Println(n)

	_, err := xsubnet.NormalizePrefix("255.0.255.0", "192.168.1.1")
	fmt.Println(err != nil)
	// Output:
	// 24
	// 64
	// true
}

func ExampleSameSubnet() {
	fmt.Println(xsubnet.SameSubnet("192.168.1.1", "192.168.1.100", "24"))
	fmt.Println(xsubnet.SameSubnet("192.168.1.1", "192.168.2.1", "24"))
	fmt.Println(xsubnet.SameSubnet("192.168.1.1", "::1", "24"))
	// Output:
	// true
	// false
	// false
}

func ExampleCheckHost() {
	fmt.Println(xsubnet.CheckHost("192.168.1.0", "24"))
	fmt.Println(xsubnet.CheckHost("192.168.1.255", "24"))
	fmt.Println(xsubnet.CheckHost("192.168.1.1", "24") == xsubnet.IssueNone)
	// Output:
	// IP address cannot be the network address.
	// IP address cannot be the broadcast address.
	// true
}

func ExampleIsPublic() {
	fmt.Println(xsubnet.IsPublic("8.8.8.8"))
	fmt.Println(xsubnet.IsPublic("192.168.1.1"))
	fmt.Println(xsubnet.IsPublic("not an ip"))
	// Output:
	// true
	// false
	// false
}

func ExampleClassify() {
	c := xsubnet.Classify(netip.MustParseAddr("192.168.1.1"))
	fmt.Println(c.IsPrivate)
	fmt.Println(c.IsPublic)
	fmt.Println(c)
	// Output:
	// true
	// false
	// private
}

package xsubnet

import "net/netip"

// SameSubnet 报告 ip1 与 ip2 在给定子网下是否属于同一网段。
//
// 前缀长度由 NormalizePrefix(subnet, ip1) 得出——地址族以 ip1 为准，
// 而非 ip2。以下情况一律返回 false，不报错：
//   - ip1 或 ip2 未通过严格校验（见 [ValidIP]）
//   - subnet 无法归一化
//   - 两地址地址族不同（IPv4 与 IPv6 混比恒为 false）
//
// 判定方式为网络前缀比对：两地址按前缀长度掩码后相等即同网段。
// IPv6 zone 标识在比对前被剥离。
func SameSubnet(ip1, ip2, subnet string) bool {
	prefixLen, err := NormalizePrefix(subnet, ip1)
	if err != nil {
		return false
	}

	a1, err1 := netip.ParseAddr(ip1)
	a2, err2 := netip.ParseAddr(ip2)
	if err1 != nil || err2 != nil {
		return false
	}
	if a1.Is4() != a2.Is4() {
		return false
	}
	if prefixLen > a1.BitLen() {
		return false
	}

	p1 := netip.PrefixFrom(a1, prefixLen).Masked()
	p2 := netip.PrefixFrom(a2, prefixLen).Masked()
	return p1.IsValid() && p1.Addr() == p2.Addr()
}

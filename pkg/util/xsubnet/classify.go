package xsubnet

import (
	"encoding/binary"
	"net/netip"
)

// IsPublic 报告 ip 是否为可全局路由的公网单播地址。
//
// 非严格合法的地址（见 [ValidIP]）直接返回 false。
// 在此之上，地址必须是普通全局单播，且不落入任何特殊范围：
// 私有、环回、链路本地、多播、未指定、广播、CGNAT 共享空间、
// 文档专用、基准测试、保留、IPv4-mapped 以及过渡机制前缀
// （NAT64/6to4/Teredo）。
//
//	xsubnet.IsPublic("8.8.8.8")      // true
//	xsubnet.IsPublic("192.168.1.1")  // false（私有）
//	xsubnet.IsPublic("not an ip")    // false
func IsPublic(ip string) bool {
	if !ValidIP(ip) {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	return IsPublicAddr(addr)
}

// IsPublicAddr 是 [IsPublic] 的 [netip.Addr] 版本。
// IPv4-mapped IPv6 地址（::ffff:0:0/96）按其书写形式视为特殊范围，
// 返回 false；如需按 IPv4 语义判定，请先调用 [netip.Addr.Unmap]。
func IsPublicAddr(addr netip.Addr) bool {
	if !addr.IsValid() || addr.Is4In6() {
		return false
	}
	return addr.IsGlobalUnicast() &&
		!addr.IsPrivate() &&
		!IsBroadcast(addr) &&
		!IsShared(addr) &&
		!IsDocumentation(addr) &&
		!IsBenchmark(addr) &&
		!IsReserved(addr) &&
		!IsTranslation(addr)
}

// Classify 返回地址的分类信息。
// 分类标志不互斥：例如 192.168.1.1 同时满足 IsPrivate 与
// netip 意义上的全局单播。[Classification.String] 按优先级返回
// 最特殊的分类标签。
func Classify(addr netip.Addr) Classification {
	if !addr.IsValid() {
		return Classification{}
	}
	return Classification{
		Version:         versionOfAddr(addr),
		IsValid:         true,
		IsPrivate:       addr.IsPrivate(),
		IsLoopback:      addr.IsLoopback(),
		IsLinkLocal:     addr.IsLinkLocalUnicast() || addr.IsLinkLocalMulticast(),
		IsMulticast:     addr.IsMulticast(),
		IsUnspecified:   addr.IsUnspecified(),
		IsBroadcast:     IsBroadcast(addr),
		IsShared:        IsShared(addr),
		IsDocumentation: IsDocumentation(addr),
		IsBenchmark:     IsBenchmark(addr),
		IsReserved:      IsReserved(addr),
		IsMapped:        addr.Is4In6(),
		IsTranslation:   IsTranslation(addr),
		IsPublic:        IsPublicAddr(addr),
	}
}

// Classification 包含地址的各项分类标志。
// 使用扁平导出字段：调用方直接访问 c.IsPrivate，新增字段向后兼容。
type Classification struct {
	// Version 是 IP 版本（V4 或 V6）。
	Version Version

	// IsValid 表示地址是否有效。
	IsValid bool

	// IsPrivate 表示是否为私有地址（RFC 1918 / fc00::/7）。
	IsPrivate bool

	// IsLoopback 表示是否为环回地址。
	IsLoopback bool

	// IsLinkLocal 表示是否为链路本地地址（单播或多播）。
	IsLinkLocal bool

	// IsMulticast 表示是否为多播地址。
	IsMulticast bool

	// IsUnspecified 表示是否为未指定地址（0.0.0.0 / ::）。
	IsUnspecified bool

	// IsBroadcast 表示是否为有限广播地址（255.255.255.255，仅 IPv4）。
	IsBroadcast bool

	// IsShared 表示是否为共享地址空间（100.64.0.0/10, CGNAT）。
	IsShared bool

	// IsDocumentation 表示是否为文档专用地址（TEST-NET / 2001:db8::/32）。
	IsDocumentation bool

	// IsBenchmark 表示是否为基准测试地址（198.18.0.0/15 / 2001:2::/48）。
	IsBenchmark bool

	// IsReserved 表示是否为保留地址（240.0.0.0/4、192.0.0.0/24 等）。
	IsReserved bool

	// IsMapped 表示是否为 IPv4-mapped IPv6 地址（::ffff:0:0/96）。
	IsMapped bool

	// IsTranslation 表示是否为过渡机制前缀（NAT64/6to4/Teredo）。
	IsTranslation bool

	// IsPublic 表示是否为可全局路由的公网单播地址。
	IsPublic bool
}

// String 返回分类的字符串表示。
// 优先级：越特殊的分类越靠前，公网单播兜底为 "unicast"。
func (c Classification) String() string {
	if !c.IsValid {
		return "invalid"
	}

	labels := [...]struct {
		flag  bool
		label string
	}{
		{c.IsLoopback, "loopback"},
		{c.IsUnspecified, "unspecified"},
		{c.IsBroadcast, "broadcast"},
		{c.IsPrivate, "private"},
		{c.IsLinkLocal, "link-local"},
		{c.IsShared, "shared"},
		{c.IsDocumentation, "documentation"},
		{c.IsBenchmark, "benchmark"},
		{c.IsReserved, "reserved"},
		{c.IsMapped, "ipv4-mapped"},
		{c.IsTranslation, "translation"},
		{c.IsMulticast, "multicast"},
		{c.IsPublic, "unicast"},
	}

	for _, e := range labels {
		if e.flag {
			return e.label
		}
	}
	return "unknown"
}

// versionOfAddr 返回已解析地址的版本。
// 与 [VersionOf] 不同，IPv4-mapped 地址按字节宽度判定为 V6，
// 与其文本形式一致。
func versionOfAddr(addr netip.Addr) Version {
	switch {
	case addr.Is4():
		return V4
	case addr.IsValid():
		return V6
	default:
		return V0
	}
}

// IsBroadcast 报告 addr 是否为 IPv4 有限广播地址 255.255.255.255。
// 仅适用于 IPv4，IPv6 无广播概念。
func IsBroadcast(addr netip.Addr) bool {
	if !addr.Is4() && !addr.Is4In6() {
		return false
	}
	return ipv4ToUint32(addr) == 0xFFFFFFFF
}

// IsShared 报告 addr 是否为共享地址空间（100.64.0.0/10）。
// 用于运营商级 NAT（CGNAT），RFC 6598 定义。仅适用于 IPv4。
func IsShared(addr netip.Addr) bool {
	if !addr.Is4() && !addr.Is4In6() {
		return false
	}
	v := ipv4ToUint32(addr)
	// 100.64.0.0/10 = 0x64400000 - 0x647FFFFF
	return inRange(v, 0x64400000, 0x647FFFFF)
}

// IsDocumentation 报告 addr 是否为文档专用地址。
//   - IPv4: 192.0.2.0/24, 198.51.100.0/24, 203.0.113.0/24 (TEST-NET-1/2/3)
//   - IPv6: 2001:db8::/32
func IsDocumentation(addr netip.Addr) bool {
	if !addr.IsValid() {
		return false
	}
	if addr.Is4() || addr.Is4In6() {
		v := ipv4ToUint32(addr)
		return inRange(v, 0xC0000200, 0xC00002FF) ||
			inRange(v, 0xC6336400, 0xC63364FF) ||
			inRange(v, 0xCB007100, 0xCB0071FF)
	}
	b := addr.As16()
	return [4]byte{b[0], b[1], b[2], b[3]} == [4]byte{0x20, 0x01, 0x0d, 0xb8}
}

// IsBenchmark 报告 addr 是否为基准测试地址。
//   - IPv4: 198.18.0.0/15 (RFC 2544)
//   - IPv6: 2001:2::/48 (RFC 5180)
func IsBenchmark(addr netip.Addr) bool {
	if !addr.IsValid() {
		return false
	}
	if addr.Is4() || addr.Is4In6() {
		return inRange(ipv4ToUint32(addr), 0xC6120000, 0xC613FFFF)
	}
	b := addr.As16()
	return [6]byte{b[0], b[1], b[2], b[3], b[4], b[5]} == [6]byte{0x20, 0x01, 0x00, 0x02, 0x00, 0x00}
}

// IsReserved 报告 addr 是否为保留地址。
//   - 240.0.0.0/4 (Class E, RFC 1112)，不含有限广播 255.255.255.255
//     （广播使用 [IsBroadcast] 判断）
//   - 192.0.0.0/24 (IETF 协议分配, RFC 6890)
//   - 192.88.99.0/24 (6to4 中继任播，已废弃, RFC 7526)
//
// 仅适用于 IPv4。
func IsReserved(addr netip.Addr) bool {
	if !addr.Is4() && !addr.Is4In6() {
		return false
	}
	v := ipv4ToUint32(addr)
	if v >= 0xF0000000 && v != 0xFFFFFFFF {
		return true
	}
	return inRange(v, 0xC0000000, 0xC00000FF) ||
		inRange(v, 0xC0586300, 0xC05863FF)
}

// IsTranslation 报告 addr 是否为 IPv4/IPv6 过渡机制前缀。
//   - NAT64: 64:ff9b::/96 (RFC 6052)
//   - 6to4: 2002::/16 (RFC 3056)
//   - Teredo: 2001::/32 (RFC 4380)
//
// 仅适用于 IPv6。
func IsTranslation(addr netip.Addr) bool {
	if !addr.IsValid() || addr.Is4() || addr.Is4In6() {
		return false
	}
	b := addr.As16()
	// 6to4: 2002::/16
	if b[0] == 0x20 && b[1] == 0x02 {
		return true
	}
	// Teredo: 2001::/32
	if [4]byte{b[0], b[1], b[2], b[3]} == [4]byte{0x20, 0x01, 0x00, 0x00} {
		return true
	}
	// NAT64: 64:ff9b::/96
	nat64 := [12]byte{0x00, 0x64, 0xff, 0x9b}
	return [12]byte{b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7], b[8], b[9], b[10], b[11]} == nat64
}

// inRange 检查 v 是否在 [lo, hi] 范围内。
func inRange(v, lo, hi uint32) bool {
	return v >= lo && v <= hi
}

// ipv4ToUint32 将 IPv4 地址转换为 uint32（网络字节序）。
// 调用前必须确保 addr.Is4() || addr.Is4In6() 为 true。
func ipv4ToUint32(addr netip.Addr) uint32 {
	b := addr.Unmap().As4()
	return binary.BigEndian.Uint32(b[:])
}

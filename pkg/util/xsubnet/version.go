package xsubnet

import (
	"net/netip"
	"strconv"
	"strings"
)

// Version 表示 IP 协议版本。
type Version uint8

const (
	// V0 表示无效或未知的 IP 版本。
	V0 Version = 0
	// V4 表示 IPv4。
	V4 Version = 4
	// V6 表示 IPv6。
	V6 Version = 6
)

// String 返回版本的字符串表示。
func (v Version) String() string {
	switch v {
	case V4:
		return "IPv4"
	case V6:
		return "IPv6"
	default:
		return "unknown"
	}
}

// VersionOf 返回地址字符串的 IP 版本（宽松判定）。
//
// 除标准格式外还接受传统 IPv4 缩写（inet_aton 记法）：
// "192.168.1"、"192.1"、"0x7f.1" 等均判定为 V4。
// IPv4-mapped IPv6 文本形式（"::ffff:192.168.1.1"）按其书写形式判定为 V6。
// 无法识别的输入返回 V0。
//
// 注意与 [ValidIP] 的差异：严格校验拒绝缩写形式，宽松判定接受。
// 两者是有意保留的两个独立操作。
func VersionOf(s string) Version {
	if addr, err := netip.ParseAddr(s); err == nil {
		if addr.Is4() {
			return V4
		}
		return V6
	}
	if _, ok := parseLegacyIPv4(s); ok {
		return V4
	}
	return V0
}

// parseLegacyIPv4 按 inet_aton 记法解析传统 IPv4 缩写。
//
// 支持 1~4 段点分形式，各段可为十进制、八进制（前导 0）或十六进制（0x）；
// 末段覆盖剩余全部字节（"192.168.1" 中 1 为 16 位值，"192.1" 中 1 为 24 位值）。
// 标准四段十进制同样能被接受，但调用方（[VersionOf]）仅在
// [netip.ParseAddr] 失败后才走到这里。
func parseLegacyIPv4(s string) (netip.Addr, bool) {
	parts := strings.Split(s, ".")
	if len(parts) == 0 || len(parts) > 4 {
		return netip.Addr{}, false
	}

	vals := make([]uint64, len(parts))
	for i, p := range parts {
		v, ok := parseLegacyOctet(p)
		if !ok {
			return netip.Addr{}, false
		}
		vals[i] = v
	}

	// 前 n-1 段各占一个字节，末段覆盖剩余 4-(n-1) 个字节。
	last := len(vals) - 1
	var n uint64
	for i := 0; i < last; i++ {
		if vals[i] > 0xFF {
			return netip.Addr{}, false
		}
		n = n<<8 | vals[i]
	}
	restBytes := 4 - last
	if vals[last] >= 1<<(8*uint(restBytes)) {
		return netip.Addr{}, false
	}
	n = n<<(8*uint(restBytes)) | vals[last]

	var b [4]byte
	b[0] = byte(n >> 24)
	b[1] = byte(n >> 16)
	b[2] = byte(n >> 8)
	b[3] = byte(n)
	return netip.AddrFrom4(b), true
}

// parseLegacyOctet 解析 inet_aton 的单段数值。
// 不接受正负号、空白与下划线分隔（strconv 在显式进制下均拒绝）。
func parseLegacyOctet(p string) (uint64, bool) {
	base := 10
	switch {
	case len(p) > 2 && (strings.HasPrefix(p, "0x") || strings.HasPrefix(p, "0X")):
		p, base = p[2:], 16
	case len(p) > 1 && p[0] == '0':
		p, base = p[1:], 8
	}
	v, err := strconv.ParseUint(p, base, 32)
	if err != nil {
		return 0, false
	}
	return v, true
}

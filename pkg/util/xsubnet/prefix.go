package xsubnet

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"net/netip"
	"strconv"
)

// NormalizePrefix 将子网描述归一化为前缀长度。
//
// subnet 可以是数字字符串（CIDR 前缀长度）或 IPv4 点分十进制掩码
// （如 "255.255.255.0"）。referenceIP 仅用于选择地址族规则：
// IPv6 参考地址允许 [0,128]，其余情况（含参考地址非法）按 IPv4
// 处理，允许 [0,32]，且仅 IPv4 规则下才接受点分掩码形式。
//
// 失败返回 [ErrInvalidSubnet]（可用 errors.Is 判断）：
// 空字符串、越界前缀、非连续掩码（如 "255.0.255.0"）、
// IPv6 规则下的非数字子网均视为非法。
func NormalizePrefix(subnet, referenceIP string) (int, error) {
	if subnet == "" {
		return 0, fmt.Errorf("%w: empty subnet", ErrInvalidSubnet)
	}

	maxBits := 32
	if VersionOf(referenceIP) == V6 {
		maxBits = 128
	}

	if n, err := strconv.Atoi(subnet); err == nil {
		if n < 0 || n > maxBits {
			return 0, fmt.Errorf("%w: prefix length %d out of range [0,%d]", ErrInvalidSubnet, n, maxBits)
		}
		return n, nil
	}

	// 点分掩码仅在 IPv4 规则下有意义。
	if maxBits != 32 {
		return 0, fmt.Errorf("%w: %q is not a prefix length", ErrInvalidSubnet, subnet)
	}
	return maskToPrefix(subnet)
}

// maskToPrefix 将点分十进制掩码转换为前缀长度。
// 合法掩码为前缀全 1 后缀全 0，非连续位模式被拒绝。
func maskToPrefix(mask string) (int, error) {
	addr, err := netip.ParseAddr(mask)
	if err != nil || !addr.Is4() {
		return 0, fmt.Errorf("%w: %q is not an IPv4 mask", ErrInvalidSubnet, mask)
	}

	b := addr.As4()
	m := binary.BigEndian.Uint32(b[:])
	inverted := ^m
	if inverted&(inverted+1) != 0 {
		return 0, fmt.Errorf("%w: non-contiguous mask %q", ErrInvalidSubnet, mask)
	}
	return bits.OnesCount32(m), nil
}

// ValidSubnet 报告 subnet 在以 ip 为参考地址时是否为合法子网描述。
// 纯谓词，等价于 [NormalizePrefix] 是否成功。
func ValidSubnet(subnet, ip string) bool {
	_, err := NormalizePrefix(subnet, ip)
	return err == nil
}

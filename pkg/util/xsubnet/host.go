package xsubnet

import (
	"net/netip"

	"go4.org/netipx"
)

// HostIssue 表示主机地址检查的结果类别。
// 零值 [IssueNone] 表示地址可用作主机地址。
type HostIssue uint8

const (
	// IssueNone 表示没有问题，地址可用作主机地址。
	IssueNone HostIssue = iota

	// IssueInvalidFormat 表示 IP 或子网格式非法。
	IssueInvalidFormat

	// IssueNetworkAddress 表示地址是网段的网络地址（主机位全 0）。
	IssueNetworkAddress

	// IssueBroadcastAddress 表示地址是网段的广播地址（主机位全 1，仅 IPv4）。
	IssueBroadcastAddress

	// IssueInvalidMask 表示掩码推导失败。正常输入不会触达此类别，
	// 它兜底前缀构造失败的防御路径。
	IssueInvalidMask
)

// String 返回问题的人类可读描述，[IssueNone] 返回空字符串。
// 调用方做类别分流时应比较 [HostIssue] 常量，而非匹配描述文本。
func (i HostIssue) String() string {
	switch i {
	case IssueInvalidFormat:
		return "Invalid IP or Subnet format."
	case IssueNetworkAddress:
		return "IP address cannot be the network address."
	case IssueBroadcastAddress:
		return "IP address cannot be the broadcast address."
	case IssueInvalidMask:
		return "Invalid subnet mask."
	default:
		return ""
	}
}

// Message 返回问题描述及是否存在问题。
// 对应"无问题返回空、有问题返回描述"的可选结果形式。
func (i HostIssue) Message() (string, bool) {
	if i == IssueNone {
		return "", false
	}
	return i.String(), true
}

// CheckHost 校验 ip 是否可用作 ip/subnet 网段内的主机地址。
//
// 规则：
//   - ip 未通过严格校验或 subnet 无法归一化 → [IssueInvalidFormat]
//   - IPv4 且前缀长度 < 31：网络地址与广播地址被排除；
//     /31（点对点，RFC 3021）与 /32（主机路由）不做排除
//   - IPv6 且前缀长度 < 127：仅排除网络地址（IPv6 无广播）；
//     /127 与 /128 不做排除
//   - 前缀构造失败（防御路径）→ [IssueInvalidMask]
//   - 其余情况 → [IssueNone]
func CheckHost(ip, subnet string) HostIssue {
	prefixLen, err := NormalizePrefix(subnet, ip)
	if err != nil || !ValidIP(ip) {
		return IssueInvalidFormat
	}

	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return IssueInvalidFormat
	}
	// zone 标识不参与网段运算。
	addr = addr.WithZone("")

	if prefixLen > addr.BitLen() {
		return IssueInvalidMask
	}
	prefix := netip.PrefixFrom(addr, prefixLen).Masked()
	if !prefix.IsValid() {
		return IssueInvalidMask
	}
	network := prefix.Addr()

	if addr.Is4() {
		if prefixLen < 31 {
			if addr == network {
				return IssueNetworkAddress
			}
			if addr == netipx.PrefixLastIP(prefix) {
				return IssueBroadcastAddress
			}
		}
		return IssueNone
	}

	if prefixLen < 127 && addr == network {
		return IssueNetworkAddress
	}
	return IssueNone
}

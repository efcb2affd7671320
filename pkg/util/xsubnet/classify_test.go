package xsubnet

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPublic(t *testing.T) {
	tests := []struct {
		ip   string
		want bool
	}{
		// 公网单播
		{"8.8.8.8", true},
		{"1.1.1.1", true},
		{"93.184.216.34", true},
		{"2001:4860:4860::8888", true},
		{"2606:4700:4700::1111", true},

		// 私有
		{"192.168.1.1", false},
		{"10.0.0.1", false},
		{"172.16.0.1", false},
		{"172.31.255.255", false},
		{"fc00::1", false},
		{"fd12:3456::1", false},

		// 私有边界外（公网）
		{"172.15.255.255", true},
		{"172.32.0.0", true},
		{"11.0.0.1", true},

		// 环回 / 链路本地 / 未指定 / 多播 / 广播
		{"127.0.0.1", false},
		{"::1", false},
		{"169.254.1.1", false},
		{"fe80::1", false},
		{"0.0.0.0", false},
		{"::", false},
		{"224.0.0.1", false},
		{"ff02::1", false},
		{"255.255.255.255", false},

		// CGNAT / 文档 / 基准测试 / 保留
		{"100.64.0.1", false},
		{"100.127.255.255", false},
		{"100.128.0.0", true}, // CGNAT 边界外
		{"192.0.2.1", false},
		{"198.51.100.7", false},
		{"203.0.113.200", false},
		{"2001:db8::1", false},
		{"198.18.0.1", false},
		{"198.19.255.255", false},
		{"2001:2::1", false},
		{"240.0.0.1", false},
		{"192.0.0.1", false},
		{"192.88.99.1", false},

		// 过渡机制前缀
		{"2002::1", false},
		{"2001::1", false},
		{"64:ff9b::192.0.2.1", false},

		// IPv4-mapped 形式
		{"::ffff:8.8.8.8", false},

		// 非法输入
		{"not an ip", false},
		{"", false},
		{"192.168.1", false}, // 缩写未通过严格校验
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPublic(tt.ip))
		})
	}
}

func TestIsPublicAddrInvalid(t *testing.T) {
	assert.False(t, IsPublicAddr(netip.Addr{}))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		ip        string
		wantLabel string
	}{
		{"127.0.0.1", "loopback"},
		{"::1", "loopback"},
		{"0.0.0.0", "unspecified"},
		{"255.255.255.255", "broadcast"},
		{"192.168.1.1", "private"},
		{"fd00::1", "private"},
		{"169.254.0.1", "link-local"},
		{"fe80::1", "link-local"},
		{"100.64.0.1", "shared"},
		{"192.0.2.1", "documentation"},
		{"2001:db8::1", "documentation"},
		{"198.18.0.1", "benchmark"},
		{"2001:2::1", "benchmark"},
		{"240.0.0.1", "reserved"},
		{"192.0.0.1", "reserved"},
		{"::ffff:8.8.8.8", "ipv4-mapped"},
		{"2002::1", "translation"},
		{"2001::1", "translation"},
		{"64:ff9b::1.2.3.4", "translation"},
		{"239.1.2.3", "multicast"},
		{"ff05::2", "multicast"},
		{"8.8.8.8", "unicast"},
		{"2001:4860:4860::8888", "unicast"},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			c := Classify(netip.MustParseAddr(tt.ip))
			assert.True(t, c.IsValid)
			assert.Equal(t, tt.wantLabel, c.String())
		})
	}
}

func TestClassifyInvalid(t *testing.T) {
	c := Classify(netip.Addr{})
	assert.False(t, c.IsValid)
	assert.Equal(t, "invalid", c.String())
	assert.Equal(t, V0, c.Version)
}

func TestClassifyVersion(t *testing.T) {
	assert.Equal(t, V4, Classify(netip.MustParseAddr("8.8.8.8")).Version)
	assert.Equal(t, V6, Classify(netip.MustParseAddr("2001:db8::1")).Version)
	// IPv4-mapped 按字节宽度归为 V6，与文本形式一致
	assert.Equal(t, V6, Classify(netip.MustParseAddr("::ffff:1.2.3.4")).Version)
}

func TestIsBroadcast(t *testing.T) {
	assert.True(t, IsBroadcast(netip.MustParseAddr("255.255.255.255")))
	assert.False(t, IsBroadcast(netip.MustParseAddr("255.255.255.254")))
	assert.False(t, IsBroadcast(netip.MustParseAddr("ff02::1")))
	assert.False(t, IsBroadcast(netip.Addr{}))
}

func TestIsReservedExcludesBroadcast(t *testing.T) {
	// 240.0.0.0/4 属保留，但有限广播单独归类
	assert.True(t, IsReserved(netip.MustParseAddr("240.0.0.0")))
	assert.True(t, IsReserved(netip.MustParseAddr("250.1.2.3")))
	assert.False(t, IsReserved(netip.MustParseAddr("255.255.255.255")))
	assert.False(t, IsReserved(netip.MustParseAddr("239.255.255.255")))
}

func TestIsTranslationBoundaries(t *testing.T) {
	// Teredo 2001::/32 与文档 2001:db8::/32、基准 2001:2::/48 相邻但不重叠
	assert.True(t, IsTranslation(netip.MustParseAddr("2001::ffff")))
	assert.True(t, IsTranslation(netip.MustParseAddr("2001:0:ffff::1")))
	assert.False(t, IsTranslation(netip.MustParseAddr("2001:db8::1")))
	assert.False(t, IsTranslation(netip.MustParseAddr("2001:2::1")))
	assert.False(t, IsTranslation(netip.MustParseAddr("2001:1::1")))

	// NAT64 /96 边界
	assert.True(t, IsTranslation(netip.MustParseAddr("64:ff9b::")))
	assert.True(t, IsTranslation(netip.MustParseAddr("64:ff9b::ffff:ffff")))
	assert.False(t, IsTranslation(netip.MustParseAddr("64:ff9b:1::")))

	// 仅适用于 IPv6
	assert.False(t, IsTranslation(netip.MustParseAddr("192.88.99.1")))
}

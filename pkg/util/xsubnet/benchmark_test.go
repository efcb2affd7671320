package xsubnet

import (
	"net/netip"
	"testing"
)

func BenchmarkValidIP(b *testing.B) {
	b.Run("v4", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ValidIP("192.168.1.1")
		}
	})
	b.Run("v6", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ValidIP("2001:db8::1")
		}
	})
	b.Run("invalid", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ValidIP("not an ip")
		}
	})
}

func BenchmarkVersionOf(b *testing.B) {
	b.Run("standard", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			VersionOf("192.168.1.1")
		}
	})
	b.Run("legacy", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			VersionOf("192.168.1")
		}
	})
}

func BenchmarkNormalizePrefix(b *testing.B) {
	b.Run("numeric", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = NormalizePrefix("24", "192.168.1.1")
		}
	})
	b.Run("mask", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = NormalizePrefix("255.255.255.0", "192.168.1.1")
		}
	})
}

func BenchmarkSameSubnet(b *testing.B) {
	for i := 0; i < b.N; i++ {
		SameSubnet("192.168.1.1", "192.168.1.100", "24")
	}
}

func BenchmarkCheckHost(b *testing.B) {
	for i := 0; i < b.N; i++ {
		CheckHost("192.168.1.1", "24")
	}
}

func BenchmarkIsPublicAddr(b *testing.B) {
	addr := netip.MustParseAddr("8.8.8.8")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		IsPublicAddr(addr)
	}
}

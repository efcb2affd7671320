package xsubnet

import "net/netip"

// ValidIP 报告 s 是否为严格合法的 IP 地址文本。
//
// IPv4 仅接受完整四段点分十进制（不含前导零），
// "192.168.1" 之类的传统缩写一律拒绝；
// IPv6 接受任意合法文本形式，包括 "::" 压缩与 IPv4-mapped 形式。
//
// 该谓词永不失败：非法输入返回 false。
// 宽松的版本判定见 [VersionOf]，不要用本函数替代。
func ValidIP(s string) bool {
	_, err := netip.ParseAddr(s)
	return err == nil
}

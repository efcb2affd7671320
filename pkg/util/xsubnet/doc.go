// Package xsubnet 提供 IP 地址与子网校验工具库。
//
// xsubnet 基于 Go 标准库 [net/netip] 和社区库 [go4.org/netipx] 构建，
// 提供地址语法校验、版本判定、子网掩码归一化、公网地址分类、
// 同网段判定与主机地址合法性检查等纯函数。
// 所有函数无状态、无副作用，可安全并发调用。
//
// # 核心功能
//
//   - version.go: IP 版本类型 [Version]、宽松版本判定 [VersionOf]
//   - validate.go: 严格地址校验 [ValidIP]
//   - prefix.go: 子网归一化 [NormalizePrefix]、子网校验 [ValidSubnet]
//   - classify.go: 地址分类 [Classify] 及公网判定 [IsPublic]
//   - subnet.go: 同网段判定 [SameSubnet]
//   - host.go: 主机地址检查 [CheckHost] 及结果类型 [HostIssue]
//
// # 严格校验与宽松判定
//
// [ValidIP] 与 [VersionOf] 的"合法"含义刻意不同：
//
//   - [ValidIP] 仅接受完整四段点分十进制 IPv4（如 "192.168.1.1"）
//     或任意合法文本形式的 IPv6（含 "::" 压缩）。
//   - [VersionOf] 额外接受传统 IPv4 缩写（inet_aton 记法，
//     如 "192.168.1"、"0x7f.1"），用于从参考地址推断地址族。
//
// 因此 ValidIP(s) == true 蕴含 VersionOf(s) != V0，反之不成立。
// 两者是两个独立的命名操作，不要合并。
//
// # 快速示例
//
// 校验与版本判定：
//
//	fmt.Println(xsubnet.ValidIP("192.168.1.1"))   // true
//	fmt.Println(xsubnet.ValidIP("192.168.1"))     // false（缩写被拒绝）
//	fmt.Println(xsubnet.VersionOf("192.168.1"))   // IPv4（宽松判定接受缩写）
//
// 子网归一化（CIDR 数字或点分掩码均可）：
//
//	n, _ := xsubnet.NormalizePrefix("255.255.255.0", "192.168.1.1")  // 24
//	n, _ = xsubnet.NormalizePrefix("64", "2001:db8::1")              // 64
//
// 同网段与主机地址检查：
//
//	xsubnet.SameSubnet("192.168.1.1", "192.168.1.100", "24")  // true
//	xsubnet.CheckHost("192.168.1.0", "24")                    // IssueNetworkAddress
//	xsubnet.CheckHost("192.168.1.1", "24")                    // IssueNone
//
// # 设计决策
//
//   - 直接使用 [netip.Addr] 值类型，零分配比较；广播地址派生使用
//     [netipx.PrefixLastIP]，无需自研字节运算
//   - 掩码归一化包含连续性校验，拒绝非法掩码如 "255.0.255.0"
//   - 布尔谓词（[ValidIP]、[ValidSubnet]、[IsPublic]、[SameSubnet]）
//     将所有失败场景折叠为 false，不向调用方抛出错误
//   - [NormalizePrefix] 返回 error（预定义 [ErrInvalidSubnet]，
//     支持 errors.Is），对应"非法输入"与"合法零值"的区分
//   - [CheckHost] 返回 [HostIssue] 枚举而非裸字符串，
//     调用方按类别分流；[HostIssue.String] 提供人类可读描述
//
// # 参考地址的地址族回退
//
// [NormalizePrefix] 的参考地址仅用于选择规则集（IPv4 上限 32、
// IPv6 上限 128）。参考地址本身非法时按 IPv4 规则处理，
// 归一化不会因此失败。该回退为既有观察行为，刻意保留。
//
// # /31、/32 与 IPv6 /127、/128
//
// [CheckHost] 对 IPv4 /31（点对点链路，RFC 3021）与 /32（主机路由）
// 不做网络地址/广播地址排除；IPv6 对应 /127、/128。
// IPv6 无广播概念，仅做网络地址排除。
package xsubnet

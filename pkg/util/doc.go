// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xsubnet: IP 地址与子网工具库，基于 net/netip + go4.org/netipx 的校验、分类与网段运算
//
// 设计原则：
//   - 纯函数优先，无内部状态
//   - 错误语义明确，非法输入返回可判定的结果而非 panic
//   - 跨平台兼容
package util

package xsubnet

import "errors"

var (
	// ErrInvalidSubnet 表示无法归一化的子网描述。
	ErrInvalidSubnet = errors.New("xsubnet: invalid subnet")
)

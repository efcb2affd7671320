package checkfile

import "errors"

var (
	// ErrEmptyPath 表示检查文件路径为空。
	ErrEmptyPath = errors.New("checkfile: empty path")

	// ErrUnsupportedFormat 表示不支持的文件格式。
	ErrUnsupportedFormat = errors.New("checkfile: unsupported format")

	// ErrLoadFailed 表示文件读取失败。
	ErrLoadFailed = errors.New("checkfile: load failed")

	// ErrParseFailed 表示文件解析或反序列化失败。
	ErrParseFailed = errors.New("checkfile: parse failed")

	// ErrInvalidCheck 表示检查条目字段不完整或操作未知。
	ErrInvalidCheck = errors.New("checkfile: invalid check")

	// ErrNotWatchable 表示从字节数据创建的检查文件不支持监视。
	ErrNotWatchable = errors.New("checkfile: not watchable")
)

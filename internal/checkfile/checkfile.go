// Package checkfile 提供声明式地址检查文件的加载与执行。
//
// 检查文件是一个 YAML 或 JSON 文档，列出若干地址/子网断言，
// 供 subnetctl batch 批量执行：
//
//	checks:
//	  - op: validate
//	    ip: 192.168.1.1
//	    want: "true"
//	  - op: host
//	    ip: 192.168.1.0
//	    subnet: "24"
//	    want: "IP address cannot be the network address."
//
// 基于 koanf 实现：按扩展名检测格式，rawbytes 提供器加载，
// Unmarshal 到类型化结构。want 为可选字段，缺省时检查仅记录结果，
// 不参与通过/失败判定。
package checkfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/emmamm05/bridge-configurator/pkg/util/xsubnet"
)

// Format 表示检查文件格式。
type Format string

const (
	// FormatYAML 表示 YAML 格式。
	FormatYAML Format = "yaml"
	// FormatJSON 表示 JSON 格式。
	FormatJSON Format = "json"
)

// Op 表示单条检查执行的操作。
type Op string

const (
	// OpValidate 严格校验 ip 字段。
	OpValidate Op = "validate"
	// OpVersion 宽松判定 ip 字段的版本。
	OpVersion Op = "version"
	// OpPublic 判定 ip 字段是否为公网单播地址。
	OpPublic Op = "public"
	// OpSubnet 以 ip 为参考地址归一化 subnet 字段。
	OpSubnet Op = "subnet"
	// OpSameSubnet 判定 ip 与 ip2 是否同网段。
	OpSameSubnet Op = "same-subnet"
	// OpHost 检查 ip 是否可作为 ip/subnet 网段的主机地址。
	OpHost Op = "host"
)

// Check 是检查文件中的一条断言。
type Check struct {
	Op     Op     `koanf:"op"`
	IP     string `koanf:"ip"`
	IP2    string `koanf:"ip2"`
	Subnet string `koanf:"subnet"`

	// Want 是期望结果的字符串形式（可选）。
	// 布尔操作为 "true"/"false"，version 为 "IPv4"/"IPv6"/"unknown"，
	// subnet 为前缀长度或 "invalid"，host 为 "ok" 或问题描述。
	Want string `koanf:"want"`
}

// Result 是一条检查的执行结果。
type Result struct {
	Check   Check
	Outcome string
	// Passed 表示结果与 Want 一致；Want 为空时恒为 true。
	Passed bool
}

// File 是一个已加载的检查文件。
type File struct {
	Checks []Check

	path   string
	format Format
}

// Load 从文件路径加载检查文件。
// 根据扩展名自动检测格式（.yaml/.yml 或 .json）。
func Load(path string) (*File, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	f, err := LoadBytes(data, format)
	if err != nil {
		return nil, err
	}
	f.path = path
	return f, nil
}

// LoadBytes 从字节数据加载检查文件，需显式指定格式。
func LoadBytes(data []byte, format Format) (*File, error) {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	var checks []Check
	if err := k.Unmarshal("checks", &checks); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	for i, c := range checks {
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("check [%d]: %w", i, err)
		}
	}

	return &File{Checks: checks, format: format}, nil
}

// Path 返回检查文件路径；从字节数据创建时为空。
func (f *File) Path() string {
	return f.path
}

// Format 返回检查文件格式。
func (f *File) Format() Format {
	return f.format
}

// Run 执行全部检查并返回逐条结果。
// 执行是纯计算，结果顺序与文件中的声明顺序一致。
func (f *File) Run() []Result {
	results := make([]Result, 0, len(f.Checks))
	for _, c := range f.Checks {
		outcome := c.evaluate()
		results = append(results, Result{
			Check:   c,
			Outcome: outcome,
			Passed:  c.Want == "" || c.Want == outcome,
		})
	}
	return results
}

// validate 检查单条断言的字段完整性。
func (c Check) validate() error {
	switch c.Op {
	case OpValidate, OpVersion, OpPublic:
		if c.IP == "" {
			return fmt.Errorf("%w: op %q requires ip", ErrInvalidCheck, c.Op)
		}
	case OpSubnet, OpHost:
		if c.IP == "" || c.Subnet == "" {
			return fmt.Errorf("%w: op %q requires ip and subnet", ErrInvalidCheck, c.Op)
		}
	case OpSameSubnet:
		if c.IP == "" || c.IP2 == "" || c.Subnet == "" {
			return fmt.Errorf("%w: op %q requires ip, ip2 and subnet", ErrInvalidCheck, c.Op)
		}
	default:
		return fmt.Errorf("%w: unknown op %q", ErrInvalidCheck, c.Op)
	}
	return nil
}

// evaluate 执行单条断言，返回结果的字符串形式。
func (c Check) evaluate() string {
	switch c.Op {
	case OpValidate:
		return strconv.FormatBool(xsubnet.ValidIP(c.IP))
	case OpVersion:
		return xsubnet.VersionOf(c.IP).String()
	case OpPublic:
		return strconv.FormatBool(xsubnet.IsPublic(c.IP))
	case OpSubnet:
		n, err := xsubnet.NormalizePrefix(c.Subnet, c.IP)
		if err != nil {
			return "invalid"
		}
		return strconv.Itoa(n)
	case OpSameSubnet:
		return strconv.FormatBool(xsubnet.SameSubnet(c.IP, c.IP2, c.Subnet))
	case OpHost:
		if msg, bad := xsubnet.CheckHost(c.IP, c.Subnet).Message(); bad {
			return msg
		}
		return "ok"
	default:
		// Load 阶段已拒绝未知操作
		return "invalid"
	}
}

// detectFormat 根据文件扩展名检测格式。
func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %q", ErrUnsupportedFormat, ext)
	}
}

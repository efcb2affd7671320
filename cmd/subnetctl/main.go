// subnetctl 是 IP 地址与子网校验工具库的命令行入口。
//
// 用法:
//
//	subnetctl <命令> [命令参数]
//
// 命令:
//
//	validate <ip>                    严格校验地址语法
//	version <ip>                     宽松判定地址版本（IPv4/IPv6）
//	public <ip>                      判定是否为公网单播地址
//	subnet <subnet> <reference-ip>   归一化子网描述为前缀长度
//	same <ip1> <ip2> <subnet>        判定两地址是否同网段
//	host <ip> <subnet>               检查地址是否可作为主机地址
//	batch <file> [--watch]           批量执行检查文件（YAML/JSON）
//
// 退出码:
//
//	0: 校验/检查通过
//	1: 校验/检查未通过或输入非法
//	2: 参数错误（缺少参数、未知命令等）
//
// 示例:
//
//	subnetctl validate 192.168.1.1
//	subnetctl subnet 255.255.255.0 192.168.1.1
//	subnetctl same 192.168.1.1 192.168.1.100 24
//	subnetctl host 192.168.1.0 24
//	subnetctl batch checks.yaml --watch
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:           "subnetctl",
		Usage:          "IP 地址与子网校验工具",
		Version:        fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Commands:       createCommands(),
		DefaultCommand: "help",
		// 退出码由 run() 统一映射，禁止框架直接 os.Exit。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run() int {
	app := createApp()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, os.Args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}

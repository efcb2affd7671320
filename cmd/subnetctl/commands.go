package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/emmamm05/bridge-configurator/internal/checkfile"
	"github.com/emmamm05/bridge-configurator/pkg/util/xsubnet"
)

// exitError 表示需要非零退出码但已完成输出的场景。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 表示参数错误，统一映射为退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// createCommands 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createValidateCommand(),
		createVersionCommand(),
		createPublicCommand(),
		createSubnetCommand(),
		createSameCommand(),
		createHostCommand(),
		createBatchCommand(),
	}
}

// requireArgs 校验命令参数个数。
func requireArgs(cmd *cli.Command, names ...string) ([]string, error) {
	args := cmd.Args().Slice()
	if len(args) != len(names) {
		return nil, &usageError{msg: fmt.Sprintf("%s 需要 %d 个参数: %v", cmd.Name, len(names), names)}
	}
	return args, nil
}

func createValidateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"v"},
		Usage:     "严格校验地址语法（IPv4 须为完整四段点分十进制）",
		ArgsUsage: "<ip>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args, err := requireArgs(cmd, "ip")
			if err != nil {
				return err
			}
			ok := xsubnet.ValidIP(args[0])
			fmt.Println(ok)
			if !ok {
				return &exitError{code: 1}
			}
			return nil
		},
	}
}

func createVersionCommand() *cli.Command {
	return &cli.Command{
		Name:      "version",
		Usage:     "宽松判定地址版本（接受传统 IPv4 缩写）",
		ArgsUsage: "<ip>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args, err := requireArgs(cmd, "ip")
			if err != nil {
				return err
			}
			v := xsubnet.VersionOf(args[0])
			fmt.Println(v)
			if v == xsubnet.V0 {
				return &exitError{code: 1}
			}
			return nil
		},
	}
}

func createPublicCommand() *cli.Command {
	return &cli.Command{
		Name:      "public",
		Usage:     "判定是否为可全局路由的公网单播地址",
		ArgsUsage: "<ip>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args, err := requireArgs(cmd, "ip")
			if err != nil {
				return err
			}
			ok := xsubnet.IsPublic(args[0])
			fmt.Println(ok)
			if !ok {
				return &exitError{code: 1}
			}
			return nil
		},
	}
}

func createSubnetCommand() *cli.Command {
	return &cli.Command{
		Name:      "subnet",
		Usage:     "归一化子网描述（CIDR 数字或点分掩码）为前缀长度",
		ArgsUsage: "<subnet> <reference-ip>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args, err := requireArgs(cmd, "subnet", "reference-ip")
			if err != nil {
				return err
			}
			n, err := xsubnet.NormalizePrefix(args[0], args[1])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return &exitError{code: 1}
			}
			fmt.Println(n)
			return nil
		},
	}
}

func createSameCommand() *cli.Command {
	return &cli.Command{
		Name:      "same",
		Usage:     "判定两地址是否同网段（地址族以 ip1 为准）",
		ArgsUsage: "<ip1> <ip2> <subnet>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args, err := requireArgs(cmd, "ip1", "ip2", "subnet")
			if err != nil {
				return err
			}
			ok := xsubnet.SameSubnet(args[0], args[1], args[2])
			fmt.Println(ok)
			if !ok {
				return &exitError{code: 1}
			}
			return nil
		},
	}
}

func createHostCommand() *cli.Command {
	return &cli.Command{
		Name:      "host",
		Usage:     "检查地址是否可作为网段内的主机地址",
		ArgsUsage: "<ip> <subnet>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args, err := requireArgs(cmd, "ip", "subnet")
			if err != nil {
				return err
			}
			if msg, bad := xsubnet.CheckHost(args[0], args[1]).Message(); bad {
				fmt.Println(msg)
				return &exitError{code: 1}
			}
			fmt.Println("ok")
			return nil
		},
	}
}

func createBatchCommand() *cli.Command {
	return &cli.Command{
		Name:      "batch",
		Aliases:   []string{"b"},
		Usage:     "批量执行检查文件（YAML/JSON）",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "监视文件变更并自动重新执行",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args, err := requireArgs(cmd, "file")
			if err != nil {
				return err
			}
			return cmdBatch(ctx, args[0], cmd.Bool("watch"))
		},
	}
}

// cmdBatch 执行检查文件；watch 模式下监视变更并重复执行，直到收到中断信号。
func cmdBatch(ctx context.Context, path string, watch bool) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	f, err := checkfile.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return &exitError{code: 1}
	}

	failed := runChecks(logger, f)

	if !watch {
		if failed > 0 {
			return &exitError{code: 1}
		}
		return nil
	}

	w, err := checkfile.Watch(f, func(nf *checkfile.File, err error) {
		if err != nil {
			logger.Error("reload failed", slog.String("path", path), slog.Any("error", err))
			return
		}
		logger.Info("checkfile reloaded", slog.String("path", path))
		runChecks(logger, nf)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return &exitError{code: 1}
	}
	w.StartAsync()
	defer func() {
		_ = w.Stop()
	}()

	<-ctx.Done()
	return nil
}

// runChecks 执行全部检查并逐条记录结果，返回未通过的条数。
func runChecks(logger *slog.Logger, f *checkfile.File) int {
	failed := 0
	for _, r := range f.Run() {
		attrs := []any{
			slog.String("op", string(r.Check.Op)),
			slog.String("ip", r.Check.IP),
			slog.String("outcome", r.Outcome),
		}
		if r.Check.Subnet != "" {
			attrs = append(attrs, slog.String("subnet", r.Check.Subnet))
		}
		if r.Passed {
			logger.Info("check passed", attrs...)
		} else {
			failed++
			attrs = append(attrs, slog.String("want", r.Check.Want))
			logger.Warn("check failed", attrs...)
		}
	}
	logger.Info("batch done",
		slog.Int("total", len(f.Checks)),
		slog.Int("failed", failed),
	)
	return failed
}

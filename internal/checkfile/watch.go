package checkfile

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchCallback 文件变更回调。
// 检查文件变更并重新加载后调用；err 非 nil 时 f 为变更前的旧文件。
type WatchCallback func(f *File, err error)

// Watcher 监视检查文件变更并自动重新加载。
type Watcher struct {
	file     *File
	watcher  *fsnotify.Watcher
	callback WatchCallback
	debounce time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	mu       sync.Mutex
	running  bool
	timer    *time.Timer
}

// WatchOption 监视器配置选项。
type WatchOption func(*watchOptions)

type watchOptions struct {
	debounce time.Duration
}

// WithDebounce 设置防抖时间：窗口内的多次变更只触发一次重载。
// 默认 100ms。
func WithDebounce(d time.Duration) WatchOption {
	return func(o *watchOptions) {
		o.debounce = d
	}
}

// Watch 创建检查文件监视器。
//
// 仅支持从文件加载的 File（[Load] 创建）；从字节数据创建的
// File 返回 [ErrNotWatchable]。返回的 Watcher 需调用
// [Watcher.StartAsync] 开始监视，[Watcher.Stop] 停止。
func Watch(f *File, callback WatchCallback, opts ...WatchOption) (*Watcher, error) {
	if f.path == "" {
		return nil, ErrNotWatchable
	}

	options := &watchOptions{debounce: 100 * time.Millisecond}
	for _, opt := range opts {
		opt(options)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("checkfile: create watcher: %w", err)
	}

	// 监视文件所在目录而非文件本身：编辑器保存时可能先删除再创建，
	// 直接监视文件会丢失事件。
	dir := filepath.Dir(f.path)
	if err := fsWatcher.Add(dir); err != nil {
		closeErr := fsWatcher.Close()
		return nil, errors.Join(
			fmt.Errorf("checkfile: watch directory %s: %w", dir, err),
			closeErr,
		)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Watcher{
		file:     f,
		watcher:  fsWatcher,
		callback: callback,
		debounce: options.debounce,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// StartAsync 在后台 goroutine 中启动监视，立即返回。
func (w *Watcher) StartAsync() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.run()
}

// Stop 停止监视并取消未触发的防抖回调。
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}

	w.cancel()
	w.running = false
	return w.watcher.Close()
}

// run 监视循环。
func (w *Watcher) run() {
	filename := filepath.Base(w.file.path)

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event, filename)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.callback != nil {
				w.callback(w.file, fmt.Errorf("checkfile: watch error: %w", err))
			}
		}
	}
}

// handleEvent 处理文件系统事件，带防抖。
func (w *Watcher) handleEvent(event fsnotify.Event, filename string) {
	if filepath.Base(event.Name) != filename {
		return
	}

	// Write: 直接修改；Create: 新建；Rename: 原子写入（vim/emacs）
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case <-w.ctx.Done():
			return
		default:
		}

		reloaded, err := Load(w.file.path)
		if err == nil {
			w.mu.Lock()
			w.file = reloaded
			w.mu.Unlock()
		} else {
			reloaded = w.file
		}
		if w.callback != nil {
			w.callback(reloaded, err)
		}
	})
}

package app

import (
	"context"
	"errors"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/checkout-next/internal/logger"
)

// Service 随进程启停的子服务
type Service interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Runner 负责结账后端子服务的并发启动与统一收尾
type Runner struct {
	services []Service
	log      *zap.SugaredLogger
}

// NewRunner 创建运行器
func NewRunner(services ...Service) *Runner {
	return &Runner{services: services, log: logger.S()}
}

// RunWithOptions 挂接系统信号后运行
func RunWithOptions(runner *Runner, opts Options) error {
	if runner == nil {
		return errors.New("runner is nil")
	}
	opts = normalizeOptions(opts)
	runner.log = opts.Logger

	ctx := context.Background()
	if len(opts.Signals) > 0 {
		var cancel context.CancelFunc
		ctx, cancel = signal.NotifyContext(ctx, opts.Signals...)
		defer cancel()
	}
	return runner.Run(ctx, opts.ShutdownTimeout)
}

// Run 并发启动全部子服务，任一退出或上下文取消后统一收尾。
// 信号触发的取消视为正常停机，返回 nil。
func (r *Runner) Run(ctx context.Context, stopTimeout time.Duration) error {
	if r == nil || len(r.services) == 0 {
		return errors.New("no services to run")
	}
	if r.log == nil {
		r.log = logger.S()
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	exit := r.startAll(runCtx)

	var runErr error
	select {
	case <-runCtx.Done():
		runErr = runCtx.Err()
	case err := <-exit:
		runErr = err
	}
	cancel()

	stopErr := r.stopAll(stopTimeout)
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}
	if runErr == nil {
		runErr = stopErr
	}
	return runErr
}

func (r *Runner) startAll(ctx context.Context) <-chan error {
	exit := make(chan error, len(r.services))
	for _, svc := range r.services {
		service := svc
		go func() {
			if service == nil {
				exit <- errors.New("service is nil")
				return
			}
			r.log.Infow("service_start", "service", service.Name())
			exit <- service.Start(ctx)
			r.log.Infow("service_exit", "service", service.Name())
		}()
	}
	return exit
}

// stopAll 依次停止子服务，返回首个停止失败的错误。
func (r *Runner) stopAll(timeout time.Duration) error {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	stopCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var firstErr error
	for _, service := range r.services {
		if service == nil {
			continue
		}
		if err := service.Stop(stopCtx); err != nil {
			r.log.Errorw("service_stop_failed", "service", service.Name(), "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

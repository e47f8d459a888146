package runner

import (
	"context"

	"github.com/aretw0/transducer/pkg/domain"
)

// Interceptor decides whether a step event reaches the wrapped handler.
// Returning false drops the event; an error aborts the run.
type Interceptor func(ctx context.Context, event *domain.StepEvent) (bool, error)

// MultiInterceptor chains interceptors. The first one to drop or fail wins.
func MultiInterceptor(interceptors ...Interceptor) Interceptor {
	return func(ctx context.Context, event *domain.StepEvent) (bool, error) {
		for _, interceptor := range interceptors {
			allowed, err := interceptor(ctx, event)
			if err != nil {
				return false, err
			}
			if !allowed {
				return false, nil
			}
		}
		return true, nil
	}
}

// Intercept wraps h so that only events accepted by interceptor are emitted.
// Flush and Reset are forwarded unchanged.
func Intercept(h Handler, interceptor Interceptor) Handler {
	return &interceptedHandler{next: h, interceptor: interceptor}
}

type interceptedHandler struct {
	next        Handler
	interceptor Interceptor
}

func (h *interceptedHandler) Emit(ctx context.Context, event *domain.StepEvent) error {
	ok, err := h.interceptor(ctx, event)
	if err != nil || !ok {
		return err
	}
	return h.next.Emit(ctx, event)
}

func (h *interceptedHandler) Flush(ctx context.Context) error {
	return h.next.Flush(ctx)
}

func (h *interceptedHandler) Reset() {
	if rs, ok := h.next.(interface{ Reset() }); ok {
		rs.Reset()
	}
}

// SkipUndefined drops steps whose output is still Undefined.
func SkipUndefined() Interceptor {
	return func(_ context.Context, event *domain.StepEvent) (bool, error) {
		return !event.Output.IsUndefined(), nil
	}
}

// Every keeps one step out of n, starting with the first. n <= 1 keeps all.
func Every(n int) Interceptor {
	return func(_ context.Context, event *domain.StepEvent) (bool, error) {
		if n <= 1 {
			return true, nil
		}
		return event.Index%n == 0, nil
	}
}

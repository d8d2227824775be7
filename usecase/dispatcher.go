package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/meetingagent/todo-service/api/transport"
	"github.com/meetingagent/todo-service/domain"
	"github.com/meetingagent/todo-service/pkg/logger"
)

// OperationFunc executes one named operation against validated arguments and
// returns the plain success text.
type OperationFunc func(ctx context.Context, args map[string]interface{}) (string, error)

// Operation binds an external operation name to its handler. FailureLabel
// prefixes every error surfaced by the operation, so callers always see
// "<label>: <cause>".
type Operation struct {
	Name         string
	Description  string
	FailureLabel string
	Handler      OperationFunc
}

// Dispatcher maps named external operations onto service calls and normalizes
// every outcome into the wire payload. No error crosses this boundary
// unformatted.
type Dispatcher struct {
	mu     sync.RWMutex
	ops    map[string]Operation
	logger *zap.Logger
}

func NewDispatcher(logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		ops:    make(map[string]Operation),
		logger: logger,
	}
}

// Register adds an operation to the registry. Re-registering a name replaces
// the previous handler.
func (d *Dispatcher) Register(op Operation) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ops[op.Name] = op
}

// Operations returns the registered operations sorted by name.
func (d *Dispatcher) Operations() []Operation {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ops := make([]Operation, 0, len(d.ops))
	for _, op := range d.ops {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
	return ops
}

// Dispatch runs the named operation. Validation and not-found failures are
// expected conditions; storage faults are logged before being surfaced. All
// of them come back as a failure payload, never as an error.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]interface{}) transport.Result {
	d.mu.RLock()
	op, ok := d.ops[name]
	d.mu.RUnlock()
	if !ok {
		return transport.NewError(fmt.Sprintf("unknown operation %q", name))
	}

	text, err := op.Handler(ctx, args)
	if err != nil {
		opLogger := logger.WithOperation(d.logger, op.Name)
		if expected(err) {
			opLogger.Debug("operation rejected", zap.Error(err))
		} else {
			opLogger.Error("operation failed", zap.Error(err))
		}
		return transport.NewError(fmt.Sprintf("%s: %v", op.FailureLabel, err))
	}
	return transport.NewSuccess(text)
}

func expected(err error) bool {
	return domain.IsDomainError(err, domain.ErrCodeNotFound) ||
		domain.IsDomainError(err, domain.ErrCodeInvalid)
}

package command

import "fmt"

// Executor resolves triggers or ids to registered commands and runs their
// actions. It is the error boundary for actions: failures and panics come
// back as an ExecError, never as a propagated panic.
type Executor struct {
	reg *Registry
}

// NewExecutor returns an executor over the given registry.
func NewExecutor(reg *Registry) *Executor {
	return &Executor{reg: reg}
}

// Execute looks the command up by trigger first, then by id, and invokes its
// action with the context.
func (e *Executor) Execute(triggerOrID string, ctx Context) (res *Result, err error) {
	cmd := e.reg.ByTrigger(triggerOrID)
	if cmd == nil {
		cmd = e.reg.ByID(triggerOrID)
	}
	if cmd == nil {
		return nil, NotFoundError{Key: triggerOrID}
	}
	if cmd.Action == nil {
		return nil, ExecError{ID: cmd.ID, Cause: fmt.Errorf("no action attached")}
	}

	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = ExecError{ID: cmd.ID, Cause: fmt.Errorf("action panicked: %v", r)}
		}
	}()

	out, err := cmd.Action.Execute(ctx)
	if err != nil {
		return nil, ExecError{ID: cmd.ID, Cause: err}
	}
	return &out, nil
}

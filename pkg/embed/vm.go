package gradual

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/funvibe/gradual/internal/config"
	"github.com/funvibe/gradual/internal/evaluator"
	"github.com/funvibe/gradual/internal/term"
)

// VM wraps the abstract machine and provides a high-level embedding API.
// A VM is not safe for concurrent use.
type VM struct {
	machine    *evaluator.Evaluator
	marshaller *Marshaller
}

// New creates a VM with no globals and tracing disabled.
func New() *VM {
	return &VM{
		machine:    evaluator.New(),
		marshaller: NewMarshaller(),
	}
}

// NewFromConfig creates a VM from a gradual.yaml file: the configured
// globals are bound in name order, and tracing goes to stderr when enabled.
func NewFromConfig(path string) (*VM, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg, os.Stderr)
}

// NewFromDir looks for gradual.yaml in dir and its parents and builds the VM
// from it. Without a config file the VM uses the defaults.
func NewFromDir(dir string) (*VM, error) {
	path, err := config.FindConfig(dir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return NewWithConfig(config.Default(), os.Stderr)
	}
	return NewFromConfig(path)
}

// NewWithConfig is NewFromConfig for an already loaded configuration.
func NewWithConfig(cfg *config.Config, traceOut io.Writer) (*VM, error) {
	v := New()
	if cfg.Trace.Enabled {
		v.machine.Tracer = evaluator.NewTracer(traceOut, cfg.Trace)
	}
	for _, name := range cfg.GlobalNames() {
		if err := v.Set(name, cfg.Globals[name]); err != nil {
			return nil, fmt.Errorf("global %q: %w", name, err)
		}
	}
	return v, nil
}

// SetTracer logs every transition of later evaluations to w.
func (v *VM) SetTracer(w io.Writer, cfg TraceConfig) {
	v.machine.Tracer = evaluator.NewTracer(w, cfg)
}

// Set binds a global. val may be a Go number, bool, Label or any Term;
// terms are evaluated lazily the first time they are needed.
func (v *VM) Set(name string, val interface{}) error {
	t, err := v.marshaller.ToTerm(val)
	if err != nil {
		return err
	}
	v.machine.Bind(term.Ident(name), t)
	return nil
}

// Get forces a global and converts its value to Go.
func (v *VM) Get(name string) (interface{}, error) {
	if _, ok := v.machine.Lookup(term.Ident(name)); !ok {
		return nil, fmt.Errorf("variable '%s' not found", name)
	}
	return v.Eval(term.NewVar(term.Ident(name)))
}

// Call applies the global function funcName to args and converts the
// result to Go.
func (v *VM) Call(funcName string, args ...interface{}) (interface{}, error) {
	if _, ok := v.machine.Lookup(term.Ident(funcName)); !ok {
		return nil, fmt.Errorf("function '%s' not found", funcName)
	}

	termArgs := make([]term.Term, len(args))
	for i, arg := range args {
		t, err := v.marshaller.ToTerm(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d conversion failed: %w", i, err)
		}
		termArgs[i] = t
	}
	return v.Eval(term.NewApp(term.NewVar(term.Ident(funcName)), termArgs...))
}

// Eval reduces t and converts the result to Go.
func (v *VM) Eval(t Term) (interface{}, error) {
	result, err := v.EvalTerm(t)
	if err != nil {
		return nil, err
	}
	return v.marshaller.FromTerm(result, nil)
}

// EvalAs is Eval with the result converted to the type of target,
// which must be a pointer.
func (v *VM) EvalAs(t Term, target interface{}) error {
	ptr := reflect.ValueOf(target)
	if ptr.Kind() != reflect.Ptr || ptr.IsNil() {
		return fmt.Errorf("target must be a non-nil pointer, got %T", target)
	}
	result, err := v.EvalTerm(t)
	if err != nil {
		return err
	}
	val, err := v.marshaller.FromTerm(result, ptr.Elem().Type())
	if err != nil {
		return err
	}
	rv := reflect.ValueOf(val)
	if !rv.Type().AssignableTo(ptr.Elem().Type()) {
		return fmt.Errorf("cannot assign %T to %s", val, ptr.Elem().Type())
	}
	ptr.Elem().Set(rv)
	return nil
}

// EvalTerm reduces t to weak head normal form under the VM's globals.
func (v *VM) EvalTerm(t Term) (Term, error) {
	return v.machine.Eval(t)
}

// Stats reports the counters of the latest evaluation.
func (v *VM) Stats() Stats {
	return v.machine.Stats()
}

package evaluator

import (
	"fmt"
	"io"
	"log"
	"os"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/funvibe/gradual/internal/config"
)

const (
	ansiReset  = "\x1b[0m"
	ansiDim    = "\x1b[2m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
	ansiCyan   = "\x1b[36m"
)

// Rule names as they appear in the trace.
const (
	ruleVar     = "var"
	ruleApp     = "app"
	ruleLet     = "let"
	ruleOp1     = "op1"
	ruleOp2     = "op2"
	rulePromise = "promise"
	ruleAssume  = "assume"
	ruleUpdate  = "update"
	ruleCont    = "cont"
	ruleCall    = "call"
	ruleHalt    = "halt"
	ruleFail    = "fail"
)

// maxTraceTerm caps how much of a term a trace line prints.
const maxTraceTerm = 60

var ruleColors = map[string]string{
	ruleVar:     ansiCyan,
	ruleUpdate:  ansiYellow,
	ruleCont:    ansiBlue,
	ruleCall:    ansiGreen,
	ruleHalt:    ansiGreen,
	ruleFail:    ansiRed,
	rulePromise: ansiYellow,
	ruleAssume:  ansiYellow,
}

// Tracer logs one line per machine transition.
type Tracer struct {
	logger *log.Logger
	color  bool
}

// NewTracer writes to w. Colour follows cfg.Color; in auto mode it is used
// only when w is a terminal and NO_COLOR is unset.
func NewTracer(w io.Writer, cfg config.TraceConfig) *Tracer {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = config.DefaultTracePrefix
	}
	var color bool
	switch cfg.Color {
	case config.ColorAlways:
		color = true
	case config.ColorNever:
		color = false
	default:
		color = isTerminal(w)
	}
	return &Tracer{
		logger: log.New(w, prefix+" ", 0),
		color:  color,
	}
}

func isTerminal(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// traceRun is the trace of a single evaluation. All methods are no-ops on a
// nil receiver, which is what begin returns for a nil Tracer.
type traceRun struct {
	tracer *Tracer
	id     string
}

func (t *Tracer) begin(t0 fmt.Stringer) *traceRun {
	if t == nil {
		return nil
	}
	run := &traceRun{tracer: t, id: uuid.NewString()[:8]}
	run.tracer.logger.Printf("[%s] start %s", run.id, shorten(t0.String()))
	return run
}

func (r *traceRun) rule(step int, name string, clos Closure, stack *Stack) {
	if r == nil {
		return
	}
	r.tracer.logger.Printf("[%s] #%d %s %s %s",
		r.id, step, r.paint(name), shorten(clos.Body.String()), r.dim(stackSummary(stack)))
}

func (r *traceRun) done(steps int, result Closure) {
	if r == nil {
		return
	}
	r.tracer.logger.Printf("[%s] %s after %d steps: %s", r.id, r.paint(ruleHalt), steps, shorten(result.Body.String()))
}

func (r *traceRun) fail(steps int, err error) {
	if r == nil {
		return
	}
	r.tracer.logger.Printf("[%s] %s after %d steps: %v", r.id, r.paint(ruleFail), steps, err)
}

func (r *traceRun) paint(name string) string {
	padded := fmt.Sprintf("%-7s", name)
	color, ok := ruleColors[name]
	if !r.tracer.color || !ok {
		return padded
	}
	return color + padded + ansiReset
}

func (r *traceRun) dim(s string) string {
	if !r.tracer.color {
		return s
	}
	return ansiDim + s + ansiReset
}

func stackSummary(s *Stack) string {
	top := "-"
	if k, ok := s.top(); ok {
		top = k.String()
	}
	return fmt.Sprintf("(depth=%d top=%s)", s.Len(), top)
}

func shorten(s string) string {
	if len(s) <= maxTraceTerm {
		return s
	}
	cut := maxTraceTerm - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

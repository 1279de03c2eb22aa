// Package motion moves tracked targets with small JavaScript expressions
// evaluated by goja. A Script is a pair of expressions, one per axis, over
// the elapsed time t in seconds.
package motion

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dop251/goja"
	"github.com/golang/geo/r2"
)

// Script is the source of a motion: world x and y as functions of t.
type Script struct {
	X string
	Y string
}

// ErrNotFinite is returned when a script evaluates to NaN or ±Inf.
var ErrNotFinite = errors.New("non-finite position")

// ScriptError ties a compile or evaluation failure to the axis expression
// that caused it.
type ScriptError struct {
	Axis   string // "x" or "y"
	Source string
	Err    error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("%s = %q: %v", e.Axis, e.Source, e.Err)
}

func (e *ScriptError) Unwrap() error { return e.Err }

const (
	// DefaultTimeout bounds a single evaluation; runaway loops are
	// interrupted.
	DefaultTimeout = 50 * time.Millisecond
	maxOutput      = 50
)

// Motion evaluates one Script. It owns a goja runtime and is not safe for
// concurrent use.
type Motion struct {
	script  Script
	xProg   *goja.Program
	yProg   *goja.Program
	runtime *goja.Runtime

	// Output collects print() lines, oldest first, capped at 50.
	Output  []string
	Timeout time.Duration
}

// New compiles s and returns a ready Motion.
func New(s Script) (*Motion, error) {
	m := &Motion{runtime: goja.New(), Timeout: DefaultTimeout}
	m.installBuiltins()
	if err := m.SetScript(s); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Motion) installBuiltins() {
	rt := m.runtime
	_ = rt.Set("sin", math.Sin)
	_ = rt.Set("cos", math.Cos)
	_ = rt.Set("PI", math.Pi)
	_ = rt.Set("print", func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = arg.String()
		}
		m.log(strings.Join(parts, " "))
		return goja.Undefined()
	})
}

func (m *Motion) log(line string) {
	m.Output = append(m.Output, line)
	if n := len(m.Output) - maxOutput; n > 0 {
		m.Output = append(m.Output[:0], m.Output[n:]...)
	}
}

// SetScript compiles and installs s. On error the previous script stays
// active.
func (m *Motion) SetScript(s Script) error {
	s.X, s.Y = strings.TrimSpace(s.X), strings.TrimSpace(s.Y)
	xp, err := compile("x", s.X)
	if err != nil {
		return err
	}
	yp, err := compile("y", s.Y)
	if err != nil {
		return err
	}
	m.script, m.xProg, m.yProg = s, xp, yp
	return nil
}

// Script returns the active source.
func (m *Motion) Script() Script { return m.script }

func compile(axis, src string) (*goja.Program, error) {
	if src == "" {
		return nil, &ScriptError{Axis: axis, Source: src, Err: errors.New("empty expression")}
	}
	p, err := goja.Compile(axis, src, false)
	if err != nil {
		return nil, &ScriptError{Axis: axis, Source: src, Err: err}
	}
	return p, nil
}

// At evaluates the script at t seconds.
func (m *Motion) At(t float64) (r2.Point, error) {
	if err := m.runtime.Set("t", t); err != nil {
		return r2.Point{}, err
	}
	x, err := m.eval("x", m.script.X, m.xProg)
	if err != nil {
		return r2.Point{}, err
	}
	y, err := m.eval("y", m.script.Y, m.yProg)
	if err != nil {
		return r2.Point{}, err
	}
	return r2.Point{X: x, Y: y}, nil
}

func (m *Motion) eval(axis, src string, p *goja.Program) (float64, error) {
	if m.Timeout > 0 {
		fired := make(chan struct{})
		timer := time.AfterFunc(m.Timeout, func() {
			m.runtime.Interrupt("timeout")
			close(fired)
		})
		defer func() {
			// A timer that already fired may still be mid-Interrupt; wait
			// for it so the clear below is the last word.
			if !timer.Stop() {
				<-fired
			}
			m.runtime.ClearInterrupt()
		}()
	}

	v, err := m.runtime.RunProgram(p)
	if err != nil {
		return 0, &ScriptError{Axis: axis, Source: src, Err: err}
	}
	f := v.ToFloat()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &ScriptError{Axis: axis, Source: src, Err: fmt.Errorf("%w: %v", ErrNotFinite, v)}
	}
	return f, nil
}

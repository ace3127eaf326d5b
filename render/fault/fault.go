// Package fault implements the fail-fast assertion path used by the renderer.
//
// A Fault is a programming or configuration defect (bad display mode, exceeded
// budget, division by zero). It is raised with panic and is never retried;
// the frame loop recovers it once to show a diagnostic screen and halts.
package fault

import "fmt"

// Fault is the panic value raised by Check and Panic.
type Fault struct {
	Msg string
}

func (f *Fault) Error() string { return f.Msg }

// Panic raises a Fault with the given message.
func Panic(msg string) {
	if msg == "" {
		msg = "unnamed error"
	}
	panic(&Fault{Msg: msg})
}

// Check raises a Fault naming the failed assertion when cond is false.
func Check(cond bool, name string) {
	if cond {
		return
	}
	if name == "" {
		name = "(unnamed)"
	}
	panic(&Fault{Msg: fmt.Sprintf("assertion '%s' failed", name)})
}

// Catch runs fn and returns the Fault it raised, if any.
//
// Panics that are not Faults are re-raised unchanged.
func Catch(fn func()) (f *Fault) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if ff, ok := r.(*Fault); ok {
			f = ff
			return
		}
		panic(r)
	}()
	fn()
	return nil
}

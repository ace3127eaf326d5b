package fault

import (
	"strings"
	"testing"
)

func TestCheckPassesWhenTrue(t *testing.T) {
	if f := Catch(func() { Check(true, "ok") }); f != nil {
		t.Fatalf("unexpected fault: %v", f)
	}
}

func TestCheckNamesAssertion(t *testing.T) {
	f := Catch(func() { Check(false, "divisor != 0") })
	if f == nil {
		t.Fatalf("expected fault")
	}
	if !strings.Contains(f.Error(), "divisor != 0") {
		t.Fatalf("message=%q", f.Error())
	}
}

func TestPanicEmptyMessage(t *testing.T) {
	f := Catch(func() { Panic("") })
	if f == nil || f.Msg != "unnamed error" {
		t.Fatalf("got %v", f)
	}
}

func TestCatchRepanicsForeignValues(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Fatalf("recover=%v", r)
		}
	}()
	Catch(func() { panic("boom") })
	t.Fatalf("unreachable")
}

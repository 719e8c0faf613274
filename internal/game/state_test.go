package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-mines/internal/core"
)

type recState struct {
	name   string
	log    *[]string
	onTick func()
}

func (r *recState) HandleInput(core.Event) { *r.log = append(*r.log, "input:"+r.name) }
func (r *recState) Update(time.Duration) {
	*r.log = append(*r.log, "update:"+r.name)
	if r.onTick != nil {
		r.onTick()
	}
}
func (r *recState) Draw(core.Surface) { *r.log = append(*r.log, "draw:"+r.name) }

func TestStackOrder(t *testing.T) {
	var log []string
	var k Stack
	k.Push(&recState{name: "a", log: &log})
	k.Push(&recState{name: "b", log: &log})

	k.HandleInput(core.ActionEvent{})
	k.Update(0)
	k.Draw(nil)

	want := []string{"input:b", "update:a", "update:b", "draw:a", "draw:b"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}

func TestStackPushDuringUpdate(t *testing.T) {
	var log []string
	var k Stack
	k.Push(&recState{name: "a", log: &log, onTick: func() {
		k.Push(&recState{name: "late", log: &log})
	}})

	k.Update(0)
	if k.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", k.Len())
	}
	for _, l := range log {
		if l == "update:late" {
			t.Error("state pushed during update was updated in the same tick")
		}
	}
}

func TestStackPopEmpty(t *testing.T) {
	var k Stack
	if k.Pop() != nil || k.Top() != nil {
		t.Error("empty stack returned a state")
	}
	k.HandleInput(core.ActionEvent{})
	k.Push(&recState{name: "a", log: new([]string)})
	k.Reset()
	if k.Len() != 0 {
		t.Errorf("Len() after Reset = %d", k.Len())
	}
}

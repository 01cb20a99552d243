package registry

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type fakeGame struct{ id string }

func (g fakeGame) ID() string                                          { return g.id }
func (g fakeGame) Title() string                                       { return "Fake " + g.id }
func (g fakeGame) Reset(core.RuntimeConfig)                            {}
func (g fakeGame) Resize(int, int)                                     {}
func (g fakeGame) Step(time.Duration, core.InputFrame) core.StepResult { return core.StepResult{} }
func (g fakeGame) Render(*core.Screen)                                 {}
func (g fakeGame) State() core.GameState                               { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-fake", func() Game { return fakeGame{id: "zz-fake"} })
	Register("aa-fake", func() Game { return fakeGame{id: "aa-fake"} })

	if !Exists("zz-fake") {
		t.Fatal("zz-fake not registered")
	}
	g, err := Create("zz-fake")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz-fake" {
		t.Errorf("ID() = %q", g.ID())
	}

	if _, err := Create("missing"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(missing) error = %v, want ErrUnknownGame", err)
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
	found := false
	for _, info := range list {
		if info.ID == "aa-fake" && info.Title == "Fake aa-fake" {
			found = true
		}
	}
	if !found {
		t.Error("aa-fake missing from List")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-fake", func() Game { return fakeGame{id: "dup-fake"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("dup-fake", func() Game { return fakeGame{id: "dup-fake"} })
}

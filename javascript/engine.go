// Package javascript runs user scripts against the map runtime. Scripts
// see a `studio` object with query and selection methods.
package javascript

import (
	"context"
	"fmt"
	"time"

	"riskmap/truntime"
	"riskmap/typedef"

	"github.com/dop251/goja"
)

// Studio is the scripting facade over the runtime state.
type Studio struct {
	st *truntime.State
}

func (s *Studio) MapName() string {
	return s.st.MapName()
}

func (s *Studio) GetTerritories() []*typedef.Territory {
	return s.st.Territories()
}

func (s *Studio) GetTerritory(name string) *typedef.Territory {
	for _, terr := range s.st.Territories() {
		if terr.Name == name {
			return terr
		}
	}
	return nil
}

// GetSelection returns the selected territory name, or "" when nothing is
// selected.
func (s *Studio) GetSelection() string {
	_, terr := s.st.Selection()
	if terr == nil {
		return ""
	}
	return terr.Name
}

func (s *Studio) Select(name string) error {
	return s.st.SelectName(name)
}

// Click resolves a point through the hit test, exactly like a pointer
// press in the GUI.
func (s *Studio) Click(x, y float64) string {
	s.st.HandleClick(typedef.Point{X: x, Y: y})
	return s.GetSelection()
}

func (s *Studio) Deselect() {
	s.st.Deselect()
}

func (s *Studio) SetOwner(name string, owner int) error {
	return s.st.SetOwner(name, owner)
}

func (s *Studio) SetArmies(name string, armies int) error {
	return s.st.SetArmies(name, armies)
}

func (s *Studio) SaveSnapshot(path string) error {
	return s.st.SaveSnapshot(path)
}

// Timeout after 60 seconds
const scriptDeadline = 60 * time.Second

// Execute runs a script source against the given runtime state and returns
// its final value.
func Execute(st *truntime.State, src, scriptName string) (goja.Value, error) {
	vm := goja.New()

	// Utility functions
	vm.Set("sprintf", fmt.Sprintf)
	vm.Set("printf", fmt.Printf)
	vm.Set("println", fmt.Println)
	vm.Set("studio", &Studio{st: st})

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(scriptDeadline))
	defer cancel()

	resultCh := make(chan struct {
		val goja.Value
		err error
	}, 1)

	go func() {
		val, err := vm.RunString(src)
		resultCh <- struct {
			val goja.Value
			err error
		}{val, err}
	}()

	select {
	case <-ctx.Done():
		vm.Interrupt("timeout")
		return nil, fmt.Errorf("script %s timed out: %w", scriptName, ctx.Err())
	case res := <-resultCh:
		if res.err != nil {
			return nil, fmt.Errorf("failed to run script %s: %w", scriptName, res.err)
		}
		return res.val, nil
	}
}

package tree

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/retain/pkg/screen"
	"tableflip.dev/retain/pkg/store"
)

func TestTreePrintsScreen(t *testing.T) {
	color.NoColor = true
	p := store.NewMemory()
	if err := screen.Bind(p).Difficulty.Set(screen.Hard); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	tr := Tree{Persistence: p, Out: &buf, ShowCalls: true}
	if err := tr.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"Settings", "Gameplay", "Difficulty: Hard", "⦵ Assist mode", "CreateDropdown"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

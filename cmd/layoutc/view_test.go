package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/layout-codec/layout"
	"github.com/wippyai/layout-codec/transcoder"
)

func personCodec(t *testing.T) *transcoder.Codec {
	t.Helper()
	l := layout.Struct("Person",
		layout.Scalar("age", layout.KindU8),
		layout.Scalar("name", layout.KindString),
		layout.Array("scores", layout.Scalar("", layout.KindI16)),
	)
	c, err := transcoder.New(l)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *viewModel, keys ...string) {
	for _, k := range keys {
		m.Update(key(k))
	}
}

func TestCollectLeaves(t *testing.T) {
	c := personCodec(t)
	v, err := c.Decode(personBytes())
	if err != nil {
		t.Fatal(err)
	}

	leaves := collectLeaves(c.Layout(), &v)
	var paths []string
	for _, lf := range leaves {
		paths = append(paths, lf.path)
	}
	want := "age name scores[0] scores[1]"
	if got := strings.Join(paths, " "); got != want {
		t.Errorf("paths = %q, want %q", got, want)
	}

	leaves[2].set(int16(9))
	if got := v.(map[string]any)["scores"].([]any)[0]; got != int16(9) {
		t.Errorf("set did not update the tree: %v", got)
	}
}

func TestCollectLeavesScalarRoot(t *testing.T) {
	var v any = uint32(7)
	leaves := collectLeaves(layout.Scalar("", layout.KindU32), &v)
	if len(leaves) != 1 || leaves[0].path != rootPath {
		t.Fatalf("leaves = %+v", leaves)
	}
	leaves[0].set(uint32(8))
	if v != uint32(8) {
		t.Errorf("root not updated: %v", v)
	}
}

func TestParseLeaf(t *testing.T) {
	tests := []struct {
		kind    layout.Kind
		text    string
		want    any
		wantErr bool
	}{
		{layout.KindU8, "200", uint8(200), false},
		{layout.KindU8, "256", nil, true},
		{layout.KindI16, "-5", int16(-5), false},
		{layout.KindBool, "true", true, false},
		{layout.KindBool, "yes", nil, true},
		{layout.KindString, "hello world", "hello world", false},
		{layout.KindF64, "2.5", 2.5, false},
		{layout.KindF32, "Infinity", float32(math.Inf(1)), false},
		{layout.KindU64, "18446744073709551615", uint64(math.MaxUint64), false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.text, func(t *testing.T) {
			got, err := parseLeaf(tt.kind, tt.text)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseLeaf: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestFormatLeaf(t *testing.T) {
	tests := []struct {
		kind layout.Kind
		v    any
		want string
	}{
		{layout.KindString, "Ann", "Ann"},
		{layout.KindU8, uint8(27), "27"},
		{layout.KindF64, 2.0, "2.0"},
		{layout.KindF64, math.NaN(), "NaN"},
		{layout.KindBool, false, "false"},
	}
	for _, tt := range tests {
		if got := formatLeaf(tt.kind, tt.v); got != tt.want {
			t.Errorf("formatLeaf(%s, %v) = %q, want %q", tt.kind, tt.v, got, tt.want)
		}
	}
}

func TestViewEditAndWrite(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.bin")
	m, err := newViewModel(personCodec(t), personBytes(), "in.bin", out)
	if err != nil {
		t.Fatal(err)
	}

	// Edit age.
	send(m, "enter", "ctrl+u", "4", "2", "enter")
	if m.editing {
		t.Fatal("still editing after enter")
	}
	if !m.dirty {
		t.Error("model not marked dirty")
	}

	// An invalid value keeps the editor open.
	send(m, "down", "enter", "esc")
	send(m, "down", "enter", "ctrl+u", "x", "enter")
	if !m.editing || m.err == nil {
		t.Fatalf("invalid i16 accepted: editing=%v err=%v", m.editing, m.err)
	}
	send(m, "esc")

	send(m, "w")
	if m.err != nil {
		t.Fatalf("write: %v", m.err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := personBytes()
	want[0] = 42
	if !bytes.Equal(got, want) {
		t.Errorf("wrote %x, want %x", got, want)
	}
	if m.dirty {
		t.Error("model still dirty after write")
	}
	if !strings.Contains(m.View(), "wrote") {
		t.Error("status not shown")
	}
}

func TestViewNavigation(t *testing.T) {
	m, err := newViewModel(personCodec(t), personBytes(), "in.bin", "out.bin")
	if err != nil {
		t.Fatal(err)
	}

	send(m, "up")
	if m.selected != 0 {
		t.Errorf("selected = %d after up at top", m.selected)
	}
	send(m, "down", "down", "down", "down", "down")
	if m.selected != 3 {
		t.Errorf("selected = %d, want 3", m.selected)
	}

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	start, end := m.window()
	if start != 2 || end != 4 {
		t.Errorf("window = [%d,%d), want [2,4)", start, end)
	}
	view := m.View()
	if strings.Contains(view, "age") || !strings.Contains(view, "scores[1]") {
		t.Errorf("unexpected view:\n%s", view)
	}

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q did not quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not return tea.Quit")
	}
}

func TestScalarCodecReused(t *testing.T) {
	first, err := scalarCodec(layout.KindU16)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		formatLeaf(layout.KindU16, uint16(i))
		if _, err := parseLeaf(layout.KindU16, "7"); err != nil {
			t.Fatal(err)
		}
	}
	again, err := scalarCodec(layout.KindU16)
	if err != nil {
		t.Fatal(err)
	}
	if first != again {
		t.Error("leaf codec should be built once per kind")
	}
}

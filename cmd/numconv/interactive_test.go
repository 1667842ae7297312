package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func loadedModel(t *testing.T) *interactiveModel {
	t.Helper()
	m := newInteractiveModel(sessionConfig{checked: true}, zap.NewNop())
	msg := m.load()
	if lm, ok := msg.(loadedMsg); !ok || lm.err != nil {
		t.Fatalf("load: %+v", msg)
	}
	m.Update(msg)
	t.Cleanup(m.close)
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInteractive_SelectAndCall(t *testing.T) {
	m := loadedModel(t)

	if !strings.Contains(m.View(), "encode-s32") {
		t.Fatalf("function list missing:\n%s", m.View())
	}

	m.Update(key("down")) // encode-u32
	m.Update(key("enter"))
	if m.state != stateInputArgs {
		t.Fatalf("state = %d, want input", m.state)
	}
	for _, r := range "1000000007" {
		m.Update(key(string(r)))
	}

	_, cmd := m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("enter did not produce a call")
	}
	m.Update(cmd())

	if m.state != stateShowResult {
		t.Fatalf("state = %d, want result", m.state)
	}
	if m.err != nil {
		t.Fatalf("call failed: %v", m.err)
	}
	if m.result != "1000000007" {
		t.Errorf("result = %q", m.result)
	}

	m.Update(key("enter"))
	if m.state != stateSelectFunc {
		t.Errorf("state = %d, want select", m.state)
	}
}

func TestInteractive_TypingQInInput(t *testing.T) {
	m := loadedModel(t)
	m.Update(key("enter"))
	_, cmd := m.Update(key("q"))
	if m.state != stateInputArgs {
		t.Fatalf("q left the input form")
	}
	if cmd != nil {
		if _, quit := cmd().(tea.QuitMsg); quit {
			t.Error("q quit while typing")
		}
	}
	m.Update(key("esc"))
	if m.state != stateSelectFunc {
		t.Errorf("esc did not return to the list")
	}
}

func TestInteractive_LoadError(t *testing.T) {
	m := newInteractiveModel(sessionConfig{wasmFile: "/nonexistent/guest.wasm"}, zap.NewNop())
	m.Update(m.load())
	if m.err == nil || !strings.Contains(m.View(), "Error") {
		t.Errorf("load error not shown: %q", m.View())
	}
}

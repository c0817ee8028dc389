package opengl

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/modkit"
)

func TestGUIKey(t *testing.T) {
	tests := []struct {
		in   glfw.Key
		want gui.Key
	}{
		{glfw.KeyInsert, gui.KeyInsert},
		{glfw.KeyKPEnter, gui.KeyEnter},
		{glfw.KeyF5, gui.KeyF5},
		{glfw.KeyEscape, gui.KeyEscape},
		{glfw.KeyQ, gui.KeyNone},
	}
	for _, tt := range tests {
		if got := guiKey(tt.in); got != tt.want {
			t.Errorf("guiKey(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGUIMouseButton(t *testing.T) {
	if b, ok := guiMouseButton(glfw.MouseButtonRight); !ok || b != gui.MouseButtonRight {
		t.Errorf("right button = %v, %v", b, ok)
	}
	if _, ok := guiMouseButton(glfw.MouseButton4); ok {
		t.Error("button 4 should not map")
	}
}

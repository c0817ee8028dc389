package gui_test

import (
	"testing"

	gui "github.com/go-theft-auto/modkit"
)

func TestBoxContainsHalfOpen(t *testing.T) {
	box := gui.NewBox(10, 20, 30, 40, "")

	tests := []struct {
		name string
		x, y float32
		want bool
	}{
		{"top-left corner", 10, 20, true},
		{"inside", 25, 35, true},
		{"right edge", 40, 30, false},
		{"bottom edge", 20, 60, false},
		{"just inside bottom-right", 39.9, 59.9, true},
		{"left of box", 9.9, 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestClickableConsumesOnlyInside(t *testing.T) {
	var buttons []gui.MouseButton
	c := gui.NewClickable(gui.NewBox(0, 0, 10, 10, "x"), func(b gui.MouseButton) {
		buttons = append(buttons, b)
	})

	if c.OnMouseClicked(10, 5, gui.MouseButtonLeft) {
		t.Error("click on the right edge should not be consumed")
	}
	if !c.OnMouseClicked(0, 0, gui.MouseButtonRight) {
		t.Error("click at the anchor should be consumed")
	}
	if len(buttons) != 1 || buttons[0] != gui.MouseButtonRight {
		t.Errorf("callback should receive the button once, got %v", buttons)
	}

	c.Hidden = true
	if c.OnMouseClicked(5, 5, gui.MouseButtonLeft) {
		t.Error("hidden clickable should not consume clicks")
	}
}

func TestClickableNilCallback(t *testing.T) {
	c := gui.NewClickable(gui.NewBox(0, 0, 10, 10, ""), nil)
	if !c.OnMouseClicked(1, 1, gui.MouseButtonLeft) {
		t.Error("nil callback should still consume")
	}
}

func TestClickableFeedback(t *testing.T) {
	sounder := &countingSounder{}
	c := gui.NewClickable(gui.NewBox(0, 0, 10, 10, ""), nil)
	c.Feedback = &gui.Feedback{
		Settings: fakeSettings{bools: map[string]bool{gui.SettingSound: true}},
		Sounder:  sounder,
	}

	c.OnMouseClicked(50, 50, gui.MouseButtonLeft)
	c.OnMouseClicked(5, 5, gui.MouseButtonLeft)
	if sounder.clicks != 1 {
		t.Errorf("expected sound only for consumed click, got %d", sounder.clicks)
	}
}

func TestToggleFlipsOnAnyButton(t *testing.T) {
	var got []bool
	tg := gui.NewToggle(gui.NewBox(0, 0, 10, 10, "Sound"), false, func(on bool) {
		got = append(got, on)
	})

	for _, b := range []gui.MouseButton{gui.MouseButtonLeft, gui.MouseButtonRight, gui.MouseButtonMiddle} {
		before := tg.On()
		if !tg.OnMouseClicked(5, 5, b) {
			t.Fatalf("click with %v not consumed", b)
		}
		if tg.On() == before {
			t.Errorf("button %v did not flip the state", b)
		}
	}
	if len(got) != 3 || got[0] != true || got[1] != false || got[2] != true {
		t.Errorf("callback states = %v", got)
	}
}

func TestToggleDoubleClickRestores(t *testing.T) {
	for _, initial := range []bool{false, true} {
		calls := 0
		tg := gui.NewToggle(gui.NewBox(0, 0, 10, 10, ""), initial, func(bool) { calls++ })
		tg.OnMouseClicked(1, 1, gui.MouseButtonLeft)
		tg.OnMouseClicked(1, 1, gui.MouseButtonLeft)
		if tg.On() != initial {
			t.Errorf("two clicks from %v left state %v", initial, tg.On())
		}
		if calls != 2 {
			t.Errorf("expected 2 callbacks, got %d", calls)
		}
	}
}

func TestToggleMissAndSetOn(t *testing.T) {
	calls := 0
	tg := gui.NewToggle(gui.NewBox(0, 0, 10, 10, ""), false, func(bool) { calls++ })

	if tg.OnMouseClicked(20, 20, gui.MouseButtonLeft) {
		t.Error("click outside should not be consumed")
	}
	tg.SetOn(true)
	if !tg.On() || calls != 0 {
		t.Errorf("SetOn should change state silently (on=%v calls=%d)", tg.On(), calls)
	}
}

func TestToggleRenderDependsOnState(t *testing.T) {
	tg := gui.NewToggle(gui.NewBox(0, 0, 10, 10, "Xray"), true, nil)

	var on recorder
	tg.Render(&on, gui.Vec2{})
	if len(on.fills) == 0 || on.fills[0] != tg.Style.EnabledColor || len(on.outlines) != 1 {
		t.Errorf("on state should fill with the enabled color and outline, got %+v", on)
	}

	tg.SetOn(false)
	var off recorder
	tg.Render(&off, gui.Vec2{X: 5, Y: 5})
	if len(off.fills) == 0 || off.fills[0] != tg.Style.BackgroundColor || len(off.outlines) != 0 {
		t.Errorf("off state should draw the plain background, got %+v", off)
	}
	if len(off.texts) != 1 || off.texts[0] != "Xray" {
		t.Errorf("title should be drawn, got %v", off.texts)
	}
}

func TestCycleWraps(t *testing.T) {
	for size := 1; size <= 5; size++ {
		c := gui.NewCycle(gui.NewBox(0, 0, 10, 10, ""), size, nil)

		for i := 0; i < size; i++ {
			c.OnMouseClicked(1, 1, gui.MouseButtonLeft)
		}
		if c.Index() != 0 {
			t.Errorf("size %d: %d primary clicks should return to 0, got %d", size, size, c.Index())
		}

		c.OnMouseClicked(1, 1, gui.MouseButtonRight)
		if c.Index() != size-1 {
			t.Errorf("size %d: secondary click from 0 should wrap to %d, got %d", size, size-1, c.Index())
		}

		c.OnMouseClicked(1, 1, gui.MouseButtonMiddle)
		c.OnMouseClicked(1, 1, gui.MouseButtonLeft)
		if c.Index() != size-1 {
			t.Errorf("size %d: back then forward should be identity, got %d", size, c.Index())
		}
	}
}

func TestCycleCallbackSeesSettledIndex(t *testing.T) {
	var seen []int
	c := gui.NewCycle(gui.NewBox(0, 0, 10, 10, ""), 3, func(i int) { seen = append(seen, i) })
	c.SetIndex(2)

	c.OnMouseClicked(1, 1, gui.MouseButtonLeft)
	c.OnMouseClicked(1, 1, gui.MouseButtonRight)
	c.OnMouseClicked(50, 50, gui.MouseButtonLeft)

	want := []int{0, 2}
	if len(seen) != len(want) {
		t.Fatalf("callbacks = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("callback %d = %d, want %d", i, seen[i], want[i])
		}
	}
}

func TestCycleSetSizeClamps(t *testing.T) {
	c := gui.NewCycle(gui.NewBox(0, 0, 10, 10, ""), 0, nil)
	if c.Size() != 1 {
		t.Errorf("size below 1 should be raised, got %d", c.Size())
	}
	c.SetSize(4)
	c.SetIndex(3)
	c.SetSize(2)
	if c.Index() != 1 {
		t.Errorf("shrinking should clamp the index, got %d", c.Index())
	}
	c.SetIndex(-5)
	if c.Index() != 0 {
		t.Errorf("SetIndex should clamp to 0, got %d", c.Index())
	}
}

func TestCycleLabel(t *testing.T) {
	c := gui.NewCycle(gui.NewBox(0, 0, 10, 10, "Corner"), 2, nil)
	c.Labels = []string{"top-left", "top-right"}
	c.SetIndex(1)
	if got := c.Label(); got != "Corner: top-right" {
		t.Errorf("Label() = %q", got)
	}
}

func TestTextFieldEditing(t *testing.T) {
	var changes []string
	f := gui.NewTextField(gui.NewBox(0, 0, 100, 12, ""), func(s string) { changes = append(changes, s) })

	if f.OnCharTyped('a') {
		t.Error("unfocused field should ignore typing")
	}
	if !f.OnMouseClicked(5, 5, gui.MouseButtonLeft) || !f.Focused() {
		t.Fatal("click should focus the field")
	}

	for _, r := range "dia" {
		f.OnCharTyped(r)
	}
	f.OnCharTyped('\n')
	f.OnKeyPressed(gui.KeyBackspace)
	if f.Text() != "di" {
		t.Errorf("Text() = %q, want %q", f.Text(), "di")
	}

	f.OnKeyPressed(gui.KeyDelete)
	if f.Text() != "" {
		t.Errorf("Delete left %q, want an empty field", f.Text())
	}
	f.OnKeyPressed(gui.KeyBackspace) // empty, no change
	f.OnKeyPressed(gui.KeyEscape)
	if f.Focused() {
		t.Error("Escape should unfocus")
	}

	want := []string{"d", "di", "dia", "di", ""}
	if len(changes) != len(want) {
		t.Fatalf("changes = %q, want %q", changes, want)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change %d = %q, want %q", i, changes[i], want[i])
		}
	}
}

func TestTextFieldMaxLength(t *testing.T) {
	f := gui.NewTextField(gui.NewBox(0, 0, 100, 12, ""), nil)
	f.MaxLength = 2
	f.SetFocused(true)
	for _, r := range "abc" {
		f.OnCharTyped(r)
	}
	if f.Text() != "ab" {
		t.Errorf("Text() = %q, want %q", f.Text(), "ab")
	}
}

func TestTextFieldRenderPlaceholder(t *testing.T) {
	f := gui.NewTextField(gui.NewBox(0, 0, 100, 12, ""), nil)
	f.Placeholder = "Search..."

	var rec recorder
	f.Render(&rec, gui.Vec2{})
	if len(rec.texts) != 1 || rec.texts[0] != "Search..." {
		t.Errorf("expected placeholder, got %v", rec.texts)
	}
	if rec.clips != 0 {
		t.Errorf("clip stack unbalanced: %d", rec.clips)
	}
}

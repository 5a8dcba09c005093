package blaeck

import "testing"

func TestRuneWidth(t *testing.T) {
	type tc struct {
		r        rune
		expected int
	}

	tests := map[string]tc{
		"ascii letter":      {r: 'a', expected: 1},
		"space":             {r: ' ', expected: 1},
		"cjk ideograph":     {r: '世', expected: 2},
		"hiragana":          {r: 'あ', expected: 2},
		"emoji":             {r: '🎉', expected: 2},
		"control byte":      {r: '\x07', expected: 1},
		"zero-width joiner": {r: '‍', expected: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := RuneWidth(tt.r); got != tt.expected {
				t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.expected)
			}
		})
	}
}

func TestCell_NewCell(t *testing.T) {
	narrow := NewCell('a', NewStyle())
	if narrow.Width != 1 {
		t.Errorf("narrow cell width = %d, want 1", narrow.Width)
	}

	wide := NewCell('世', NewStyle())
	if wide.Width != 2 {
		t.Errorf("wide cell width = %d, want 2", wide.Width)
	}
}

func TestCell_IsContinuation(t *testing.T) {
	cont := NewCellWithWidth(0, NewStyle(), 0)
	if !cont.IsContinuation() {
		t.Error("width-0 cell should be a continuation")
	}
	if NewCell('a', NewStyle()).IsContinuation() {
		t.Error("regular cell should not be a continuation")
	}
}

func TestCell_IsBlank(t *testing.T) {
	type tc struct {
		cell     Cell
		expected bool
	}

	tests := map[string]tc{
		"space default style": {cell: NewCell(' ', NewStyle()), expected: true},
		"zero rune":           {cell: Cell{}, expected: true},
		"letter":              {cell: NewCell('a', NewStyle()), expected: false},
		"styled space":        {cell: NewCell(' ', NewStyle().Background(Red)), expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.cell.IsBlank(); got != tt.expected {
				t.Errorf("IsBlank = %v, want %v", got, tt.expected)
			}
		})
	}
}

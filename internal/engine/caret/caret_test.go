package caret

import (
	"reflect"
	"testing"
)

func TestNewSpanNormalizes(t *testing.T) {
	s := NewSpan(7, 3)
	if s.StartLine != 3 || s.EndLine != 7 {
		t.Errorf("expected span 3-7, got %d-%d", s.StartLine, s.EndLine)
	}
	if !s.HasSelection {
		t.Error("NewSpan should mark an active selection")
	}
}

func TestNewCaret(t *testing.T) {
	c := NewCaret(5)
	if c.StartLine != 5 || c.EndLine != 5 {
		t.Errorf("expected caret on line 5, got %d-%d", c.StartLine, c.EndLine)
	}
	if c.HasSelection {
		t.Error("bare caret should have no selection")
	}
	if c.LineCount() != 1 {
		t.Errorf("expected line count 1, got %d", c.LineCount())
	}
}

func TestSetOrdersByDocumentPosition(t *testing.T) {
	s := NewSet(NewCaret(9), NewCaret(2), NewSpan(4, 6))
	if s.First() != 2 {
		t.Errorf("expected first line 2, got %d", s.First())
	}
	spans := s.Spans()
	if spans[0].StartLine != 2 || spans[1].StartLine != 4 || spans[2].StartLine != 9 {
		t.Errorf("spans not in document order: %v", spans)
	}
}

func TestSetLines(t *testing.T) {
	s := NewSet(NewSpan(1, 3), NewCaret(2), NewCaret(7))
	want := []int{1, 2, 3, 7}
	if got := s.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected lines %v, got %v", want, got)
	}
}

func TestSetIsEmpty(t *testing.T) {
	var zero Set
	if !zero.IsEmpty() {
		t.Error("zero set should be empty")
	}
	if NewSet(NewCaret(0)).IsEmpty() {
		t.Error("set with a caret should not be empty")
	}
}

func TestSingleCaret(t *testing.T) {
	if !NewSet(NewCaret(3)).SingleCaret() {
		t.Error("one bare caret is the single-caret case")
	}
	if NewSet(NewSpan(3, 3)).SingleCaret() {
		t.Error("a one-line selection is not the single-caret case")
	}
	if NewSet(NewCaret(1), NewCaret(4)).SingleCaret() {
		t.Error("multiple carets are not the single-caret case")
	}
}

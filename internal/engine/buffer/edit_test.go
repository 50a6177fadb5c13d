package buffer

import "testing"

func TestEditKinds(t *testing.T) {
	ins := NewInsert(2, 4, "// ")
	if !ins.IsInsert() || ins.IsDelete() || ins.IsNoOp() {
		t.Error("NewInsert should produce a pure insertion")
	}

	del := NewDelete(2, 4, 3)
	if !del.IsDelete() || del.IsInsert() || del.IsNoOp() {
		t.Error("NewDelete should produce a pure deletion")
	}

	rep := NewReplace(0, 0, 2, "    // ")
	if rep.IsInsert() || rep.IsDelete() || rep.IsNoOp() {
		t.Error("NewReplace should be neither pure insert nor pure delete")
	}

	noop := Edit{Line: 1}
	if !noop.IsNoOp() {
		t.Error("empty edit should be a no-op")
	}
}

func TestEditString(t *testing.T) {
	if s := NewInsert(1, 2, "# ").String(); s != `Insert(1:2, "# ")` {
		t.Errorf("unexpected insert string: %s", s)
	}
	if s := NewDelete(3, 0, 2).String(); s != "Delete(3:0, 2)" {
		t.Errorf("unexpected delete string: %s", s)
	}
}

func TestPlanAppendDropsNoOps(t *testing.T) {
	var p Plan
	p.Append(Edit{Line: 0})
	if len(p.Edits) != 0 {
		t.Error("no-op edits should be dropped")
	}
	p.Append(NewInsert(0, 0, "// "))
	if len(p.Edits) != 1 {
		t.Errorf("expected 1 edit, got %d", len(p.Edits))
	}
}

func TestPlanIsNoOp(t *testing.T) {
	var p Plan
	if !p.IsNoOp() {
		t.Error("empty plan should be a no-op")
	}
	p.MoveCaret = true
	if p.IsNoOp() {
		t.Error("plan with caret move is not a no-op")
	}
}

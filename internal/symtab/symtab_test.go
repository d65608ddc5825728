package symtab

import "testing"

func TestDefineAndLookup(t *testing.T) {
	st := New()
	if err := st.Define("start", 0, 1); err != nil {
		t.Fatal(err)
	}
	if err := st.Define("loop", 4, 2); err != nil {
		t.Fatal(err)
	}
	addr, ok := st.Lookup("loop")
	if !ok || addr != 4 {
		t.Errorf("got %v,%v want 4,true", addr, ok)
	}
}

func TestDuplicateDefineFails(t *testing.T) {
	st := New()
	if err := st.Define("x", 0, 1); err != nil {
		t.Fatal(err)
	}
	if err := st.Define("x", 2, 2); err == nil {
		t.Errorf("expected error on duplicate definition")
	}
}

func TestCaseSensitive(t *testing.T) {
	st := New()
	_ = st.Define("Loop", 0, 1)
	if st.Has("loop") {
		t.Errorf("lookup should be case-sensitive")
	}
}

func TestInsertionOrder(t *testing.T) {
	st := New()
	_ = st.Define("b", 2, 1)
	_ = st.Define("a", 0, 2)
	entries := st.Entries()
	if len(entries) != 2 || entries[0].Name != "b" || entries[1].Name != "a" {
		t.Errorf("entries not in insertion order: %+v", entries)
	}
}

func TestDefinedAt(t *testing.T) {
	st := New()
	_ = st.Define("start", 0, 5)
	line, ok := st.DefinedAt("start")
	if !ok || line != 5 {
		t.Errorf("got %v,%v want 5,true", line, ok)
	}
	if _, ok := st.DefinedAt("missing"); ok {
		t.Errorf("expected DefinedAt to fail for undefined label")
	}
}

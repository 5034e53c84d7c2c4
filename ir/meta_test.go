package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/conllab/go-conllu/schema"
)

func TestMetaOrder(t *testing.T) {
	var m Meta
	m.Set("sent_id", schema.Some("1"))
	m.Set("text", schema.Some("a b"))
	m.Set("newpar", schema.None[string]())

	if diff := cmp.Diff([]string{"sent_id", "text", "newpar"}, m.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}

	// Updating never moves a key.
	m.Set("sent_id", schema.Some("2"))
	if diff := cmp.Diff([]string{"sent_id", "text", "newpar"}, m.Keys()); diff != "" {
		t.Errorf("keys moved after update (-want +got):\n%s", diff)
	}
	if v, _ := m.Get("sent_id"); v.Or("") != "2" {
		t.Errorf("sent_id = %v, want 2", v)
	}

	if !m.Has("newpar") {
		t.Error("singleton key should be declared")
	}
	if v, ok := m.Get("newpar"); !ok || v.Present() {
		t.Errorf("newpar = %v, %v, want declared with absent value", v, ok)
	}
}

func TestMetaDelete(t *testing.T) {
	var m Meta
	m.Set("a", schema.Some("1"))
	m.Set("b", schema.Some("2"))
	m.Set("c", schema.Some("3"))

	m.Delete("b")
	if diff := cmp.Diff([]string{"a", "c"}, m.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if m.Has("b") || m.Len() != 2 {
		t.Errorf("b survived delete, len = %d", m.Len())
	}
	m.Delete("missing")
	if m.Len() != 2 {
		t.Errorf("deleting a missing key changed len to %d", m.Len())
	}
}

func TestSentenceAccessors(t *testing.T) {
	type rec struct{ Word string }
	snt := &Sentence[rec]{}

	if snt.ID().Present() || snt.Text().Present() {
		t.Error("undeclared sent_id/text should be absent")
	}
	snt.Meta().Set(SentIDKey, schema.Some("s-7"))
	snt.Meta().Set(TextKey, schema.Some("hi"))
	if snt.ID().Or("") != "s-7" || snt.Text().Or("") != "hi" {
		t.Errorf("id/text = %v/%v", snt.ID(), snt.Text())
	}

	snt.Append(&rec{Word: "hi"})
	if snt.Len() != 1 || snt.Tokens()[0].Word != "hi" {
		t.Errorf("tokens = %v", snt.Tokens())
	}

	snt.SetLines(3, 5)
	if start, end := snt.Lines(); start != 3 || end != 5 {
		t.Errorf("lines = %d..%d, want 3..5", start, end)
	}
}

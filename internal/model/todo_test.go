package model

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func sample() []Todo {
	return []Todo{
		{ID: "a", Text: "Buy milk", DueDate: "2025-01-01"},
		{ID: "b", Text: "Walk dog", Completed: true},
		{ID: "c", Text: "Call mum"},
	}
}

func TestAppend_TrimsAndDefaultsIncomplete(t *testing.T) {
	out, ok := Append(nil, "x", "  Buy milk  ", "2025-01-01")
	if !ok {
		t.Fatalf("Append refused valid text")
	}
	want := []Todo{{ID: "x", Text: "Buy milk", DueDate: "2025-01-01"}}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("Append = %#v, want %#v", out, want)
	}
}

func TestAppend_RefusesBlank(t *testing.T) {
	in := sample()
	out, ok := Append(in, "x", "   ", "")
	if ok {
		t.Fatalf("Append accepted blank text")
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("collection changed on blank append")
	}
}

func TestToggle_FlipsOnlyTarget(t *testing.T) {
	in := sample()
	out, ok := Toggle(in, "a")
	if !ok {
		t.Fatalf("Toggle reported missing id")
	}
	if !out[0].Completed {
		t.Fatalf("target not toggled")
	}
	if in[0].Completed {
		t.Fatalf("input slice was mutated")
	}
	for i := 1; i < len(in); i++ {
		if out[i] != in[i] {
			t.Fatalf("entry %d changed: %#v", i, out[i])
		}
	}
}

func TestRemove_UnknownIDChangesNothing(t *testing.T) {
	in := sample()
	out, ok := Remove(in, "nope")
	if ok {
		t.Fatalf("Remove reported a removal for unknown id")
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("Remove changed collection: %#v", out)
	}
}

func TestRemove_KeepsOrder(t *testing.T) {
	out, ok := Remove(sample(), "b")
	if !ok || len(out) != 2 || out[0].ID != "a" || out[1].ID != "c" {
		t.Fatalf("Remove = %#v, %v", out, ok)
	}
}

func TestEdit_PreservesIDAndCompletion(t *testing.T) {
	out, ok := Edit(sample(), "b", " Walk cat ", "2025-03-04")
	if !ok {
		t.Fatalf("Edit refused")
	}
	want := Todo{ID: "b", Text: "Walk cat", DueDate: "2025-03-04", Completed: true}
	if out[1] != want {
		t.Fatalf("Edit = %#v, want %#v", out[1], want)
	}
}

func TestEdit_RefusesBlank(t *testing.T) {
	in := sample()
	out, ok := Edit(in, "a", "   ", "2025-02-01")
	if ok {
		t.Fatalf("Edit accepted blank text")
	}
	if out[0].Text != "Buy milk" || out[0].DueDate != "2025-01-01" {
		t.Fatalf("original changed: %#v", out[0])
	}
}

func TestJSON_NullDueDate(t *testing.T) {
	b, err := json.Marshal([]Todo{{ID: "1", Text: "x"}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(b), `"dueDate":null`) {
		t.Fatalf("absent due date not encoded as null: %s", b)
	}

	var got []Todo
	raw := `[{"id":"1","text":"x","dueDate":null,"completed":false},{"id":"2","text":"y","completed":true}]`
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got[0].DueDate != "" || got[1].DueDate != "" || !got[1].Completed {
		t.Fatalf("decoded = %#v", got)
	}
}

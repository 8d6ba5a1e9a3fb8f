package view

import (
	"reflect"
	"testing"
	"time"

	"github.com/idilsaglam/duetodo/internal/model"
	"github.com/idilsaglam/duetodo/internal/store"
	"github.com/idilsaglam/duetodo/internal/store/memkv"
)

var noon = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func TestRender_EmptyShowsPlaceholder(t *testing.T) {
	r := NewRenderer(store.New(memkv.New()))
	tree := r.Render()
	if !tree.Empty || len(tree.Rows) != 0 {
		t.Fatalf("tree = %#v, want empty", tree)
	}
}

func TestRender_IsIdempotent(t *testing.T) {
	s := store.New(memkv.New())
	_ = s.Save([]model.Todo{
		{ID: "1", Text: "a", DueDate: "2025-03-01"},
		{ID: "2", Text: "b", Completed: true},
	})
	r := NewRenderer(s).WithClock(func() time.Time { return noon })

	first, second := r.Render(), r.Render()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("renders differ:\n%#v\n%#v", first, second)
	}
	if &first.Rows[0] == &second.Rows[0] {
		t.Fatalf("rows were reused between renders")
	}
}

func TestRender_RereadsStore(t *testing.T) {
	s := store.New(memkv.New())
	r := NewRenderer(s)
	if !r.Render().Empty {
		t.Fatalf("expected empty")
	}
	_ = s.Save([]model.Todo{{ID: "1", Text: "a"}})
	if tree := r.Render(); tree.Empty || len(tree.Rows) != 1 {
		t.Fatalf("tree = %#v", tree)
	}
}

func TestBuild_RowsFollowOrder(t *testing.T) {
	tree := Build([]model.Todo{
		{ID: "3", Text: "c"},
		{ID: "1", Text: "a", Completed: true},
		{ID: "2", Text: "b", DueDate: "2025-12-25"},
	}, noon)
	var ids []string
	for _, r := range tree.Rows {
		ids = append(ids, r.ID)
	}
	if !reflect.DeepEqual(ids, []string{"3", "1", "2"}) {
		t.Fatalf("ids = %v", ids)
	}
	if tree.Rows[0].Due != nil {
		t.Fatalf("row without due date has a badge")
	}
	if !tree.Rows[1].Checked {
		t.Fatalf("completed row not checked")
	}
	if got := tree.Rows[2].Due.Label; got != "Dec 25, 2025" {
		t.Fatalf("label = %q", got)
	}
	done, pending := tree.Summary()
	if done != 1 || pending != 2 {
		t.Fatalf("summary = %d/%d", done, pending)
	}
}

func TestBuild_OverdueFlag(t *testing.T) {
	tests := []struct {
		name      string
		due       string
		completed bool
		want      bool
	}{
		{"yesterday incomplete", "2025-03-09", false, true},
		{"yesterday completed", "2025-03-09", true, false},
		{"today", "2025-03-10", false, false},
		{"tomorrow", "2025-03-11", false, false},
		{"garbage", "soon", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := Build([]model.Todo{{ID: "1", Text: "x", DueDate: tt.due, Completed: tt.completed}}, noon)
			if got := tree.Rows[0].Due.Overdue; got != tt.want {
				t.Fatalf("Overdue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsOverdue_IgnoresTimeOfDay(t *testing.T) {
	justAfterMidnight := time.Date(2025, time.March, 10, 0, 0, 1, 0, time.UTC)
	lateEvening := time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC)
	for _, now := range []time.Time{justAfterMidnight, lateEvening} {
		if IsOverdue("2025-03-10", now) {
			t.Fatalf("today is overdue at %v", now)
		}
		if !IsOverdue("2025-03-09", now) {
			t.Fatalf("yesterday not overdue at %v", now)
		}
	}
}

func TestFormatDue_FallsBackToRaw(t *testing.T) {
	if got := FormatDue("2025-01-05"); got != "Jan 5, 2025" {
		t.Fatalf("FormatDue = %q", got)
	}
	if got := FormatDue("next week"); got != "next week" {
		t.Fatalf("FormatDue = %q", got)
	}
}

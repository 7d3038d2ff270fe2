package catalog

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nathanbeddoewebdev/taoquotes/internal/domain"
)

func testQuotes() []domain.Quote {
	return []domain.Quote{
		{ID: "a", Text: "first", Source: "Lao Tzu", Chapter: "Chapter 1"},
		{ID: "b", Text: "second", Source: "Zhuangzi"},
		{ID: "c", Text: "third", Source: "Liezi"},
	}
}

func seeded() Option {
	return WithRand(rand.New(rand.NewPCG(1, 2)))
}

func TestDefault_IDsUnique(t *testing.T) {
	c := Default()
	if c.Len() != len(quotes) {
		t.Fatalf("expected %d quotes, got %d (duplicate IDs in the compiled-in list?)", len(quotes), c.Len())
	}
	for _, q := range c.All() {
		if q.ID == "" || q.Text == "" || q.Source == "" {
			t.Errorf("incomplete quote: %+v", q)
		}
	}
}

func TestNew_DropsDuplicateIDs(t *testing.T) {
	qs := append(testQuotes(), domain.Quote{ID: "a", Text: "imposter"})
	c := New(qs)

	if c.Len() != 3 {
		t.Fatalf("expected 3 quotes, got %d", c.Len())
	}
	got, _ := c.GetByID("a")
	if got.Text != "first" {
		t.Errorf("expected first occurrence to win, got %q", got.Text)
	}
}

func TestNew_CopiesInput(t *testing.T) {
	qs := testQuotes()
	c := New(qs)
	qs[0].Text = "mutated"

	got, _ := c.GetByID("a")
	if got.Text != "first" {
		t.Errorf("catalog shares backing array with caller: got %q", got.Text)
	}
}

func TestGetByID(t *testing.T) {
	c := New(testQuotes())

	got, ok := c.GetByID("b")
	if !ok {
		t.Fatal("expected b to be found")
	}
	if diff := cmp.Diff(testQuotes()[1], got); diff != "" {
		t.Errorf("quote mismatch (-want +got):\n%s", diff)
	}

	if _, ok := c.GetByID("missing"); ok {
		t.Error("expected missing id to be absent")
	}
}

func TestPickRandom_NeverReturnsExcluded(t *testing.T) {
	c := Default(seeded())
	for _, q := range c.All() {
		for i := 0; i < 50; i++ {
			if got := c.PickRandom(q.ID); got.ID == q.ID {
				t.Fatalf("PickRandom(%q) returned the excluded quote", q.ID)
			}
		}
	}
}

func TestPickRandom_TwoEntries(t *testing.T) {
	c := New(testQuotes()[:2], seeded())
	for i := 0; i < 100; i++ {
		if got := c.PickRandom("a"); got.ID != "b" {
			t.Fatalf("expected b, got %q", got.ID)
		}
	}
}

func TestPickRandom_CoversAllCandidates(t *testing.T) {
	c := New(testQuotes(), seeded())
	seen := map[string]int{}
	for i := 0; i < 600; i++ {
		seen[c.PickRandom("b").ID]++
	}

	if seen["b"] != 0 {
		t.Errorf("excluded quote drawn %d times", seen["b"])
	}
	for _, id := range []string{"a", "c"} {
		if seen[id] < 200 {
			t.Errorf("quote %q drawn %d/600 times; distribution looks skewed", id, seen[id])
		}
	}
}

func TestPickRandom_UnknownOrEmptyExclude(t *testing.T) {
	c := New(testQuotes(), seeded())
	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		seen[c.PickRandom("").ID] = true
		seen[c.PickRandom("nope").ID] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected all 3 quotes to be reachable, saw %v", seen)
	}
}

func TestPickRandom_SingleEntryFallsBack(t *testing.T) {
	c := New(testQuotes()[:1])
	got := c.PickRandom("a")
	if got.ID != "a" {
		t.Errorf("expected sole entry to be returned, got %+v", got)
	}
}

func TestPickRandom_Empty(t *testing.T) {
	c := New(nil)
	if got := c.PickRandom("a"); got != (domain.Quote{}) {
		t.Errorf("expected zero quote, got %+v", got)
	}
}

func TestNextPrev(t *testing.T) {
	c := New(testQuotes())

	tests := []struct {
		name string
		fn   func(string) (domain.Quote, bool)
		id   string
		want string
	}{
		{"next middle", c.Next, "a", "b"},
		{"next wraps", c.Next, "c", "a"},
		{"next unknown", c.Next, "zzz", "a"},
		{"prev middle", c.Prev, "c", "b"},
		{"prev wraps", c.Prev, "a", "c"},
		{"prev unknown", c.Prev, "", "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.fn(tt.id)
			if !ok {
				t.Fatal("expected a quote")
			}
			if got.ID != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got.ID)
			}
		})
	}

	if _, ok := New(nil).Next("a"); ok {
		t.Error("expected Next on empty catalog to report false")
	}
}

package crawler

import (
	"testing"
)

func TestFrontierPrioritizesRecipePaths(t *testing.T) {
	f := newFrontier()
	f.push(frontierEntry{url: "https://example.com/about"})
	f.push(frontierEntry{url: "https://example.com/recipes/soup"})
	f.push(frontierEntry{url: "https://example.com/contact"})
	f.push(frontierEntry{url: "https://example.com/best-recipe-ever"})

	wantOrder := []string{
		"https://example.com/recipes/soup",
		"https://example.com/best-recipe-ever",
		"https://example.com/about",
		"https://example.com/contact",
	}

	for i, want := range wantOrder {
		e, ok := f.pop()
		if !ok {
			t.Fatalf("pop() %d exhausted early", i)
		}
		if e.url != want {
			t.Errorf("pop() %d = %q, want %q", i, e.url, want)
		}
	}
	if _, ok := f.pop(); ok {
		t.Error("frontier should be empty")
	}
}

func TestFrontierDeduplicates(t *testing.T) {
	f := newFrontier()
	f.push(frontierEntry{url: "https://example.com/a"})
	f.push(frontierEntry{url: "https://example.com/a"})
	f.push(frontierEntry{url: "https://example.com/recipes"})
	f.push(frontierEntry{url: "https://example.com/recipes"})

	if got := f.len(); got != 2 {
		t.Errorf("len() = %d, want 2", got)
	}

	// A popped URL stays seen and cannot be re-admitted.
	f.pop()
	f.push(frontierEntry{url: "https://example.com/recipes"})
	if got := f.len(); got != 1 {
		t.Errorf("len() after re-push = %d, want 1", got)
	}
}

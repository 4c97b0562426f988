package crawler

import "regexp"

// recipePathPattern biases discovery toward recipe-dense areas of a site:
// links whose URL looks recipe-ish dequeue ahead of everything else.
var recipePathPattern = regexp.MustCompile(`(?i)recipe`)

type frontierEntry struct {
	url            string
	discoveredFrom string
	depth          int
}

// frontier is a FIFO queue with two bands. Entries whose URL matches the
// recipe-path pattern are dequeued before plain entries; within a band
// order is strictly first-in first-out. A URL is only ever admitted once.
type frontier struct {
	prioritized []frontierEntry
	regular     []frontierEntry
	seen        map[string]struct{}
}

func newFrontier() *frontier {
	return &frontier{seen: make(map[string]struct{})}
}

// push enqueues an entry unless its URL has been seen before.
func (f *frontier) push(e frontierEntry) {
	if _, ok := f.seen[e.url]; ok {
		return
	}
	f.seen[e.url] = struct{}{}

	if recipePathPattern.MatchString(e.url) {
		f.prioritized = append(f.prioritized, e)
	} else {
		f.regular = append(f.regular, e)
	}
}

func (f *frontier) pop() (frontierEntry, bool) {
	if len(f.prioritized) > 0 {
		e := f.prioritized[0]
		f.prioritized = f.prioritized[1:]
		return e, true
	}
	if len(f.regular) > 0 {
		e := f.regular[0]
		f.regular = f.regular[1:]
		return e, true
	}
	return frontierEntry{}, false
}

func (f *frontier) len() int {
	return len(f.prioritized) + len(f.regular)
}

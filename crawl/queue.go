// Package crawl — ordered set of discovered sources.
// Maintains a visited set so a source reached twice is recorded once.
package crawl

// Queue is an insertion-ordered set of sources.
type Queue struct {
	items   []string
	visited map[string]bool
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{
		visited: make(map[string]bool),
	}
}

// Add enqueues a source if it hasn't been seen before.
func (q *Queue) Add(source string) {
	if q.visited[source] {
		return
	}
	q.visited[source] = true
	q.items = append(q.items, source)
}

// Visited returns the total number of unique sources seen.
func (q *Queue) Visited() int {
	return len(q.visited)
}

// All returns all discovered sources in insertion order.
func (q *Queue) All() []string {
	return q.items
}

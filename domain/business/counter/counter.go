package counter

import (
	"cmp"
	"sort"
)

// Entry value with its number of occurrences
type Entry[K comparable] struct {
	Value K   `json:"value"`
	Count int `json:"count"`
}

// Counter counts occurrences of values and remembers the order in which each value was first seen
// + counts: occurrences per value
// + order: values in first-seen order
// + less: ordering used to break ties in Mode
type Counter[K comparable] struct {
	counts map[K]int
	order  []K
	less   func(a, b K) bool
}

// NewCounter returns a Counter that breaks Mode ties with less
func NewCounter[K comparable](less func(a, b K) bool) *Counter[K] {
	return &Counter[K]{
		counts: make(map[K]int),
		less:   less,
	}
}

// NewOrderedCounter returns a Counter over an ordered type that breaks Mode ties with the natural order
func NewOrderedCounter[K cmp.Ordered]() *Counter[K] {
	return NewCounter[K](cmp.Less[K])
}

func (c *Counter[K]) UpdateCounter(value K) {
	if _, ok := c.counts[value]; !ok {
		c.order = append(c.order, value)
	}
	c.counts[value] += 1
}

// Len returns the amount of distinct values
func (c *Counter[K]) Len() int {
	return len(c.order)
}

// Merge adds the occurrences of counter2. Values unseen by c keep counter2's first-seen order after c's own values
func (c *Counter[K]) Merge(counter2 *Counter[K]) {
	for _, value := range counter2.order {
		if _, ok := c.counts[value]; !ok {
			c.order = append(c.order, value)
		}
		c.counts[value] += counter2.counts[value]
	}
}

// Mode returns the most frequent value. Among values tied for the highest count the lowest one,
// according to the counter ordering, wins. ok is false when nothing was counted.
func (c *Counter[K]) Mode() (value K, count int, ok bool) {
	for _, candidate := range c.order {
		candidateCount := c.counts[candidate]
		if !ok || candidateCount > count || (candidateCount == count && c.less(candidate, value)) {
			value = candidate
			count = candidateCount
			ok = true
		}
	}
	return value, count, ok
}

// Ranked returns every value ordered by descending count. Ties keep first-seen order.
func (c *Counter[K]) Ranked() []Entry[K] {
	entries := make([]Entry[K], 0, len(c.order))
	for _, value := range c.order {
		entries = append(entries, Entry[K]{Value: value, Count: c.counts[value]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

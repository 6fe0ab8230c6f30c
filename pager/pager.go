// SPDX-License-Identifier: Unlicense OR MIT

// Package pager computes the page windows shown by paginated lists.
package pager

// Ellipsis marks an elided run of pages in a window.
const Ellipsis = -1

// Pager is the value state of a pagination control. Pages are
// numbered from 1.
type Pager struct {
	// Current is the selected page.
	Current int
	// Count is the total number of pages.
	Count int
	// Window is the maximum number of consecutive page numbers shown
	// around Current. Non-positive means show every page.
	Window int
}

// Clamp normalizes Current into [1, Count].
func (p *Pager) Clamp() {
	if p.Current < 1 {
		p.Current = 1
	}
	if p.Current > p.Count {
		p.Current = p.Count
	}
}

// Pages returns the visible page numbers: a run of Window pages around
// Current, clamped to the ends, with the first and last page always
// present and Ellipsis entries where pages are elided. The result is
// nil when Count is not positive.
func (p Pager) Pages() []int {
	if p.Count <= 0 {
		return nil
	}
	p.Clamp()
	w := p.Window
	if w <= 0 || w > p.Count {
		w = p.Count
	}
	start := p.Current - w/2
	if start < 1 {
		start = 1
	}
	if start+w-1 > p.Count {
		start = p.Count - w + 1
	}
	end := start + w - 1
	var pages []int
	if start > 1 {
		pages = append(pages, 1)
		if start > 2 {
			pages = append(pages, Ellipsis)
		}
	}
	for n := start; n <= end; n++ {
		pages = append(pages, n)
	}
	if end < p.Count {
		if end < p.Count-1 {
			pages = append(pages, Ellipsis)
		}
		pages = append(pages, p.Count)
	}
	return pages
}

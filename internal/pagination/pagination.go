// Package pagination splits a fixed list of items into pages, renders the
// current page through a caller supplied function and describes the page
// controls that should be shown next to it.
//
// A Paginator belongs to a single view. When the backing data changes (for
// example after a category filter) the caller builds a new one instead of
// mutating the old. A Paginator is not safe for concurrent use.
package pagination

import (
	"go.uber.org/zap"

	"showcase/internal/lib/logger/utils"
)

// RenderFunc turns one item into its display representation.
type RenderFunc[T, R any] func(T) R

// ItemSink receives the rendered items of the current page.
type ItemSink[R any] interface {
	ShowItems(items []R)
}

// ButtonSink receives the page controls for the current page.
type ButtonSink interface {
	ShowButtons(buttons []Button)
}

// Option configures a Paginator.
type Option[R any] func(*options[R])

type options[R any] struct {
	items   ItemSink[R]
	buttons ButtonSink
	name    string
}

// WithItemSink sets the surface that receives rendered items.
func WithItemSink[R any](s ItemSink[R]) Option[R] {
	return func(o *options[R]) { o.items = s }
}

// WithButtonSink sets the surface that receives page controls.
func WithButtonSink[R any](s ButtonSink) Option[R] {
	return func(o *options[R]) { o.buttons = s }
}

// WithFrame wires both surfaces to f.
func WithFrame[R any](f *Frame[R]) Option[R] {
	return func(o *options[R]) {
		o.items = f
		o.buttons = f
	}
}

// WithName labels log lines of this paginator, e.g. "explore-projects".
func WithName[R any](name string) Option[R] {
	return func(o *options[R]) { o.name = name }
}

// Paginator tracks the current page of data and renders it.
type Paginator[T, R any] struct {
	data        []T
	pageSize    int
	totalPages  int
	currentPage int
	render      RenderFunc[T, R]
	opts        options[R]
}

// New builds a Paginator positioned on page 1. A pageSize below 1 is treated
// as 1. data is not copied; the caller must not modify it while the
// Paginator is in use.
func New[T, R any](data []T, pageSize int, render RenderFunc[T, R], opts ...Option[R]) *Paginator[T, R] {
	if pageSize < 1 {
		pageSize = 1
	}
	p := &Paginator[T, R]{
		data:        data,
		pageSize:    pageSize,
		totalPages:  TotalPages(len(data), pageSize),
		currentPage: 1,
		render:      render,
	}
	for _, opt := range opts {
		opt(&p.opts)
	}
	return p
}

// TotalPages returns ceil(n/pageSize). An empty list still has one (empty)
// page.
func TotalPages(n, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	if n <= 0 {
		return 1
	}
	return (n + pageSize - 1) / pageSize
}

func (p *Paginator[T, R]) Len() int         { return len(p.data) }
func (p *Paginator[T, R]) PageSize() int    { return p.pageSize }
func (p *Paginator[T, R]) TotalPages() int  { return p.totalPages }
func (p *Paginator[T, R]) CurrentPage() int { return p.currentPage }

// CurrentPageItems returns the slice of data shown on the current page.
func (p *Paginator[T, R]) CurrentPageItems() []T {
	start := (p.currentPage - 1) * p.pageSize
	end := start + p.pageSize
	start = clamp(start, 0, len(p.data))
	end = clamp(end, 0, len(p.data))
	return p.data[start:end]
}

// Buttons returns the page controls for the current page.
func (p *Paginator[T, R]) Buttons() []Button {
	return Window(p.currentPage, p.totalPages, len(p.data) == 0)
}

// Start renders the first page.
func (p *Paginator[T, R]) Start() {
	p.update()
}

// GoTo moves to target and renders the new page. Previous on the first page,
// Next on the last page, ellipsis targets and page numbers outside
// [1, TotalPages] are ignored; GoTo then reports false and renders nothing.
func (p *Paginator[T, R]) GoTo(target Target) bool {
	switch target.Kind {
	case Previous:
		if p.currentPage <= 1 {
			return false
		}
		p.currentPage--
	case Next:
		if p.currentPage >= p.totalPages {
			return false
		}
		p.currentPage++
	case PageNumber:
		if target.Page < 1 || target.Page > p.totalPages {
			utils.Logger.Debug("Paginator.GoTo - page out of range",
				zap.String("paginator", p.opts.name), zap.Int("page", target.Page), zap.Int("total_pages", p.totalPages))
			return false
		}
		p.currentPage = target.Page
	default:
		return false
	}
	p.update()
	return true
}

func (p *Paginator[T, R]) update() {
	p.displayItems()
	p.displayButtons()
}

func (p *Paginator[T, R]) displayItems() {
	if p.opts.items == nil {
		utils.Logger.Warn("Paginator - item container not configured, skipping items", zap.String("paginator", p.opts.name))
		return
	}
	items := p.CurrentPageItems()
	rendered := make([]R, 0, len(items))
	for _, item := range items {
		rendered = append(rendered, p.render(item))
	}
	p.opts.items.ShowItems(rendered)
}

func (p *Paginator[T, R]) displayButtons() {
	if p.opts.buttons == nil {
		utils.Logger.Warn("Paginator - pagination container not configured, skipping buttons", zap.String("paginator", p.opts.name))
		return
	}
	p.opts.buttons.ShowButtons(p.Buttons())
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

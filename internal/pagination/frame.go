package pagination

// Frame is an in-memory host surface. It keeps whatever the Paginator last
// rendered so a request handler or a CLI command can materialise it.
type Frame[R any] struct {
	Items   []R
	Buttons []Button
	Renders int
}

func (f *Frame[R]) ShowItems(items []R) {
	f.Items = items
	f.Renders++
}

func (f *Frame[R]) ShowButtons(buttons []Button) {
	f.Buttons = buttons
}

package pagination

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies a page control.
type Kind int

const (
	Previous Kind = iota + 1
	PageNumber
	Ellipsis
	Next
)

func (k Kind) String() string {
	switch k {
	case Previous:
		return "previous"
	case PageNumber:
		return "page"
	case Ellipsis:
		return "ellipsis"
	case Next:
		return "next"
	default:
		return "unknown"
	}
}

// MarshalText lets Kind appear as a word in JSON.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for _, kind := range []Kind{Previous, PageNumber, Ellipsis, Next} {
		if string(text) == kind.String() {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown control kind %q", text)
}

// maxFullWindow is the largest page count for which every page gets a control.
const maxFullWindow = 7

// Button describes one page control. Page is set for PageNumber controls and
// holds the destination page for enabled Previous/Next controls.
type Button struct {
	Kind     Kind `json:"kind"`
	Page     int  `json:"page,omitempty"`
	Active   bool `json:"active"`
	Disabled bool `json:"disabled"`
}

// Label is the text shown on the control.
func (b Button) Label() string {
	switch b.Kind {
	case Previous:
		return "Previous"
	case Next:
		return "Next"
	case Ellipsis:
		return "..."
	default:
		return strconv.Itoa(b.Page)
	}
}

// Target is the value a host puts in the control's data attribute so a single
// delegated handler can route clicks back to GoTo. Ellipsis controls have none.
func (b Button) Target() string {
	switch b.Kind {
	case Previous:
		return "prev"
	case Next:
		return "next"
	case PageNumber:
		return strconv.Itoa(b.Page)
	default:
		return ""
	}
}

// Target is a navigation request.
type Target struct {
	Kind Kind
	Page int
}

var (
	PrevTarget = Target{Kind: Previous}
	NextTarget = Target{Kind: Next}
)

// PageTarget requests an explicit page.
func PageTarget(n int) Target {
	return Target{Kind: PageNumber, Page: n}
}

// ParseTarget reads a data attribute produced by Button.Target.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prev", "previous":
		return PrevTarget, nil
	case "next":
		return NextTarget, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Target{}, fmt.Errorf("invalid page target %q: %w", s, err)
	}
	return PageTarget(n), nil
}

// Window computes the controls for current out of total pages: Previous,
// the visible page numbers with ellipses over the gaps, and Next. When empty
// is set the single page control is shown disabled.
func Window(current, total int, empty bool) []Button {
	if total < 1 {
		total = 1
	}
	current = clamp(current, 1, total)

	buttons := make([]Button, 0, maxFullWindow+2)
	prev := Button{Kind: Previous, Disabled: current == 1}
	if !prev.Disabled {
		prev.Page = current - 1
	}
	buttons = append(buttons, prev)

	page := func(n int) Button {
		return Button{Kind: PageNumber, Page: n, Active: n == current, Disabled: empty}
	}

	if total <= maxFullWindow {
		for n := 1; n <= total; n++ {
			buttons = append(buttons, page(n))
		}
	} else {
		buttons = append(buttons, page(1))
		if current-2 > 1 {
			buttons = append(buttons, Button{Kind: Ellipsis, Disabled: true})
		}
		for n := max(current-1, 2); n <= min(current+1, total-1); n++ {
			buttons = append(buttons, page(n))
		}
		if current+2 < total {
			buttons = append(buttons, Button{Kind: Ellipsis, Disabled: true})
		}
		buttons = append(buttons, page(total))
	}

	next := Button{Kind: Next, Disabled: current == total}
	if !next.Disabled {
		next.Page = current + 1
	}
	return append(buttons, next)
}

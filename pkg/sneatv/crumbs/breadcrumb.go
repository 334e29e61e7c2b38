package crumbs

import "github.com/gdamore/tcell/v2"

type Breadcrumb interface {
	GetTitle() string
	SetTitle(string) Breadcrumb
	SetColor(color tcell.Color) Breadcrumb
	GetColor() tcell.Color
	// Target is the location the crumb stands for, e.g. a store path.
	Target() string
	Action() error
}

type breadcrumb struct {
	title  string
	target string
	color  tcell.Color
	action func() error
}

func (b *breadcrumb) GetTitle() string {
	return b.title
}

func (b *breadcrumb) GetColor() tcell.Color {
	return b.color
}

func (b *breadcrumb) SetTitle(title string) Breadcrumb {
	b.title = title
	return b
}

func (b *breadcrumb) SetColor(color tcell.Color) Breadcrumb {
	b.color = color
	return b
}

func (b *breadcrumb) Target() string {
	return b.target
}

func (b *breadcrumb) Action() error {
	if b.action == nil {
		return nil
	}
	return b.action()
}

func NewBreadcrumb(title string, action func() error) Breadcrumb {
	return &breadcrumb{title: title, action: action}
}

// NewTargetBreadcrumb creates a crumb that remembers the location it opens.
func NewTargetBreadcrumb(title, target string, action func() error) Breadcrumb {
	return &breadcrumb{title: title, target: target, action: action}
}

package components

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const subtitleText = "Set your target budget below!"

// Header greets the user above the category table.
type Header struct {
	container *fyne.Container
	greeting  *widget.RichText
	subtitle  *widget.Label
}

func NewHeader(userName string) *Header {
	h := &Header{}
	h.greeting = widget.NewRichText(&widget.TextSegment{
		Text:  Greeting(userName),
		Style: widget.RichTextStyleHeading,
	})
	h.subtitle = widget.NewLabel(subtitleText)
	h.container = container.NewVBox(h.greeting, h.subtitle)
	return h
}

// Greeting renders the header line for the configured user name.
func Greeting(userName string) string {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		userName = "there"
	}
	return fmt.Sprintf("Hey %s!", userName)
}

func (h *Header) GetContainer() *fyne.Container {
	return h.container
}

func (h *Header) GreetingText() string {
	return h.greeting.String()
}

// Package ui holds the layout vocabulary the bars and popups share:
// sizing constants and the embeddable Base model.
package ui

const (
	// PanelOverhead is the vertical chrome of a bordered panel with a
	// header and separator line. Lists subtract it to size their rows.
	PanelOverhead = 4

	// BarMargin is the number of rows kept free beneath a bottom-anchored bar.
	BarMargin = 1

	// MinBarWidth is the narrowest host width a bar will render into.
	MinBarWidth = 20
)

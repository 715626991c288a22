package notification

// Names of the two standard layers, used wherever a controller instance
// needs a label (history rows, logs).
const (
	LayerMain  = "main"
	LayerModal = "modal"
)

// Layers holds the two standard controller instances. Main serves the base
// presentation layer; Modal serves content presented above it. A modal
// sheet composits over the base layer's overlay, so notifications shown
// while the sheet is open need their own controller to be visible at all.
//
// Construct once and pass the instances down explicitly; there are no
// package-level controllers.
type Layers struct {
	Main  *Controller
	Modal *Controller
}

// NewLayers creates the pair of standard controllers.
func NewLayers() *Layers {
	return &Layers{
		Main:  NewController(),
		Modal: NewController(),
	}
}

// Close closes both controllers.
func (l *Layers) Close() {
	l.Main.Close()
	l.Modal.Close()
}

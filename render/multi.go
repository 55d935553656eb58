package render

import "github.com/lixenwraith/gasup/engine"

// Multi draws each frame with every renderer in order
type Multi []engine.Renderer

func (m Multi) Render(f *engine.Frame) {
	for _, r := range m {
		r.Render(f)
	}
}

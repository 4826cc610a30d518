package events

import "github.com/atomicstack/popup-settings/internal/logging"

type SectionTracer struct{}

var Section = SectionTracer{}

func (SectionTracer) Current(header string, current bool) {
	logging.Trace("section.current", map[string]interface{}{"section": header, "current": current})
}

func (SectionTracer) Hover(header string, hovered bool) {
	logging.Trace("section.hover", map[string]interface{}{"section": header, "hovered": hovered})
}

// ClickGated records a click swallowed by a section that is not current.
func (SectionTracer) ClickGated(header string) {
	logging.Trace("section.click-gated", map[string]interface{}{"section": header})
}

func (SectionTracer) ControlActivated(header, label, value string) {
	logging.Trace("section.control", map[string]interface{}{"section": header, "control": label, "value": value})
}

func (SectionTracer) Fade(header string, headerOpacity, bodyOpacity float64) {
	logging.Trace("section.fade", map[string]interface{}{
		"section": header,
		"header":  headerOpacity,
		"body":    bodyOpacity,
	})
}

package events

import "github.com/atomicstack/popup-settings/internal/logging"

type PanelTracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	Panel   = PanelTracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (PanelTracer) ScrollTo(header string, offset int) {
	logging.Trace("panel.scroll-to", map[string]interface{}{"section": header, "offset": offset})
}

func (PanelTracer) ScrollNoOp(header string) {
	logging.Trace("panel.scroll-noop", map[string]interface{}{"section": header})
}

func (PanelTracer) Wheel(offset int, current string) {
	logging.Trace("panel.wheel", map[string]interface{}{"offset": offset, "current": current})
}

func (FilterTracer) Applied(query string, visible int) {
	logging.Trace("filter.apply", map[string]interface{}{"filter": query, "visible": visible})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) WordBackspace(filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) CursorWord(pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) Append(filter string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}

package sections

import (
	"github.com/atomicstack/popup-settings/internal/controls"
	"github.com/atomicstack/popup-settings/internal/section"
	"github.com/atomicstack/popup-settings/internal/settings"
	"github.com/atomicstack/popup-settings/internal/state"
)

type Graphics struct{}

func (Graphics) Header() string { return "Graphics" }

func (Graphics) CreateIcon() section.Icon { return section.Icon{Glyph: "▣"} }

func (Graphics) Table() string { return "graphics" }

func (g Graphics) FilterTerms() []string {
	return []string{g.Header(), "video", "display"}
}

func (g Graphics) Controls(store state.SettingsStore) []section.Control {
	key := func(name string) string { return settings.Key(g.Table(), name) }
	return []section.Control{
		controls.NewEnum(store, key("renderer"), "Renderer", []string{"opengl", "vulkan", "metal", "direct3d11"}, "opengl", "backend"),
		controls.NewEnum(store, key("frame_limiter"), "Frame limiter", []string{"vsync", "2x", "4x", "8x", "unlimited"}, "2x", "fps"),
		controls.NewEnum(store, key("window_mode"), "Window mode", []string{"windowed", "borderless", "fullscreen"}, "borderless", "screen"),
		controls.NewCheckbox(store, key("show_fps"), "Show FPS counter", false, "fps"),
		controls.NewSlider(store, key("ui_scale"), "Interface scale", 80, 160, 5, 100, "%", "size", "zoom"),
	}
}

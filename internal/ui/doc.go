// Package ui contains the Bubble Tea program that renders the settings panel.
// The Model is the owning panel of every section: it holds the single
// current-section binding and is the only code that writes it.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (keys, mouse, window size, fade frames, backend reloads, and
//     command results).
//   - Keyboard intents go to the current section only; sections refuse input
//     while they are not current. Printable keys edit the filter query, and
//     every edit re-runs the filter pass over all sections (input.go).
//   - Mouse rows are hit-tested through bubblezone marks placed during View
//     and mapped back to sections with the layout bounds (mouse.go). A click
//     on a section that is not current asks the panel to select it instead of
//     reaching its controls.
//
// Selection and fades:
//   - ScrollTo replaces the binding's value; every section observes it and
//     retargets its header and body fades synchronously, before the next
//     message is handled.
//   - While any fade is in flight the model keeps a frame tick scheduled so
//     the view is redrawn at roughly 60 fps (animation.go).
//
// Backend interactions:
//   - A backend.Watcher streams settings file reloads; the dispatcher applies
//     them to the store unless there are unsaved edits.
//   - Save and clipboard actions run through the command bus in
//     internal/ui/command and report back with result messages.
package ui

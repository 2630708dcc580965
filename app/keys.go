package app

import (
	"linviz/hal"
	"linviz/internal/controller"
)

// Held arrow keys repeat after repeatDelay, then every repeatEvery (ms ticks).
const (
	repeatDelay = 400
	repeatEvery = 80
)

// Keys, controls focus:
//
//	a/A b/B, ←/→ ↓/↑   nudge a, b by one step
//	1 2 r              presets
//	v                  visualize table rows
//	c                  clear table
//	tab, x             edit probe x (enter probes, esc/tab returns)
//	i j k l            orbit camera, +/- pgup/pgdown zoom, home resets
//	w                  wireframe markers
//	p                  hide/show panel
//	q, esc             quit
func (a *App) handleKey(ev hal.KeyEvent) {
	if ev.Code == hal.KeyUnknown && ev.Rune != 0 {
		if ev.Press {
			a.handleRune(ev.Rune)
		}
		return
	}
	if !ev.Press {
		delete(a.held, ev.Code)
		return
	}
	if a.focus == focusField {
		a.handleFieldKey(ev.Code)
		return
	}
	if a.codeAction(ev.Code) {
		a.held[ev.Code] = a.now + repeatDelay
	}
}

func (a *App) handleFieldKey(code hal.KeyCode) {
	switch code {
	case hal.KeyEnter:
		a.probe()
	case hal.KeyBackspace, hal.KeyDelete:
		a.field.Backspace()
	case hal.KeyEscape, hal.KeyTab:
		a.focus = focusControls
	}
	a.dirty = true
}

// codeAction runs the action bound to code and reports whether it repeats
// while held.
func (a *App) codeAction(code hal.KeyCode) bool {
	switch code {
	case hal.KeyLeft:
		a.nudgeA(-1)
		return true
	case hal.KeyRight:
		a.nudgeA(1)
		return true
	case hal.KeyDown:
		a.nudgeB(-1)
		return true
	case hal.KeyUp:
		a.nudgeB(1)
		return true
	case hal.KeyPageUp:
		a.view.Zoom(-1)
		a.dirty = true
		return true
	case hal.KeyPageDown:
		a.view.Zoom(1)
		a.dirty = true
		return true
	case hal.KeyHome:
		a.view.ResetCamera()
		a.dirty = true
	case hal.KeyTab:
		a.focus = focusField
		a.dirty = true
	case hal.KeyEnter:
		a.probe()
	case hal.KeyEscape:
		a.quit = true
	}
	return false
}

func (a *App) repeatHeld() {
	for code, next := range a.held {
		if a.now < next {
			continue
		}
		a.codeAction(code)
		a.held[code] = a.now + repeatEvery
	}
}

func (a *App) handleRune(r rune) {
	if a.focus == focusField {
		if a.field.Insert(r) {
			a.dirty = true
		}
		return
	}
	if name, ok := a.presetKeys[r]; ok {
		a.dispatch(controller.LoadPreset{Preset: name})
		return
	}
	switch r {
	case 'a':
		a.nudgeA(-1)
	case 'A':
		a.nudgeA(1)
	case 'b':
		a.nudgeB(-1)
	case 'B':
		a.nudgeB(1)
	case 'v':
		a.dispatch(controller.VisualizePoints{})
	case 'c':
		a.dispatch(controller.ClearHistory{})
	case 'x':
		a.focus = focusField
	case 'j':
		a.view.Orbit(-1, 0)
	case 'l':
		a.view.Orbit(1, 0)
	case 'i':
		a.view.Orbit(0, 1)
	case 'k':
		a.view.Orbit(0, -1)
	case '+', '=':
		a.view.Zoom(-1)
	case '-':
		a.view.Zoom(1)
	case 'w':
		a.view.ToggleWireframe()
	case 'p':
		a.view.TogglePanel()
	case 'q':
		a.quit = true
	default:
		return
	}
	a.dirty = true
}

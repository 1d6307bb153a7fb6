package system

import (
	"strings"

	"minilcd/internal/gfx"
	"minilcd/internal/logx"
)

type settingsState uint8

const (
	stateMainMenu settingsState = iota
	stateDisplayPicker
	stateFunctionPicker
	stateVerbosityPicker
)

// Main menu rows.
const (
	itemDisplayFunctions = iota
	itemLoggerVerbosity
	itemReboot
	itemCancel
)

var mainMenuItems = []string{"Display functions", "Logger verbosity", "Reboot", "Cancel"}

// settingsFlow is the Settings function. It remembers which function it
// replaced so closing the menu can put it back.
type settingsFlow struct {
	r        *Router
	state    settingsState
	slot     int
	last     Function
	selected int
}

func (s *settingsFlow) open(slot int, replaced Function) {
	s.slot = slot
	s.last = replaced
	s.selected = -1
	s.state = stateMainMenu
}

func (s *settingsFlow) Attach(sf gfx.Surface) {
	s.r.menu.Attach(sf)
	s.show(stateMainMenu)
}

func (s *settingsFlow) Detach()            { s.r.menu.Detach() }
func (s *settingsFlow) Process(now uint64) {}

func (s *settingsFlow) show(state settingsState) {
	s.state = state
	m := s.r.menu
	m.SetOnSelect(s)
	switch state {
	case stateMainMenu:
		m.SetItems(mainMenuItems)
	case stateDisplayPicker:
		m.SetItems(slotNames)
	case stateFunctionPicker:
		names := make([]string, 0, functionCount)
		for _, f := range AllFunctions() {
			names = append(names, f.String())
		}
		m.SetItems(names)
	case stateVerbosityPicker:
		names := make([]string, 0, len(logx.Levels))
		for _, l := range logx.Levels {
			names = append(names, levelLabel(l))
		}
		m.SetItems(names)
	}
}

// Select handles a menu click in the current state.
func (s *settingsFlow) Select(idx int) {
	switch s.state {
	case stateMainMenu:
		switch idx {
		case itemDisplayFunctions:
			s.show(stateDisplayPicker)
		case itemLoggerVerbosity:
			s.show(stateVerbosityPicker)
		case itemReboot:
			s.r.log.Warnf("reboot requested from settings")
			if s.r.reboot != nil {
				s.r.reboot.Reboot()
			}
		default:
			s.close()
		}

	case stateDisplayPicker:
		if idx < 0 || idx >= SlotCount {
			s.r.log.Errorf("invalid display index: %d", idx)
			return
		}
		s.selected = idx
		s.show(stateFunctionPicker)

	case stateFunctionPicker:
		fn := Function(idx)
		if idx < 0 || !fn.Valid() {
			s.r.log.Errorf("invalid function index: %d", idx)
			return
		}
		if s.last == fn {
			s.last = None
		}
		target := s.selected
		s.close()
		s.r.SetDisplayFunction(target, fn)

	case stateVerbosityPicker:
		if idx < 0 || idx >= len(logx.Levels) {
			s.r.log.Errorf("invalid verbosity index: %d", idx)
			return
		}
		s.r.log.SetLevel(logx.Levels[idx])
		s.close()
	}
}

// back steps out of a picker, or closes the menu from the main menu.
func (s *settingsFlow) back() {
	if _, ok := s.r.SettingsOpen(); !ok {
		return
	}
	if s.state == stateMainMenu {
		s.close()
		return
	}
	s.selected = -1
	s.show(stateMainMenu)
}

// close puts the replaced function back on the settings slot.
func (s *settingsFlow) close() {
	slot, last := s.slot, s.last
	s.last = None
	s.slot = -1
	s.selected = -1
	if slot < 0 {
		return
	}
	s.r.SetDisplayFunction(slot, last)
}

func levelLabel(l logx.Level) string {
	name := l.String()
	return name[:1] + strings.ToLower(name[1:])
}

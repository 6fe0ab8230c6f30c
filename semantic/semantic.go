// SPDX-License-Identifier: Unlicense OR MIT

// Package semantic describes the semantic classes of the library's
// components and their accessibility roles on each render target.
package semantic

import "bridgeui.org/role"

// ClassOp is the semantic class of a component.
type ClassOp uint8

const (
	Unknown ClassOp = iota
	Button
	CheckBox
	Editor
	RadioButton
	Switch
	Slider
	Tab
	List
	Dialog
)

// classDOM assigns the DOM role of classes native to the web target.
var classDOM = map[ClassOp]role.DOMRole{
	Button:      role.DOMButton,
	CheckBox:    role.DOMCheckBox,
	Editor:      role.DOMTextBox,
	RadioButton: role.DOMRadio,
	Slider:      role.DOMSlider,
	Tab:         role.DOMTab,
	List:        role.DOMList,
	Dialog:      role.DOMDialog,
}

// classMobile assigns the mobile role of classes with no DOM-native
// role. Switch exists only in the mobile vocabulary.
var classMobile = map[ClassOp]role.MobileRole{
	Switch: role.MobileSwitch,
}

// DOMRole returns the ARIA role announced for the class on the web
// target. Classes native to the mobile vocabulary are translated
// through the role bridge, so the two projections cannot disagree
// with it.
func (c ClassOp) DOMRole() (role.DOMRole, bool) {
	if d, ok := classDOM[c]; ok {
		return d, true
	}
	if m, ok := classMobile[c]; ok {
		return role.MobileToDOM(m)
	}
	return "", false
}

// MobileRole returns the accessibility role announced for the class on
// the mobile target, translated through the role bridge for classes
// native to the DOM vocabulary.
func (c ClassOp) MobileRole() (role.MobileRole, bool) {
	if m, ok := classMobile[c]; ok {
		return m, true
	}
	if d, ok := classDOM[c]; ok {
		return role.DOMToMobile(d)
	}
	return "", false
}

func (c ClassOp) String() string {
	switch c {
	case Unknown:
		return "Unknown"
	case Button:
		return "Button"
	case CheckBox:
		return "CheckBox"
	case Editor:
		return "Editor"
	case RadioButton:
		return "RadioButton"
	case Switch:
		return "Switch"
	case Slider:
		return "Slider"
	case Tab:
		return "Tab"
	case List:
		return "List"
	case Dialog:
		return "Dialog"
	default:
		panic("unexpected ClassOp value")
	}
}

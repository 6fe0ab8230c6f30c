// SPDX-License-Identifier: Unlicense OR MIT

/*
Package icon maps the library's semantic icon names onto each render
target's icon resources: IconVG data for targets that rasterize their
own icons, and the icon-font glyph identifier for the mobile target.

The name set is closed, like the role vocabularies in package role.
Unknown names report a not-ok result rather than an error.
*/
package icon

import "golang.org/x/exp/shiny/materialdesign/icons"

// Name is a semantic icon identifier.
type Name string

const (
	Check   Name = "check"
	Close   Name = "close"
	Menu    Name = "menu"
	Search  Name = "search"
	Back    Name = "back"
	Forward Name = "forward"
	Add     Name = "add"
	Delete  Name = "delete"
	Edit    Name = "edit"
	Home    Name = "home"
	Info    Name = "info"
	Warning Name = "warning"
)

// data holds the IconVG payload for every icon name.
var data = map[Name][]byte{
	Check:   icons.ActionDone,
	Close:   icons.NavigationClose,
	Menu:    icons.NavigationMenu,
	Search:  icons.ActionSearch,
	Back:    icons.NavigationArrowBack,
	Forward: icons.NavigationArrowForward,
	Add:     icons.ContentAdd,
	Delete:  icons.ActionDelete,
	Edit:    icons.ContentCreate,
	Home:    icons.ActionHome,
	Info:    icons.ActionInfo,
	Warning: icons.AlertWarning,
}

// glyphs holds the mobile target's icon-font glyph for every icon name.
var glyphs = map[Name]string{
	Check:   "done",
	Close:   "close",
	Menu:    "menu",
	Search:  "search",
	Back:    "arrow-back",
	Forward: "arrow-forward",
	Add:     "add",
	Delete:  "delete",
	Edit:    "create",
	Home:    "home",
	Info:    "info",
	Warning: "warning",
}

// Data returns the IconVG data for n. The second result is false for
// names outside the icon vocabulary.
func Data(n Name) ([]byte, bool) {
	d, ok := data[n]
	return d, ok
}

// Glyph returns the mobile icon-font glyph identifier for n.
func Glyph(n Name) (string, bool) {
	g, ok := glyphs[n]
	return g, ok
}

// Valid reports whether n is a member of the icon vocabulary.
func Valid(n Name) bool {
	_, ok := data[n]
	return ok
}

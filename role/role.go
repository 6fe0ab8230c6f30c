// SPDX-License-Identifier: Unlicense OR MIT

/*
Package role bridges the two accessibility role vocabularies used by the
library's render targets: ARIA roles on the web target and the mobile
accessibility roles on the mobile target.

Both vocabularies are closed. The mapping between them is lossy in both
directions: several DOM roles collapse onto one mobile role, landmark
roles have no mobile counterpart at all, and some mobile roles have no
DOM counterpart. Absent counterparts are reported through the comma-ok
result, never through an error.

The vocabularies overlap on common role names such as "button" and
"checkbox". Convert resolves the ambiguity by checking the DOM
vocabulary first; callers that need the other reading can call
MobileToDOM directly.
*/
package role

// DOMRole is an ARIA role identifier from the closed set
// used by the web render target.
type DOMRole string

// MobileRole is an accessibility role identifier from the closed set
// used by the mobile render target.
type MobileRole string

const (
	DOMButton        DOMRole = "button"
	DOMLink          DOMRole = "link"
	DOMHeading       DOMRole = "heading"
	DOMText          DOMRole = "text"
	DOMImage         DOMRole = "image"
	DOMImg           DOMRole = "img"
	DOMList          DOMRole = "list"
	DOMListItem      DOMRole = "listitem"
	DOMCheckBox      DOMRole = "checkbox"
	DOMRadio         DOMRole = "radio"
	DOMTextBox       DOMRole = "textbox"
	DOMSearchBox     DOMRole = "searchbox"
	DOMSlider        DOMRole = "slider"
	DOMProgressBar   DOMRole = "progressbar"
	DOMTab           DOMRole = "tab"
	DOMTabList       DOMRole = "tablist"
	DOMTabPanel      DOMRole = "tabpanel"
	DOMMenu          DOMRole = "menu"
	DOMMenuItem      DOMRole = "menuitem"
	DOMMenuBar       DOMRole = "menubar"
	DOMDialog        DOMRole = "dialog"
	DOMAlert         DOMRole = "alert"
	DOMAlertDialog   DOMRole = "alertdialog"
	DOMBanner        DOMRole = "banner"
	DOMNavigation    DOMRole = "navigation"
	DOMMain          DOMRole = "main"
	DOMContentInfo   DOMRole = "contentinfo"
	DOMComplementary DOMRole = "complementary"
	DOMRegion        DOMRole = "region"
	DOMArticle       DOMRole = "article"
	DOMSection       DOMRole = "section"
	DOMForm          DOMRole = "form"
	DOMGroup         DOMRole = "group"
	DOMPresentation  DOMRole = "presentation"
	DOMNone          DOMRole = "none"
)

const (
	MobileNone        MobileRole = "none"
	MobileButton      MobileRole = "button"
	MobileLink        MobileRole = "link"
	MobileSearch      MobileRole = "search"
	MobileImage       MobileRole = "image"
	MobileKeyboardKey MobileRole = "keyboardkey"
	MobileText        MobileRole = "text"
	MobileAdjustable  MobileRole = "adjustable"
	MobileImageButton MobileRole = "imagebutton"
	MobileHeader      MobileRole = "header"
	MobileSummary     MobileRole = "summary"
	MobileAlert       MobileRole = "alert"
	MobileCheckBox    MobileRole = "checkbox"
	MobileComboBox    MobileRole = "combobox"
	MobileMenu        MobileRole = "menu"
	MobileMenuBar     MobileRole = "menubar"
	MobileMenuItem    MobileRole = "menuitem"
	MobileProgressBar MobileRole = "progressbar"
	MobileRadio       MobileRole = "radio"
	MobileRadioGroup  MobileRole = "radiogroup"
	MobileScrollBar   MobileRole = "scrollbar"
	MobileSpinButton  MobileRole = "spinbutton"
	MobileSwitch      MobileRole = "switch"
	MobileTab         MobileRole = "tab"
	MobileTabList     MobileRole = "tablist"
	MobileTimer       MobileRole = "timer"
	MobileToolBar     MobileRole = "toolbar"
)

// Source identifies the vocabulary a role string was classified into.
type Source uint8

const (
	// SourceUnknown is the classification for strings that are members
	// of neither vocabulary.
	SourceUnknown Source = iota
	// SourceDOM classifies a member of the DOM vocabulary.
	SourceDOM
	// SourceMobile classifies a member of the mobile vocabulary.
	SourceMobile
)

// Conversion is the result of classifying a role string and mapping it
// into both vocabularies. A role with no counterpart in a vocabulary
// leaves the corresponding field empty.
type Conversion struct {
	DOM    DOMRole
	Mobile MobileRole
	Source Source
}

// domToMobile contains every DOM role. The empty value marks roles,
// landmark roles in particular, with no mobile counterpart.
var domToMobile = map[DOMRole]MobileRole{
	DOMButton:        MobileButton,
	DOMLink:          MobileLink,
	DOMHeading:       MobileHeader,
	DOMText:          MobileText,
	DOMImage:         MobileImage,
	DOMImg:           MobileImage,
	DOMList:          "",
	DOMListItem:      "",
	DOMCheckBox:      MobileCheckBox,
	DOMRadio:         MobileRadio,
	DOMTextBox:       "",
	DOMSearchBox:     MobileSearch,
	DOMSlider:        MobileAdjustable,
	DOMProgressBar:   MobileProgressBar,
	DOMTab:           MobileTab,
	DOMTabList:       MobileTabList,
	DOMTabPanel:      "",
	DOMMenu:          MobileMenu,
	DOMMenuItem:      MobileMenuItem,
	DOMMenuBar:       MobileMenuBar,
	DOMDialog:        MobileAlert,
	DOMAlert:         MobileAlert,
	DOMAlertDialog:   MobileAlert,
	DOMBanner:        "",
	DOMNavigation:    "",
	DOMMain:          "",
	DOMContentInfo:   "",
	DOMComplementary: "",
	DOMRegion:        "",
	DOMArticle:       "",
	DOMSection:       "",
	DOMForm:          "",
	DOMGroup:         MobileRadioGroup,
	DOMPresentation:  MobileNone,
	DOMNone:          MobileNone,
}

// mobileToDOM contains every mobile role. It is hand-curated, not the
// inverse of domToMobile: "switch" and "imagebutton" map to DOM roles
// that do not map back to them.
var mobileToDOM = map[MobileRole]DOMRole{
	MobileNone:        DOMNone,
	MobileButton:      DOMButton,
	MobileLink:        DOMLink,
	MobileSearch:      DOMSearchBox,
	MobileImage:       DOMImage,
	MobileKeyboardKey: "",
	MobileText:        DOMText,
	MobileAdjustable:  DOMSlider,
	MobileImageButton: DOMButton,
	MobileHeader:      DOMHeading,
	MobileSummary:     "",
	MobileAlert:       DOMAlert,
	MobileCheckBox:    DOMCheckBox,
	MobileComboBox:    "",
	MobileMenu:        DOMMenu,
	MobileMenuBar:     DOMMenuBar,
	MobileMenuItem:    DOMMenuItem,
	MobileProgressBar: DOMProgressBar,
	MobileRadio:       DOMRadio,
	MobileRadioGroup:  DOMGroup,
	MobileScrollBar:   "",
	MobileSpinButton:  "",
	MobileSwitch:      DOMCheckBox,
	MobileTab:         DOMTab,
	MobileTabList:     DOMTabList,
	MobileTimer:       "",
	MobileToolBar:     "",
}

// DOMToMobile returns the mobile counterpart of a DOM role. The second
// result is false when the role has no counterpart, or when r is not a
// member of the DOM vocabulary at all.
func DOMToMobile(r DOMRole) (MobileRole, bool) {
	m := domToMobile[r]
	return m, m != ""
}

// MobileToDOM returns the DOM counterpart of a mobile role. The second
// result is false when the role has no counterpart, or when r is not a
// member of the mobile vocabulary at all.
func MobileToDOM(r MobileRole) (DOMRole, bool) {
	d := mobileToDOM[r]
	return d, d != ""
}

// IsDOMRole reports whether candidate is a member of the DOM role
// vocabulary. The match is exact; no trimming or case folding.
func IsDOMRole(candidate string) bool {
	_, ok := domToMobile[DOMRole(candidate)]
	return ok
}

// IsMobileRole reports whether candidate is a member of the mobile role
// vocabulary. The match is exact; no trimming or case folding.
func IsMobileRole(candidate string) bool {
	_, ok := mobileToDOM[MobileRole(candidate)]
	return ok
}

// Convert classifies candidate and maps it into both vocabularies.
// Role names valid in both vocabularies classify as DOM; callers
// depend on this precedence for the overlapping names.
func Convert(candidate string) Conversion {
	if IsDOMRole(candidate) {
		d := DOMRole(candidate)
		m, _ := DOMToMobile(d)
		return Conversion{DOM: d, Mobile: m, Source: SourceDOM}
	}
	if IsMobileRole(candidate) {
		m := MobileRole(candidate)
		d, _ := MobileToDOM(m)
		return Conversion{DOM: d, Mobile: m, Source: SourceMobile}
	}
	return Conversion{Source: SourceUnknown}
}

func (s Source) String() string {
	switch s {
	case SourceUnknown:
		return "unknown"
	case SourceDOM:
		return "dom"
	case SourceMobile:
		return "mobile"
	default:
		panic("unexpected Source value")
	}
}

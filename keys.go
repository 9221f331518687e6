package guihost

import (
	"runtime"
	"unicode"

	"github.com/go-theft-auto/guihost/imgui"
)

// KeyCode is a host virtual key code. Backends map their native codes to it.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyInsert
	KeyHome
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyPageUp
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyBack
	KeyReturn
	KeyTab
	KeySpace
	KeyLShift
	KeyRShift
	KeyLControl
	KeyRControl
	KeyLAlt
	KeyRAlt
	KeyLWin
	KeyRWin
)

// KeyMods is the set of host modifier keys held.
type KeyMods uint8

const (
	ModShift KeyMods = 1 << iota
	ModCtrl
	ModAlt
	ModLogo
)

// Has reports whether any of the given modifiers are held.
func (m KeyMods) Has(mods KeyMods) bool {
	return m&mods != 0
}

// MouseButton is a host mouse button. Values above MouseMiddle are extra buttons.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

var keyMap = map[KeyCode]imgui.Key{
	KeyEscape:   imgui.KeyEscape,
	KeyInsert:   imgui.KeyInsert,
	KeyHome:     imgui.KeyHome,
	KeyDelete:   imgui.KeyDelete,
	KeyEnd:      imgui.KeyEnd,
	KeyPageDown: imgui.KeyPageDown,
	KeyPageUp:   imgui.KeyPageUp,
	KeyLeft:     imgui.KeyArrowLeft,
	KeyUp:       imgui.KeyArrowUp,
	KeyRight:    imgui.KeyArrowRight,
	KeyDown:     imgui.KeyArrowDown,
	KeyBack:     imgui.KeyBackspace,
	KeyReturn:   imgui.KeyEnter,
	KeyTab:      imgui.KeyTab,
	KeySpace:    imgui.KeySpace,

	KeyA: imgui.KeyA,
	KeyC: imgui.KeyC,
	KeyK: imgui.KeyK,
	KeyU: imgui.KeyU,
	KeyV: imgui.KeyV,
	KeyW: imgui.KeyW,
	KeyX: imgui.KeyX,
	KeyY: imgui.KeyY,
	KeyZ: imgui.KeyZ,

	KeyF1:  imgui.KeyF1,
	KeyF2:  imgui.KeyF2,
	KeyF3:  imgui.KeyF3,
	KeyF4:  imgui.KeyF4,
	KeyF5:  imgui.KeyF5,
	KeyF6:  imgui.KeyF6,
	KeyF7:  imgui.KeyF7,
	KeyF8:  imgui.KeyF8,
	KeyF9:  imgui.KeyF9,
	KeyF10: imgui.KeyF10,
	KeyF11: imgui.KeyF11,
	KeyF12: imgui.KeyF12,
}

// TranslateKey maps a host key to the toolkit's vocabulary. Keys the toolkit
// has no name for return false and must be dropped.
func TranslateKey(k KeyCode) (imgui.Key, bool) {
	key, ok := keyMap[k]
	return key, ok
}

// TranslateModifiers maps host modifiers. Command is Logo on macOS and
// Ctrl everywhere else.
func TranslateModifiers(m KeyMods) imgui.Modifiers {
	return translateModifiers(m, runtime.GOOS == "darwin")
}

func translateModifiers(m KeyMods, mac bool) imgui.Modifiers {
	mods := imgui.Modifiers{
		Alt:   m.Has(ModAlt),
		Ctrl:  m.Has(ModCtrl),
		Shift: m.Has(ModShift),
	}
	if mac {
		mods.MacCmd = m.Has(ModLogo)
		mods.Command = m.Has(ModLogo)
	} else {
		mods.Command = m.Has(ModCtrl)
	}
	return mods
}

// TranslateMouseButton maps the three standard buttons. Extra buttons
// return false and must be dropped.
func TranslateMouseButton(b MouseButton) (imgui.PointerButton, bool) {
	switch b {
	case MouseLeft:
		return imgui.PointerPrimary, true
	case MouseRight:
		return imgui.PointerSecondary, true
	case MouseMiddle:
		return imgui.PointerMiddle, true
	default:
		return 0, false
	}
}

// IsPrintable reports whether r is typed text: not a control character and
// not in a Unicode private use area.
func IsPrintable(r rune) bool {
	privateUse := (r >= 0xe000 && r <= 0xf8ff) ||
		(r >= 0xf0000 && r <= 0xffffd) ||
		(r >= 0x100000 && r <= 0x10fffd)
	return !privateUse && !unicode.IsControl(r)
}

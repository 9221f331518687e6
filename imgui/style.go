package imgui

// Spacing constants for consistent layout.
const (
	SpaceXS float32 = 2
	SpaceSM float32 = 4
	SpaceMD float32 = 8
	SpaceLG float32 = 12
)

// Style defines the visual appearance of widgets.
type Style struct {
	// Text
	TextColor         Color32
	TextDisabledColor Color32

	// Windows
	WindowColor       Color32
	WindowBorderColor Color32
	TitleBarColor     Color32
	TitleTextColor    Color32

	// Buttons
	ButtonColor        Color32
	ButtonHoveredColor Color32
	ButtonActiveColor  Color32

	// Inputs
	InputBgColor        Color32
	InputFocusedBgColor Color32
	CheckColor          Color32

	// Sliders
	SliderTrackColor Color32
	SliderFillColor  Color32
	SliderGrabColor  Color32

	SeparatorColor Color32

	// FontScale multiplies the 8pt bitmap font.
	FontScale float32

	WindowPadding float32
	ItemSpacing   float32
	ButtonPadding float32
	DefaultWidth  float32
}

// DefaultStyle returns the default dark style.
func DefaultStyle() Style {
	return Style{
		TextColor:         RGBA(230, 230, 230, 255),
		TextDisabledColor: RGBA(128, 128, 128, 255),

		WindowColor:       RGBA(27, 27, 31, 240),
		WindowBorderColor: RGBA(70, 70, 80, 255),
		TitleBarColor:     RGBA(41, 74, 122, 255),
		TitleTextColor:    ColorWhite,

		ButtonColor:        RGBA(51, 63, 80, 255),
		ButtonHoveredColor: RGBA(66, 150, 250, 255),
		ButtonActiveColor:  RGBA(15, 135, 250, 255),

		InputBgColor:        RGBA(40, 40, 46, 255),
		InputFocusedBgColor: RGBA(60, 60, 70, 255),
		CheckColor:          RGBA(66, 150, 250, 255),

		SliderTrackColor: RGBA(40, 40, 46, 255),
		SliderFillColor:  RGBA(41, 74, 122, 255),
		SliderGrabColor:  RGBA(66, 150, 250, 255),

		SeparatorColor: RGBA(70, 70, 80, 255),

		FontScale:     2,
		WindowPadding: SpaceMD,
		ItemSpacing:   SpaceSM,
		ButtonPadding: SpaceSM,
		DefaultWidth:  280,
	}
}

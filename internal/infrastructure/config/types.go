package config

// DisplayConfig is the root config for display.json
type DisplayConfig struct {
	ScreenWidth  int     `json:"screenWidth"`
	ScreenHeight int     `json:"screenHeight"`
	Title        string  `json:"title"`
	Framerate    int     `json:"framerate"`
	Resizable    bool    `json:"resizable"`
	FixedDT      float32 `json:"fixedDT"` // 0 = measured frame time
	MaxJumps     int     `json:"maxJumps"`
}

// ScenesConfig is the root config for scenes.json
type ScenesConfig struct {
	Initial string        `json:"initial"`
	Opening OpeningConfig `json:"opening"`
	Menu    MenuConfig    `json:"menu"`
}

// OpeningConfig configures the title fade
type OpeningConfig struct {
	Title         string  `json:"title"`
	FontSize      int     `json:"fontSize"`
	FadeInFrames  int     `json:"fadeInFrames"`
	FadeInPeak    float32 `json:"fadeInPeak"` // alpha the fade-in eases toward; clamped when drawn
	HoldFrames    int     `json:"holdFrames"`
	FadeOutFrames int     `json:"fadeOutFrames"`
	JumpAt        int     `json:"jumpAt"` // frame of the fade-out phase that leaves the scene
	Next          string  `json:"next"`
}

// MenuConfig configures the main menu
type MenuConfig struct {
	Style         string        `json:"style"` // name in styles.yaml
	StartScene    string        `json:"startScene"`
	CurtainHold   int           `json:"curtainHold"`
	CurtainFrames int           `json:"curtainFrames"`
	CurtainRatio  float32       `json:"curtainRatio"`
	Covers        []CoverConfig `json:"covers"`
}

// CoverConfig names an image shown in the menu's cover viewer
type CoverConfig struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

// StyleSheet is the root of styles.yaml
type StyleSheet struct {
	Styles map[string]StyleConfig `yaml:"styles"`
}

// StyleConfig describes a button style. Hover and pressed tiers inherit
// every field they leave out from idle.
type StyleConfig struct {
	Smooth   bool       `yaml:"smooth"`
	Relative bool       `yaml:"relative"`
	Idle     TierConfig `yaml:"idle"`
	Hover    TierConfig `yaml:"hover"`
	Pressed  TierConfig `yaml:"pressed"`
}

// TierConfig is one style tier. Colors are palette names or hex strings;
// position and size are [x, y] pairs.
type TierConfig struct {
	Color      string    `yaml:"color"`
	Background string    `yaml:"background"`
	Position   []float32 `yaml:"position"`
	Size       []float32 `yaml:"size"`
}

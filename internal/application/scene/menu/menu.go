// Package menu is the main screen: a header of buttons over a cover viewer,
// revealed by a curtain that opens once the scene starts.
package menu

import (
	"log"

	"github.com/tanema/gween/ease"

	"github.com/younwookim/starframe/internal/application/scene"
	"github.com/younwookim/starframe/internal/domain/geom"
	"github.com/younwookim/starframe/internal/domain/palette"
	"github.com/younwookim/starframe/internal/domain/widget"
	"github.com/younwookim/starframe/internal/infrastructure/config"
)

// Name is the scene's registry key.
const Name = "Menu"

// Button indices.
const (
	ButtonStart = iota
	ButtonOptions
	ButtonExit
	ButtonLeft
	ButtonRight
	buttonCount
)

// CurtainPhase is where the opening curtain is.
type CurtainPhase int

const (
	CurtainClosed CurtainPhase = iota
	CurtainOpening
	CurtainOpen
)

// Menu shows the header buttons and the cover viewer.
type Menu struct {
	cfg     config.MenuConfig
	buttons [buttonCount]*widget.Button
	book    *widget.CoverBook

	style      *widget.Style
	arrowStyle *widget.Style // style without smoothing

	curtain  CurtainPhase
	frame    int
	curtainH float32 // height of the top half
	curtainY float32 // top edge of the bottom half
}

var _ scene.Scene = (*Menu)(nil)

// New creates the menu. A nil style uses the stock button style.
func New(cfg config.MenuConfig, style *widget.Style) *Menu {
	if style == nil {
		style = widget.DefaultStyle()
	}
	if cfg.CurtainHold <= 0 {
		cfg.CurtainHold = 180
	}
	if cfg.CurtainFrames <= 0 {
		cfg.CurtainFrames = 360
	}
	if cfg.CurtainRatio <= 0 {
		cfg.CurtainRatio = 0.52
	}

	m := &Menu{
		cfg:        cfg,
		book:       widget.NewCoverBook(),
		style:      style,
		arrowStyle: style.Clone().WithSmooth(false),
	}
	m.buttons = [buttonCount]*widget.Button{
		ButtonStart:   widget.NewButton(geom.V(10, 10), geom.V(100, 60), "Start", m.style),
		ButtonOptions: widget.NewButton(geom.V(250, 10), geom.V(100, 60), "Options", m.style),
		ButtonExit:    widget.NewButton(geom.V(540, 10), geom.V(100, 60), "Exit", m.style),
		ButtonLeft:    widget.NewButton(geom.V(0, 240), geom.V(20, 80), "<", m.arrowStyle),
		ButtonRight:   widget.NewButton(geom.V(620, 240), geom.V(20, 80), ">", m.arrowStyle),
	}
	return m
}

func (m *Menu) Name() string {
	return Name
}

// Load closes the curtain, restyles the buttons and loads the configured
// covers. Covers that fail to load are skipped.
func (m *Menu) Load(h scene.Host) {
	m.curtain = CurtainClosed
	m.frame = 0

	for i, b := range m.buttons {
		if i == ButtonLeft || i == ButtonRight {
			b.SetStyle(m.arrowStyle)
			continue
		}
		b.SetStyle(m.style)
	}

	m.book = widget.NewCoverBook()
	for _, cc := range m.cfg.Covers {
		tex, err := h.LoadTexture(cc.Path)
		if err != nil {
			log.Printf("Menu: skipping cover %q: %v", cc.Label, err)
			continue
		}
		m.book.Insert(widget.NewCover(tex, cc.Label, geom.Zero(), geom.V(20, widget.HeaderHeight), geom.Zero()))
	}
}

func (m *Menu) Update(h scene.Host) scene.Command {
	screen := h.ScreenSize()
	m.stepCurtain(screen)
	m.layout(screen)

	cursor := h.Pointer()
	for _, b := range m.buttons {
		b.Hovered = b.Contains(cursor)
		b.Pressed = b.Hovered && h.PointerDown()
	}

	if h.PointerPressed() {
		switch {
		case m.buttons[ButtonExit].Hovered:
			return scene.Exit()
		case m.buttons[ButtonStart].Hovered && m.cfg.StartScene != "":
			return scene.JumpTo(m.cfg.StartScene)
		case m.buttons[ButtonLeft].Hovered:
			m.book.Prev()
		case m.buttons[ButtonRight].Hovered:
			m.book.Next()
		}
	}

	m.draw(h, screen)
	m.frame++
	return scene.Stay()
}

func (m *Menu) Unload(h scene.Host) {}

func (m *Menu) stepCurtain(screen geom.Vec2) {
	half := screen.Y / 2
	switch m.curtain {
	case CurtainClosed:
		m.curtainH, m.curtainY = half, half
		if m.frame >= m.cfg.CurtainHold {
			m.curtain = CurtainOpening
			m.frame = 0
		}
	case CurtainOpening:
		t := float32(m.frame)
		d := float32(m.cfg.CurtainFrames)
		if t > d {
			t = d
		}
		swing := screen.Y * m.cfg.CurtainRatio
		m.curtainH = ease.OutExpo(t, half, -swing, d)
		m.curtainY = ease.OutExpo(t, half, swing, d)
		if m.frame >= m.cfg.CurtainFrames {
			m.curtain = CurtainOpen
			m.frame = 0
		}
	}
}

// layout places the buttons against the current screen size.
func (m *Menu) layout(screen geom.Vec2) {
	b := m.buttons

	b[ButtonOptions].Position.X = screen.X/2 - b[ButtonOptions].Size.X/2
	b[ButtonExit].Position.X = (screen.X - 10) - b[ButtonExit].Size.X

	split := screen.X / 3
	b[ButtonStart].Size.X = split - 10
	b[ButtonOptions].Size.X = split - 10
	b[ButtonExit].Size.X = split - 10

	b[ButtonRight].Position = geom.V(screen.X-20, screen.Y/2)
	b[ButtonLeft].Position.Y = screen.Y / 2

	for _, c := range m.book.Covers {
		c.Size = geom.V(screen.X-40, screen.Y-widget.HeaderHeight)
	}
}

func (m *Menu) draw(h scene.Host, screen geom.Vec2) {
	c := h.BeginDrawing()
	c.Clear(palette.RayWhite)

	if cover := m.book.Current(); cover != nil {
		cover.Draw(c, screen)
		cover.DrawOutline(c)
	}

	// Header band; covers live below the line.
	c.FillRect(0, 0, int(screen.X), widget.HeaderHeight, palette.White)
	c.Line(geom.V(0, widget.HeaderHeight), geom.V(screen.X, widget.HeaderHeight), 3, palette.Black)

	dt := h.DT()
	for _, b := range m.buttons {
		b.Draw(c, dt)
	}

	if m.curtain != CurtainOpen {
		c.FillRect(0, int(m.curtainY), int(screen.X), int(screen.Y/2), palette.Black)
		if m.curtainH > 0 {
			c.FillRect(0, 0, int(screen.X), int(m.curtainH), palette.Black)
		}
	}
}

// Button returns one of the header buttons by index.
func (m *Menu) Button(i int) *widget.Button {
	return m.buttons[i]
}

// Book returns the cover viewer's covers.
func (m *Menu) Book() *widget.CoverBook {
	return m.book
}

// Curtain returns the curtain phase.
func (m *Menu) Curtain() CurtainPhase {
	return m.curtain
}

// String returns the string representation of the curtain phase
func (p CurtainPhase) String() string {
	switch p {
	case CurtainClosed:
		return "Closed"
	case CurtainOpening:
		return "Opening"
	case CurtainOpen:
		return "Open"
	default:
		return "Unknown"
	}
}

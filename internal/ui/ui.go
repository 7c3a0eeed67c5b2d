package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nevisdale/chiptic/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// Tab - show debug info
// P - pause
// N - one step while paused
// Backspace - reset
// [ - run slower
// ] - run faster
// Esc - quit

// The host keyboard maps to the hex keypad as:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
var keypadMapping = map[ebiten.Key]uint8{
	ebiten.Key1: 0x1, ebiten.Key2: 0x2, ebiten.Key3: 0x3, ebiten.Key4: 0xC,
	ebiten.KeyQ: 0x4, ebiten.KeyW: 0x5, ebiten.KeyE: 0x6, ebiten.KeyR: 0xD,
	ebiten.KeyA: 0x7, ebiten.KeyS: 0x8, ebiten.KeyD: 0x9, ebiten.KeyF: 0xE,
	ebiten.KeyZ: 0xA, ebiten.KeyX: 0x0, ebiten.KeyC: 0xB, ebiten.KeyV: 0xF,
}

type UI struct {
	chip8  *chip8.Chip8
	logger *log.Logger
	beeper *Beeper
	disasm map[uint16]string

	frame  *ebiten.Image
	pixels []byte

	stepsPerFrame int
	paused        bool
	showDebug     bool
}

type Config struct {
	Logger        *log.Logger
	StepsPerFrame int
	ShowDebug     bool
	Mute          bool
}

func New(ch *chip8.Chip8, cfg Config) (*UI, error) {
	ui := &UI{
		chip8:         ch,
		logger:        cfg.Logger,
		disasm:        ch.Disassemble(),
		frame:         ebiten.NewImage(gameScreenWidth, gameScreenHeight),
		pixels:        make([]byte, gameScreenWidth*gameScreenHeight*4),
		stepsPerFrame: cfg.StepsPerFrame,
		showDebug:     cfg.ShowDebug,
	}
	if ui.logger == nil {
		ui.logger = log.NewWithConfig(log.DefaultConfig())
	}
	if ui.stepsPerFrame <= 0 {
		ui.stepsPerFrame = defaultStepsPerFrame
	}
	if !cfg.Mute {
		beeper, err := NewBeeper()
		if err != nil {
			return nil, fmt.Errorf("couldn't init the beeper: %s", err)
		}
		ui.beeper = beeper
	}
	return ui, nil
}

func (ui *UI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		ui.showDebug = !ui.showDebug
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ui.paused = !ui.paused
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		ui.chip8.Reset()
		ui.paused = false
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) && ui.stepsPerFrame > 1 {
		ui.stepsPerFrame--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		ui.stepsPerFrame++
	}

	for key, code := range keypadMapping {
		// codes from the mapping are always valid
		_ = ui.chip8.SetKey(code, ebiten.IsKeyPressed(key))
	}

	if ui.paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyN) {
			ui.step()
		}
	} else {
		for i := 0; i < ui.stepsPerFrame && !ui.paused; i++ {
			ui.step()
		}
		ui.chip8.Tick()
	}

	if ui.beeper != nil {
		ui.beeper.SetPlaying(!ui.paused && ui.chip8.SoundTimer() > 0)
	}
	return nil
}

func (ui *UI) step() {
	if err := ui.chip8.Step(); err != nil {
		ui.logger.Error("execution stopped", log.Err(err))
		ui.paused = true
	}
}

func (ui *UI) Draw(screen *ebiten.Image) {
	ui.drawFrame(screen)
	if ui.showDebug {
		ui.drawDebugInfo(screen)
	}
}

func (ui *UI) drawFrame(screen *ebiten.Image) {
	for y := 0; y < gameScreenHeight; y++ {
		for x := 0; x < gameScreenWidth; x++ {
			c := byte(0)
			if ui.chip8.IsOn(x, y) {
				c = 0xFF
			}
			i := (y*gameScreenWidth + x) * 4
			ui.pixels[i] = c
			ui.pixels[i+1] = c
			ui.pixels[i+2] = c
			ui.pixels[i+3] = 0xFF
		}
	}
	ui.frame.WritePixels(ui.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(gameScreenScale, gameScreenScale)
	screen.DrawImage(ui.frame, op)
}

func (ui *UI) drawDebugInfo(screen *ebiten.Image) {
	info := ui.chip8.DebugInfo()
	var infoStr strings.Builder
	fmt.Fprintf(&infoStr, " FPS: %0.0f TPS: %0.0f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	fmt.Fprintf(&infoStr, " SPEED: %d op/frame\n", ui.stepsPerFrame)
	if ui.paused {
		infoStr.WriteString(" PAUSED\n")
	}
	if info.Waiting {
		infoStr.WriteString(" WAITING FOR KEY\n")
	}
	fmt.Fprintf(&infoStr, " PC: %04X I: %04X SP: %02X\n", info.PC, info.I, info.SP)
	fmt.Fprintf(&infoStr, " DT: %02X ST: %02X\n", info.DT, info.ST)
	for i := 0; i < len(info.V); i += 4 {
		fmt.Fprintf(&infoStr, " V%X: %02X V%X: %02X V%X: %02X V%X: %02X\n",
			i, info.V[i], i+1, info.V[i+1], i+2, info.V[i+2], i+3, info.V[i+3])
	}
	infoStr.WriteString("\n")

	for addr := info.PC - disasmWindow; addr <= info.PC+disasmWindow; addr += 2 {
		line, ok := ui.disasm[addr]
		if !ok {
			continue
		}
		marker := " "
		if addr == info.PC {
			marker = "*"
		}
		infoStr.WriteString(marker + line + "\n")
	}

	offsetX := float32(gameScreenWidth * gameScreenScale)
	vector.DrawFilledRect(screen, offsetX, 0, debugScreenWidth, debugScreenHeight, color.RGBA{50, 50, 50, 255}, false)
	ebitenutil.DebugPrintAt(screen, infoStr.String(), int(offsetX), 0)
}

const (
	gameScreenScale  = 10
	gameScreenWidth  = chip8.DisplayWidth
	gameScreenHeight = chip8.DisplayHeight

	debugScreenWidth  = 230
	debugScreenHeight = gameScreenHeight * gameScreenScale

	defaultStepsPerFrame = 10
	disasmWindow         = 14
)

func (ui *UI) Layout(_, _ int) (int, int) {
	return gameScreenWidth*gameScreenScale + debugScreenWidth, gameScreenHeight * gameScreenScale
}

func RunUI(ui *UI) error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	screenSizeX, screenSizeY := gameScreenWidth*gameScreenScale+debugScreenWidth, gameScreenHeight*gameScreenScale
	ebiten.SetWindowSize(screenSizeX, screenSizeY)
	ebiten.SetWindowTitle("chiptic")
	ebiten.SetTPS(60)
	return ebiten.RunGame(ui)
}

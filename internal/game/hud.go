package game

import (
	"fmt"

	"retrofps/internal/components"
	"retrofps/internal/engine"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const flashSeconds = 1.5

var (
	colorPrompt    = rl.NewColor(240, 240, 240, 255)
	colorCrosshair = rl.NewColor(255, 255, 255, 200)
)

// hud is the in-game overlay: crosshair, interact prompt and a short-lived
// message after each interaction.
type hud struct {
	message    string
	messageTTL float32
}

func initHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 20)
	gui.SetStyle(gui.LABEL, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorPrompt))
}

func (h *hud) flash(msg string) {
	h.message = msg
	h.messageTTL = flashSeconds
}

func (h *hud) update(deltaTime float32) {
	if h.messageTTL <= 0 {
		return
	}
	h.messageTTL -= deltaTime
	if h.messageTTL <= 0 {
		h.message = ""
	}
}

func (h *hud) draw(target *engine.GameObject, debug bool) {
	w := float32(rl.GetScreenWidth())
	hgt := float32(rl.GetScreenHeight())
	cx, cy := int32(w/2), int32(hgt/2)

	rl.DrawLine(cx-8, cy, cx+8, cy, colorCrosshair)
	rl.DrawLine(cx, cy-8, cx, cy+8, colorCrosshair)

	if text := promptText(target); text != "" {
		gui.Label(rl.Rectangle{X: w/2 - 150, Y: hgt/2 + 24, Width: 300, Height: 24}, text)
	}
	if h.message != "" {
		gui.Label(rl.Rectangle{X: 10, Y: hgt - 34, Width: 400, Height: 24}, h.message)
	}

	rl.DrawText("WASD move, Shift sprint, Space jump, E interact", 10, 10, 20, rl.LightGray)
	if debug {
		rl.DrawFPS(10, 35)
		gui.StatusBar(rl.Rectangle{X: 0, Y: hgt - 60, Width: w, Height: 22}, debugStatus(target))
	}
}

// promptText is the interact hint for the focused object, or empty.
func promptText(target *engine.GameObject) string {
	if target == nil {
		return ""
	}
	if d := engine.GetComponent[*components.Door](target); d != nil {
		if d.IsClosed() {
			return fmt.Sprintf("[E] Open %s", target.Name)
		}
		return fmt.Sprintf("[E] Close %s", target.Name)
	}
	return fmt.Sprintf("[E] Use %s", target.Name)
}

func debugStatus(target *engine.GameObject) string {
	if target == nil {
		return "target: none"
	}
	if d := engine.GetComponent[*components.Door](target); d != nil {
		return fmt.Sprintf("target: %s  state: %s  progress: %.2f", target.Name, d.State(), d.Progress())
	}
	return "target: " + target.Name
}

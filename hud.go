package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/kevindesuyo/supermario-platform-game/common"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, hudFace, op)
}

func drawTextCentered(screen *ebiten.Image, s string, y float64, clr color.Color) {
	w, _ := text.Measure(s, hudFace, 0)
	drawText(screen, s, (common.ScreenWidth-w)/2, y, clr)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	p := g.world.Player
	if p == nil {
		return
	}

	drawText(screen, fmt.Sprintf("Score: %06d", p.Score), 10, 10, colornames.White)
	drawText(screen, fmt.Sprintf("Time: %03d", int(g.timeRemaining)), 220, 10, colornames.White)
	drawText(screen, fmt.Sprintf("Lives: %d", p.Lives), 340, 10, colornames.White)
	drawText(screen, fmt.Sprintf("Coins: %d", p.Coins), 440, 10, colornames.White)

	if g.completeTimer > 0 {
		drawTextCentered(screen, "Level Complete!", common.ScreenHeight/2, colornames.Lime)
	} else if g.introTimer > 0 {
		drawTextCentered(screen, "Ready!", common.ScreenHeight/2, colornames.White)
	}

	if g.debug {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("Frames: %d  FPS: %.2f  Entities: %d",
				g.frames, ebiten.ActualFPS(), len(g.world.Entities.Entities())),
			10, common.ScreenHeight-20)
	}
}

func drawMenu(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	drawTextCentered(screen, "SUPER MARIO PLATFORM GAME", common.ScreenHeight/2-60, colornames.White)
	drawTextCentered(screen, "Press ENTER to start", common.ScreenHeight/2, colornames.Silver)
	drawTextCentered(screen, "Arrows/WASD move, Space jump, Shift run, Esc pause", common.ScreenHeight/2+40, colornames.Gray)
}

func drawGameOver(screen *ebiten.Image, timer float64, score int) {
	screen.Fill(colornames.Black)
	drawTextCentered(screen, "GAME OVER", common.ScreenHeight/2-50, colornames.Red)
	drawTextCentered(screen, fmt.Sprintf("Final score: %d", score), common.ScreenHeight/2, colornames.White)
	if timer > 0 {
		drawTextCentered(screen, fmt.Sprintf("Returning to menu in %d...", int(timer)+1), common.ScreenHeight/2+50, colornames.Silver)
	} else {
		drawTextCentered(screen, "Press ENTER to return to menu", common.ScreenHeight/2+50, colornames.Silver)
	}
}

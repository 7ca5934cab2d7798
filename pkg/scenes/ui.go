package scenes

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ebitenutil.DebugPrint 使用的等宽字体尺寸
const (
	debugCharWidth  = 6
	debugCharHeight = 16
)

var (
	overlayColor      = color.RGBA{R: 0, G: 0, B: 0, A: 0xa0}
	buttonColor       = color.RGBA{R: 0x2b, G: 0x6c, B: 0xd6, A: 0xff}
	buttonAltColor    = color.RGBA{R: 0x55, G: 0x55, B: 0x5a, A: 0xff}
	buttonBorderColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xc0}
	panelColor        = color.RGBA{R: 0x1b, G: 0x1d, B: 0x22, A: 0xff}
)

// button 简单的矩形按钮
type button struct {
	Rect  image.Rectangle
	Label string
	Fill  color.RGBA
}

// contains 检查屏幕坐标是否落在按钮内
func (b button) contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// draw 绘制按钮：填充、边框、居中文字
func (b button) draw(screen *ebiten.Image) {
	r := b.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), b.Fill, false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, buttonBorderColor, false)
	drawCenteredText(screen, b.Label, r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2)
}

// drawCenteredText 以 (cx, cy) 为中心绘制调试字体文字
func drawCenteredText(screen *ebiten.Image, msg string, cx, cy int) {
	x := cx - len(msg)*debugCharWidth/2
	y := cy - debugCharHeight/2
	ebitenutil.DebugPrintAt(screen, msg, x, y)
}

// centeredRect 返回以 (cx, cy) 为中心、宽 w 高 h 的矩形
func centeredRect(cx, cy, w, h int) image.Rectangle {
	return image.Rect(cx-w/2, cy-h/2, cx+w/2, cy+h/2)
}

package terminal

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-mastersys/mastersys/backend/terminal/render"
	"github.com/valerio/go-mastersys/mastersys/debug"
	"github.com/valerio/go-mastersys/mastersys/video"
)

func (t *Backend) gameSize(frame *video.FrameBuffer) (cols, rows int) {
	return int(frame.Width()) / t.scale, int(frame.Height()) / (2 * t.scale)
}

func (t *Backend) render(frame *video.FrameBuffer) {
	termWidth, termHeight := t.screen.Size()
	cols, rows := t.gameSize(frame)
	minWidth, minHeight := cols+2+minPanelWidth, rows+2

	t.screen.Clear()
	if termWidth < minWidth || termHeight < minHeight {
		msg := fmt.Sprintf("Terminal too small! Need at least %dx%d", minWidth, minHeight)
		t.drawText(0, termHeight/2, termWidth, msg, tcell.StyleDefault.Foreground(tcell.ColorRed))
		return
	}

	dividerX := cols + 1
	panelX := dividerX + 2
	panelWidth := termWidth - panelX

	t.drawBorders(termWidth, termHeight, dividerX)
	t.drawFrame(frame)

	logsY := 1
	if t.config.ShowDebug {
		var data *debug.Data
		if t.config.DebugData != nil {
			data = t.config.DebugData()
		}
		t.drawRegisters(data, panelX, 1, panelWidth)
		t.drawDisassembly(data, panelX, registerHeight+2, panelWidth)
		logsY = registerHeight + disasmHeight + 3
	}
	t.drawLogs(panelX, logsY, panelWidth, termHeight-1)
}

func (t *Backend) drawText(x, y, width int, text string, style tcell.Style) {
	for i, ch := range []rune(render.Truncate(text, width)) {
		t.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (t *Backend) drawBorders(termWidth, termHeight, dividerX int) {
	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	for y := 0; y < termHeight-1; y++ {
		t.screen.SetContent(dividerX, y, '│', nil, borderStyle)
	}

	separator := func(y int, title string) {
		if y >= termHeight-1 {
			return
		}
		for x := dividerX + 1; x < termWidth; x++ {
			t.screen.SetContent(x, y, '─', nil, borderStyle)
		}
		t.screen.SetContent(dividerX, y, '├', nil, borderStyle)
		t.drawText(dividerX+2, y, termWidth-dividerX-2, title, titleStyle)
	}

	title := " Master System "
	if t.config.TestPattern {
		title = " Test Pattern "
	}
	t.drawText(1, 0, dividerX-1, title, titleStyle)

	logsTitle := fmt.Sprintf(" Logs [%s] (-/+ filter) ", t.logLevel)
	if t.config.ShowDebug {
		t.drawText(dividerX+2, 0, termWidth-dividerX-2, " Z80 / VDP / PSG ", titleStyle)
		separator(registerHeight+1, " Disassembly ")
		separator(registerHeight+disasmHeight+2, logsTitle)
	} else {
		t.drawText(dividerX+2, 0, termWidth-dividerX-2, logsTitle, titleStyle)
	}

	help := " F10 debug | Space pause | o step | r reset | F9 snapshot | F7 dump | Esc quit "
	if t.config.TestPattern {
		help = " Test Pattern Mode: F12 cycle patterns | F9 snapshot | Esc quit "
	}
	t.drawText(0, termHeight-1, termWidth, help, borderStyle)
}

// drawFrame paints the picture with upper half blocks: foreground is the top pixel, background the bottom one.
func (t *Backend) drawFrame(frame *video.FrameBuffer) {
	pixels := frame.ToSlice()
	width := int(frame.Width())
	cols, rows := t.gameSize(frame)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			tr, tg, tb := render.PixelToRGB(render.Sample(pixels, width, col, row*2, t.scale))
			br, bg, bb := render.PixelToRGB(render.Sample(pixels, width, col, row*2+1, t.scale))

			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(tr, tg, tb)).
				Background(tcell.NewRGBColor(br, bg, bb))
			t.screen.SetContent(col, row+1, render.UpperHalfBlock, nil, style)
		}
	}
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

// registerLines formats the register pane.
// opcodeText prints prefixed opcodes as four digits and plain ones as two.
func opcodeText(opcode uint16) string {
	if opcode > 0xFF {
		return fmt.Sprintf("%04X", opcode)
	}
	return fmt.Sprintf("%02X", opcode)
}

func registerLines(data *debug.Data) []string {
	if data == nil || data.CPU == nil {
		return []string{"No debug data"}
	}

	cpu := data.CPU
	lines := []string{
		fmt.Sprintf("Status: %s  Frame: %d", data.DebuggerState, data.Frame),
		fmt.Sprintf("AF: %02X%02X  BC: %02X%02X  [%s]", cpu.A, cpu.F, cpu.B, cpu.C, cpu.Flags),
		fmt.Sprintf("DE: %02X%02X  HL: %02X%02X", cpu.D, cpu.E, cpu.H, cpu.L),
		fmt.Sprintf("AF' %04X  BC' %04X  DE' %04X  HL' %04X", cpu.AF2, cpu.BC2, cpu.DE2, cpu.HL2),
		fmt.Sprintf("IX: %04X  IY: %04X", cpu.IX, cpu.IY),
		fmt.Sprintf("SP: %04X  PC: %04X  I: %02X  R: %02X", cpu.SP, cpu.PC, cpu.I, cpu.R),
		fmt.Sprintf("IFF1: %s  IFF2: %s  IM: %d  HALT: %s", onOff(cpu.IFF1), onOff(cpu.IFF2), cpu.IM, onOff(cpu.Halted)),
		fmt.Sprintf("Cycles: %d  Next: %s", cpu.Cycles, opcodeText(cpu.Opcode)),
		fmt.Sprintf("Banks: %d %d %d  Cart RAM: %s", data.Banks[0], data.Banks[1], data.Banks[2], onOff(data.CartRAM)),
	}

	if vdp := data.VDP; vdp != nil {
		r := vdp.Registers
		lines = append(lines,
			fmt.Sprintf("Line: %3d  V: %02X  Stat: %02X  Addr: %04X", vdp.Scanline, vdp.VCounter, vdp.Status, vdp.Address),
			fmt.Sprintf("R0-7:  %02X %02X %02X %02X %02X %02X %02X %02X", r[0], r[1], r[2], r[3], r[4], r[5], r[6], r[7]),
			fmt.Sprintf("R8-15: %02X %02X %02X %02X %02X %02X %02X %02X", r[8], r[9], r[10], r[11], r[12], r[13], r[14], r[15]),
		)
	}

	if a := data.Audio; a != nil {
		lines = append(lines, fmt.Sprintf("Sound: %s  Noise: %X/%X", onOff(a.Enabled), a.NoiseControl, a.NoiseVolume))
		for i, ch := range a.Channels {
			lines = append(lines, fmt.Sprintf("Tone %d: %-4s vol %2d %s", i+1, ch.Note, ch.Volume, onOff(ch.Enabled)))
		}
	}

	return lines
}

func (t *Backend) drawRegisters(data *debug.Data, x, y, width int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	for i, line := range registerLines(data) {
		if i >= registerHeight {
			break
		}
		t.drawText(x, y+i, width, line, style)
	}
}

func (t *Backend) drawDisassembly(data *debug.Data, x, y, width int) {
	if data == nil || data.CPU == nil || data.Memory == nil {
		return
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	currentStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)

	for i, line := range debug.CreateDisassembly(data.Memory, data.CPU.PC, disasmHeight) {
		marker, useStyle := ' ', style
		if line.IsCurrent {
			marker, useStyle = '→', currentStyle
		}
		t.drawText(x, y+i, width, fmt.Sprintf("%c0x%04X: %s", marker, line.Address, line.Instruction), useStyle)
	}
}

func (t *Backend) drawLogs(x, y, width, bottom int) {
	available := bottom - y
	if available <= 0 || width <= 0 {
		return
	}

	styles := map[slog.Level]tcell.Style{
		slog.LevelDebug: tcell.StyleDefault.Foreground(tcell.ColorGray),
		slog.LevelInfo:  tcell.StyleDefault.Foreground(tcell.ColorBlue),
		slog.LevelWarn:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
		slog.LevelError: tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	}

	for i, entry := range t.logBuffer.GetRecent(available, t.logLevel) {
		style, ok := styles[entry.Level]
		if !ok {
			style = styles[slog.LevelInfo]
		}
		t.drawText(x, y+i, width, render.FormatLogEntry(entry), style)
	}
}

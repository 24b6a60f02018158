package main

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/dshills/vtwire/internal/config"
	"github.com/dshills/vtwire/internal/logging"
	"github.com/dshills/vtwire/internal/terminal"
	"github.com/dshills/vtwire/internal/vt"
)

// Panel layout on the 24x80 screen the engine resets to.
const (
	titleRow  = 1
	boxTop    = 3
	boxWidth  = 60
	gaugeRow  = 10
	gaugeCol  = 3
	gaugeSpan = 30
	regionTop = 12
	regionBot = 16
	helpRow   = 18
)

// markerGlyphs are the shapes the gauge marker cycles through. Each
// exercises a different attribute train on the wire.
var markerGlyphs = []string{"░", "▒", "▓", "█"}

// runDemo draws the diagnostic panel and then polls for input until
// the operator quits or the line dies. Config reloads and signals
// are applied between poll iterations; the engine itself is
// single-threaded.
func runDemo(term *terminal.Terminal, log *logging.Logger, quit <-chan os.Signal, reloads <-chan *config.Config, watchErrs <-chan error) error {
	if err := drawPanel(term); err != nil {
		return err
	}

	pos := gaugeSpan / 2
	shape := 0
	if err := drawGauge(term, pos, shape); err != nil {
		return err
	}

	for {
		select {
		case <-quit:
			return nil
		case cfg, ok := <-reloads:
			if ok {
				applyReload(log, cfg)
			}
		case err, ok := <-watchErrs:
			if ok && err != nil {
				log.Warn("config reload failed", "error", err)
			}
		default:
		}

		key, ok, err := term.RecvInput()
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		switch {
		case key == 'q' || key == 0x03:
			return nil
		case key == vt.KeyLeft && pos > 1:
			pos--
		case key == vt.KeyRight && pos < gaugeSpan:
			pos++
		case key == vt.KeyUp:
			shape = (shape + 1) % len(markerGlyphs)
		case key == vt.KeyDown:
			shape = (shape + len(markerGlyphs) - 1) % len(markerGlyphs)
		default:
			if err := logKey(term, key); err != nil {
				return err
			}
			continue
		}

		if err := drawGauge(term, pos, shape); err != nil {
			return err
		}
	}
}

// drawPanel renders the static parts of the screen.
func drawPanel(term *terminal.Terminal) error {
	if err := term.ClearScreen(); err != nil {
		return err
	}

	if err := term.MoveCursor(titleRow, 2); err != nil {
		return err
	}
	if err := term.SetBold(true); err != nil {
		return err
	}
	if err := term.SendText("vtwire diagnostics"); err != nil {
		return err
	}
	if err := term.ClearAttributes(); err != nil {
		return err
	}

	lines := []string{
		"┌" + strings.Repeat("─", boxWidth-2) + "┐",
		boxLine("shades:  ░░ ▒▒ ▓▓ ██"),
		boxLine("symbols: ° ± ≤ ≥ π ≠ £ · ─ │ ┼"),
		boxLine("accents: café naïve São “quoted” ‘marks’"),
		"└" + strings.Repeat("─", boxWidth-2) + "┘",
	}
	for i, line := range lines {
		if err := term.MoveCursor(boxTop+i, 2); err != nil {
			return err
		}
		if err := term.SendText(line); err != nil {
			return err
		}
	}

	if err := term.MoveCursor(gaugeRow-1, 2); err != nil {
		return err
	}
	if err := term.SendText("marker: arrows move, other keys log below"); err != nil {
		return err
	}

	if err := term.MoveCursor(regionTop-1, 2); err != nil {
		return err
	}
	if err := term.SetUnderline(true); err != nil {
		return err
	}
	if err := term.SendText("keys"); err != nil {
		return err
	}
	if err := term.ClearAttributes(); err != nil {
		return err
	}

	if err := term.MoveCursor(helpRow, 2); err != nil {
		return err
	}
	return term.SendText("press q to quit")
}

// boxLine pads text into a bordered row of the panel box.
func boxLine(text string) string {
	pad := boxWidth - 2 - utf8.RuneCountInString(text) - 1
	if pad < 0 {
		pad = 0
	}
	return "│ " + text + strings.Repeat(" ", pad) + "│"
}

// drawGauge repaints the marker track.
func drawGauge(term *terminal.Terminal, pos, shape int) error {
	if err := term.MoveCursor(gaugeRow, gaugeCol); err != nil {
		return err
	}
	line := "[" + strings.Repeat(" ", pos-1) + markerGlyphs[shape] +
		strings.Repeat(" ", gaugeSpan-pos) + "]"
	return term.SendText(line)
}

// logKey scrolls one classified keystroke into the log window. The
// scroll region is set only around the write: origin mode makes row
// addressing region-relative while the margins are active, so the
// panel painting above stays in absolute coordinates.
func logKey(term *terminal.Terminal, key vt.Key) error {
	if err := term.SetScrollRegion(regionTop, regionBot); err != nil {
		return err
	}
	if err := term.MoveCursor(regionBot-regionTop+1, 1); err != nil {
		return err
	}
	if err := term.SendText("\r\nkey " + key.String()); err != nil {
		return err
	}
	return term.ClearScrollRegion()
}

// applyReload adjusts what a running session can honor: the log
// level. Transport changes need a restart.
func applyReload(log *logging.Logger, cfg *config.Config) {
	if err := log.SetLevel(cfg.Log.Level); err != nil {
		log.Warn("config reload failed", "error", err)
		return
	}
	log.Info("configuration reloaded", "log_level", cfg.Log.Level)
}

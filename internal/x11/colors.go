package x11

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
)

// colorResources holds the allocated pixel values for the three
// compiled-in color schemes, each as an (fg, bg, border) triple. dwm
// allocates these once at startup via XftColorAllocName; we do the
// wire-protocol equivalent with xproto.AllocColor against the default
// colormap so no extra library is needed for plain solid colors.
type colorResources struct {
	normFG, normBG, normBorder       uint32
	selFG, selBG, selBorder          uint32
	urgentFG, urgentBG, urgentBorder uint32
}

func (c *conn) initColors(cfg Colors) error {
	var err error
	c.colors.normFG, err = c.allocColor(cfg.Norm[0])
	if err != nil {
		return err
	}
	c.colors.normBG, err = c.allocColor(cfg.Norm[1])
	if err != nil {
		return err
	}
	c.colors.normBorder, err = c.allocColor(cfg.Norm[2])
	if err != nil {
		return err
	}
	c.colors.selFG, err = c.allocColor(cfg.Sel[0])
	if err != nil {
		return err
	}
	c.colors.selBG, err = c.allocColor(cfg.Sel[1])
	if err != nil {
		return err
	}
	c.colors.selBorder, err = c.allocColor(cfg.Sel[2])
	if err != nil {
		return err
	}
	c.colors.urgentFG, err = c.allocColor(cfg.Urgent[0])
	if err != nil {
		return err
	}
	c.colors.urgentBG, err = c.allocColor(cfg.Urgent[1])
	if err != nil {
		return err
	}
	c.colors.urgentBorder, err = c.allocColor(cfg.Urgent[2])
	return err
}

func (c *conn) allocColor(name string) (uint32, error) {
	r, g, b, err := parseHexColor(name)
	if err != nil {
		return 0, err
	}
	screen := c.xu.Screen()
	reply, err := xproto.AllocColor(c.xu.Conn(), screen.DefaultColormap,
		uint16(r)<<8|uint16(r), uint16(g)<<8|uint16(g), uint16(b)<<8|uint16(b)).Reply()
	if err != nil {
		return 0, fmt.Errorf("alloc color %q: %w", name, err)
	}
	return reply.Pixel, nil
}

func (c *conn) freeColors() {
	// Colors are freed implicitly when the connection closes; dwm
	// does the same (cleanup() frees colormap entries via XCloseDisplay).
}

func parseHexColor(s string) (r, g, b uint8, err error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("color %q: expected #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("color %q: %w", s, err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

func schemeColors(c *conn, scheme ColorScheme) (fg, bg, border uint32) {
	switch scheme {
	case SchemeSel:
		return c.colors.selFG, c.colors.selBG, c.colors.selBorder
	case SchemeUrgent:
		return c.colors.urgentFG, c.colors.urgentBG, c.colors.urgentBorder
	default:
		return c.colors.normFG, c.colors.normBG, c.colors.normBorder
	}
}

func (c *conn) SetBorderColor(w Window, scheme ColorScheme) {
	_, _, border := schemeColors(c, scheme)
	xproto.ChangeWindowAttributes(c.xu.Conn(), w, xproto.CwBorderPixel, []uint32{border})
}

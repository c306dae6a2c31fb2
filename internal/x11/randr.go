package x11

import (
	"github.com/BurntSushi/xgb/randr"
)

// OutputGeometries returns one Rect per active physical output, using
// RandR's CRTC list in place of Xinerama. If RandR is unavailable or
// reports no active CRTCs, the caller falls back to a single monitor
// spanning the root window.
func (c *conn) OutputGeometries() ([]Rect, error) {
	if err := randr.Init(c.xu.Conn()); err != nil {
		return nil, err
	}
	randr.SelectInput(c.xu.Conn(), c.root, randr.NotifyMaskScreenChange)
	resources, err := randr.GetScreenResources(c.xu.Conn(), c.root).Reply()
	if err != nil {
		return nil, err
	}

	var rects []Rect
	for _, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(c.xu.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil || info == nil {
			continue
		}
		if info.Width == 0 || info.Height == 0 {
			continue
		}
		rects = append(rects, Rect{
			X:      int(info.X),
			Y:      int(info.Y),
			Width:  int(info.Width),
			Height: int(info.Height),
		})
	}
	return rects, nil
}

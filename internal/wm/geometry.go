package wm

import "github.com/goxwm/goxwm/internal/x11"

// Rect is re-exported from the adapter package so the rest of wm never
// has to import x11 just to name a rectangle.
type Rect = x11.Rect

// applySizeHints implements the ICCCM
// WM_NORMAL_HINTS math, applied only when resizeHints is on or the
// client floats (fixed-size clients always get it regardless, since a
// fixed client's min==max and skipping it would let it grow). Steps
// 1-3 (floor to 1px, screen/monitor clamp, floor to bar height) are
// the caller's job in resizeClient, which has the monitor geometry
// this function doesn't need.
func applySizeHints(r Rect, hints x11.SizeHints, floating, resizeHints bool) Rect {
	if !resizeHints && !floating {
		return r
	}

	baseW, baseH := hints.BaseWidth, hints.BaseHeight
	baseIsMin := baseW == hints.MinWidth && baseH == hints.MinHeight
	w, h := r.Width, r.Height
	if !baseIsMin {
		w -= baseW
		h -= baseH
	}

	if hints.HasMaxAspect && hints.MaxAspect > 0 && float64(w)/float64(h) > hints.MaxAspect {
		w = int(float64(h) * hints.MaxAspect)
	} else if hints.HasMinAspect && hints.MinAspect > 0 && float64(h)/float64(w) > hints.MinAspect {
		h = int(float64(w) * hints.MinAspect)
	}

	// ICCCM 4.1.2.3: when base size equals min size, the aspect limits
	// apply to the full size, so base is taken off only here, after the
	// aspect step. Either way base is subtracted exactly once before
	// flooring to the increment and added back once below, which keeps
	// the result a fixed point of this function.
	if baseIsMin {
		w -= baseW
		h -= baseH
	}

	if hints.WidthInc > 0 {
		w -= w % hints.WidthInc
	}
	if hints.HeightInc > 0 {
		h -= h % hints.HeightInc
	}

	r.Width = w + baseW
	r.Height = h + baseH

	if hints.MinWidth > 0 && r.Width < hints.MinWidth {
		r.Width = hints.MinWidth
	}
	if hints.MinHeight > 0 && r.Height < hints.MinHeight {
		r.Height = hints.MinHeight
	}
	if hints.HasMax {
		if hints.MaxWidth > 0 && r.Width > hints.MaxWidth {
			r.Width = hints.MaxWidth
		}
		if hints.MaxHeight > 0 && r.Height > hints.MaxHeight {
			r.Height = hints.MaxHeight
		}
	}
	return r
}

// clampToScreen pulls r back inside bounds:
// if the position exceeds the far edge, pull back to fit; if the
// window and border fall entirely off the near edge, snap to it.
func clampToScreen(r Rect, bw int, bounds Rect) Rect {
	if r.X > bounds.X+bounds.Width {
		r.X = bounds.X + bounds.Width - r.Width - 2*bw
	}
	if r.Y > bounds.Y+bounds.Height {
		r.Y = bounds.Y + bounds.Height - r.Height - 2*bw
	}
	if r.X+r.Width+2*bw < bounds.X {
		r.X = bounds.X
	}
	if r.Y+r.Height+2*bw < bounds.Y {
		r.Y = bounds.Y
	}
	return r
}

package wm

import "strings"

// matchRule reports whether r applies to a client with the given
// class, instance, and title: plain substring
// containment on each non-empty field, every given field must match.
func matchRule(r Rule, class, instance, title string) bool {
	if r.Class != "" && !strings.Contains(class, r.Class) {
		return false
	}
	if r.Instance != "" && !strings.Contains(instance, r.Instance) {
		return false
	}
	if r.Title != "" && !strings.Contains(title, r.Title) {
		return false
	}
	return true
}

// applyRules finds the first matching rule for c and applies its tags,
// floating, and monitor fields. Unmatched clients keep the selected
// monitor's current tagset and default to non-floating.
func (e *Engine) applyRules(c *Client) {
	class, instance := e.display.WindowClassInstance(c.win)
	c.class = class
	c.tags = 0

	for _, r := range e.cfg.Rules {
		if !matchRule(r, class, instance, c.name) {
			continue
		}
		c.isFloating = r.Floating
		c.tags |= r.Tags
		if r.Monitor >= 0 {
			if m := e.monitorByNum(r.Monitor); m != nil {
				c.mon = m.id
			}
		}
		break
	}

	mon := e.monitor(c.mon)
	if c.tags&TagAll != 0 {
		return
	}
	c.tags = mon.curTags()
}

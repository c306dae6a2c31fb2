package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchRuleSubstringOnly(t *testing.T) {
	r := Rule{Class: "Firefox"}
	assert.True(t, matchRule(r, "Firefox-bin", "", ""))
	assert.False(t, matchRule(r, "firefox-bin", "", ""), "matching is case-sensitive substring, not fold or glob")
}

func TestMatchRuleEmptyFieldsDontCare(t *testing.T) {
	r := Rule{Title: "term"}
	assert.True(t, matchRule(r, "anything", "anything", "xterm"))
}

func TestMatchRuleAllGivenFieldsMustMatch(t *testing.T) {
	r := Rule{Class: "Gimp", Instance: "gimp"}
	assert.False(t, matchRule(r, "Gimp", "other", ""))
	assert.True(t, matchRule(r, "Gimp", "gimp-2.10", ""))
}

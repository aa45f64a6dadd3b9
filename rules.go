package svgcheck

import (
	"fmt"
	"strings"
)

// CanvasViewBox is the only viewBox accepted for submitted icons.
const CanvasViewBox = "0 0 128 128"

// acceptedSizes are the allowed values of the root width and height attributes.
// An absent attribute is accepted too.
var acceptedSizes = map[string]bool{
	"128":   true,
	"128px": true,
}

// Rule is one structural check applied to every document.
type Rule struct {
	ID string

	// Check returns the violation text when the document breaks the rule.
	Check func(d *Document) (text string, violated bool)

	// At returns the byte offset of the element the rule looks at.
	// Nil means the root element.
	At func(d *Document) int64
}

// Rules lists every check in the order violations are reported.
var Rules = []Rule{
	{ID: RuleRootElement, Check: checkRootElement},
	{ID: RuleViewBox, Check: checkViewBox},
	{ID: RuleHeight, Check: checkSize("height")},
	{ID: RuleWidth, Check: checkSize("width")},
	{ID: RuleEnableBG, Check: checkEnableBackground},
	{ID: RuleAttrX, Check: checkUnneeded("x")},
	{ID: RuleAttrY, Check: checkUnneeded("y")},
	{ID: RuleStyleFill, Check: checkStyleFill, At: func(d *Document) int64 { return d.StyleOffset }},
}

func checkRootElement(d *Document) (string, bool) {
	if isSVGElement(d.Root, "svg") {
		return "", false
	}
	return fmt.Sprintf(IssueRootElement, d.RootTag()), true
}

func checkViewBox(d *Document) (string, bool) {
	if v, ok := d.Attr("viewBox"); ok && v == CanvasViewBox {
		return "", false
	}
	return IssueViewBox, true
}

func checkSize(attr string) func(d *Document) (string, bool) {
	return func(d *Document) (string, bool) {
		v, ok := d.Attr(attr)
		if !ok || acceptedSizes[v] {
			return "", false
		}
		return fmt.Sprintf(IssueSize, attr), true
	}
}

func checkEnableBackground(d *Document) (string, bool) {
	if v, ok := d.Attr("style"); ok && strings.Contains(v, "enable-background") {
		return IssueEnableBG, true
	}
	return "", false
}

func checkUnneeded(attr string) func(d *Document) (string, bool) {
	return func(d *Document) (string, bool) {
		if _, ok := d.Attr(attr); ok {
			return fmt.Sprintf(IssueUnneeded, attr), true
		}
		return "", false
	}
}

func checkStyleFill(d *Document) (string, bool) {
	if d.Style != nil && strings.Contains(*d.Style, "fill") {
		return IssueStyleFill, true
	}
	return "", false
}

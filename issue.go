package svgcheck

// Issue represents a single rule violation in golangci-lint format
type Issue struct {
	FromLinter string   `json:"FromLinter"` // "svgcheck"
	RuleID     string   `json:"RuleID"`     // "viewbox"
	Text       string   `json:"Text"`       // "'x' attribute ... -> Remove it"
	Severity   string   `json:"Severity"`   // always "error" today
	Pos        IssuePos `json:"Pos"`        // File location
}

// IssuePos specifies the location of the element an issue was raised on
type IssuePos struct {
	Filename string `json:"Filename"` // "icons/go/go-original.svg"
	Line     int    `json:"Line"`     // 1-based
	Column   int    `json:"Column"`   // 1-based, start of the element's '<'
}

// LinterName is reported as FromLinter on every issue.
const LinterName = "svgcheck"

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Rule IDs, in check order.
const (
	RuleRootElement = "root-element"
	RuleViewBox     = "viewbox"
	RuleHeight      = "height"
	RuleWidth       = "width"
	RuleEnableBG    = "enable-background"
	RuleAttrX       = "attr-x"
	RuleAttrY       = "attr-y"
	RuleStyleFill   = "style-fill"
)

// Violation texts. The combined report prefixes each with "-".
const (
	IssueRootElement = "root is '%s'. Root must be an 'svg' element"
	IssueViewBox     = "'viewBox' is not '" + CanvasViewBox + "' -> Set it or scale it using https://www.iloveimg.com/resize-image/resize-svg"
	IssueSize        = "'%[1]s' is present but is not '128' or '128px' -> Remove '%[1]s' or set it to '128' or '128px'"
	IssueEnableBG    = "deprecated 'enable-background' in style attribute -> Remove it"
	IssueUnneeded    = "unnecessary '%s' attribute -> Remove it"
	IssueStyleFill   = "contains style declaration using 'fill' -> Replace classes with the 'fill' attribute instead"
)

package constants

// DefaultHeadingLevel is the heading level given to the outermost section when
// no render context is supplied.
const DefaultHeadingLevel = 1

// MaxHeadingLevel is the deepest heading HTML knows about. Deeper sections are
// rendered with this level.
const MaxHeadingLevel = 6

// DefaultTitle is the document title used when none is configured.
const DefaultTitle = "Report"

// DefaultFormat is the output format used when none is configured.
const DefaultFormat = "html"

package convert

// zedColorMapping routes IntelliJ color keys to Zed UI slots. Keys with a
// .FOREGROUND/.BACKGROUND suffix address attribute colors; bare keys address
// the colors section.
var zedColorMapping = []struct {
	key   string
	slots []string
}{
	{"TEXT.BACKGROUND", []string{"editor.background", "editor.gutter.background", "toolbar.background"}},
	{"TEXT.FOREGROUND", []string{"editor.foreground", "editor.selection.foreground", "elevated_surface.foreground", "text", "text.accent", "text.muted", "terminal.foreground", "editor.line_number"}},
	{"CARET_ROW_COLOR", []string{"editor.active_line.background", "tab.active_background", "scrollbar.thumb.background", "editor.indent_guide", "elevated_surface.background"}},
	{"SELECTION_BACKGROUND", []string{"editor.selection.background", "element.selected", "ghost_element.selected", "search.match_background", "panel.focused_border"}},
	{"MATCHED_BRACE_ATTRIBUTES.BACKGROUND", []string{"editor.indent_guide_active", "editor.document_highlight.bracket_background"}},
	{"CONSOLE_BACKGROUND_KEY", []string{"terminal.background"}},
	{"CONSOLE_NORMAL_OUTPUT.FOREGROUND", []string{"terminal.foreground"}},
	{"DEFAULT_LINE_COMMENT.FOREGROUND", []string{"hint"}},
	{"BORDER_COLOR", []string{"border"}},
}

// zedDerivedSlots take a slightly darker editor background for visual
// hierarchy when the source theme gives them nothing.
var zedDerivedSlots = []string{
	"surface.background", "panel.background", "element.background",
	"tab_bar.background", "tab.inactive_background", "status_bar.background",
}

// zedAdditionalMappings fill remaining UI slots from already-mapped slots,
// or from fixed values where no source slot fits. Applied in order, and only
// to slots still unset.
var zedAdditionalMappings = []struct {
	target string
	source string
}{
	{"editor.active_line.background", "editor.highlighted_line.background"},
	{"editor.active_wrap_guide", "border.focused"},
	{"editor.invisible", "text.placeholder"},
	{"editor.subheader.background", "surface.background"},

	{"pane.focused_border", "border.focused"},
	{"pane_group.border", "border.variant"},
	{"panel.focused_border", "border.focused"},
	{"panel.indent_guide", "border.variant"},
	{"panel.indent_guide_active", "border"},
	{"panel.indent_guide_hover", "border.focused"},

	{"scrollbar.thumb.background", "element.background"},
	{"scrollbar.thumb.border", "border.variant"},
	{"scrollbar.thumb.hover_background", "element.hover"},
	{"scrollbar.track.background", "surface.background"},
	{"scrollbar.track.border", "border.variant"},

	{"conflict", "#fd79a8"},
	{"conflict.background", "#2d1b26"},
	{"conflict.border", "#fd79a8"},
	{"renamed", "#a29bfe"},
	{"renamed.background", "#23212d"},
	{"renamed.border", "#a29bfe"},
	{"hidden", "#636e72"},
	{"hidden.background", "#1e2021"},
	{"hidden.border", "#636e72"},
	{"unreachable", "#636e72"},
	{"unreachable.background", "#1e2021"},
	{"unreachable.border", "#636e72"},
	{"predictive", "#74b9ff"},
	{"predictive.background", "#1b2332"},
	{"predictive.border", "#74b9ff"},

	{"link_text.hover", "text.accent"},
	{"drop_target.background", "element.selected"},
	{"editor.document_highlight.write_background", "editor.selection.background"},
	{"title_bar.background", "surface.background"},
}

// zedSyntaxMapping routes IntelliJ attributes to Zed syntax tokens. DEFAULT_
// attributes are applied first and must not be overridden by the rest.
var zedSyntaxMapping = []struct {
	attr   string
	tokens []string
}{
	{"DEFAULT_LINE_COMMENT", []string{"comment", "comment.doc", "comment.documentation", "string.documentation"}},

	{"DEFAULT_KEYWORD", []string{"keyword", "keyword.modifier", "keyword.type", "keyword.coroutine",
		"keyword.function", "keyword.import", "keyword.return", "keyword.operator",
		"keyword.repeat", "keyword.debug", "keyword.exception", "keyword.conditional",
		"keyword.conditional.ternary", "keyword.export"}},

	{"DEFAULT_STRING", []string{"string", "string.documentation", "string.doc"}},
	{"DEFAULT_VALID_STRING_ESCAPE", []string{"string.escape", "string.special", "string.special.path",
		"string.special.symbol", "string.special.url"}},

	{"DEFAULT_NUMBER", []string{"number", "number.float", "float"}},

	{"DEFAULT_CONSTANT", []string{"constant", "constant.builtin", "constant.macro"}},
	{"DEFAULT_PREDEFINED_SYMBOL", []string{"boolean", "constant.builtin"}},
	{"ENUM_CONST", []string{"enum"}},

	{"DEFAULT_FUNCTION_DECLARATION", []string{"function", "function.builtin", "function.call", "function.macro",
		"function.method", "function.method.call", "function.decorator"}},
	{"DEFAULT_FUNCTION_CALL", []string{"function.call", "function.method.call"}},
	{"DEFAULT_STATIC_METHOD", []string{"function.method", "function.builtin"}},

	{"DEFAULT_CLASS_NAME", []string{"type", "type.builtin", "type.definition", "type.interface",
		"type.super", "type.class.definition", "namespace"}},

	{"DEFAULT_IDENTIFIER", []string{"variable", "variable.member", "variable.builtin"}},
	{"DEFAULT_INSTANCE_FIELD", []string{"field", "property"}},
	{"DEFAULT_PARAMETER", []string{"variable.parameter", "parameter"}},

	{"DEFAULT_OPERATION_SIGN", []string{"operator", "punctuation", "punctuation.delimiter"}},
	{"DEFAULT_BRACKETS", []string{"punctuation.bracket"}},

	{"DEFAULT_TAG", []string{"tag", "tag.delimiter"}},
	{"DEFAULT_ATTRIBUTE", []string{"attribute", "tag.attribute"}},

	{"DEFAULT_TEMPLATE_LANGUAGE_COLOR", []string{"text.literal", "embedded"}},
	{"DEFAULT_METADATA", []string{"attribute", "punctuation.special"}},
	{"DEFAULT_LABEL", []string{"label"}},

	{"DEFAULT_PREPROCESSOR_DIRECTIVE", []string{"keyword.directive", "keyword.directive.define"}},

	{"DEFAULT_DOC_MARKUP", []string{"emphasis", "emphasis.strong"}},
	{"DEFAULT_DOC_COMMENT_TAG", []string{"comment.doc", "punctuation.special"}},

	{"WRONG_REFERENCES_ATTRIBUTES", []string{"comment.error"}},
	{"WARNING_ATTRIBUTES", []string{"comment.warning"}},

	{"JSON.PROPERTY_KEY", []string{"property"}},
}

// zedEssentialTokens always get a color, falling back to the editor
// foreground.
var zedEssentialTokens = []string{
	"comment", "comment.doc", "keyword", "string", "string.escape",
	"number", "constant", "boolean", "function", "type", "variable",
	"variable.special", "tag", "attribute", "text.literal", "property",
}

// Per-appearance fixed slots: diagnostic surfaces, terminal ANSI ramp, and
// VCS status colors.
var zedLightExtras = map[string]string{
	"info.background":    "#C2D8F2",
	"info.border":        "#C2D8F2",
	"error.background":   "#FFD5CC",
	"error.border":       "#FFD5CC",
	"warning.background": "#FFE8B4",
	"warning.border":     "#FFE8B4",
	"hint.background":    "#FFE8B4",
	"hint.border":        "#FFE8B4",
	"success.background": "#BEE6BE",
	"success.border":     "#BEE6BE",

	"terminal.ansi.black":          "#BFB9BA",
	"terminal.ansi.red":            "#E14775",
	"terminal.ansi.green":          "#269D69",
	"terminal.ansi.yellow":         "#AB6763",
	"terminal.ansi.blue":           "#E16032",
	"terminal.ansi.magenta":        "#79619E",
	"terminal.ansi.cyan":           "#286A84",
	"terminal.ansi.white":          "#606060",
	"terminal.ansi.bright_black":   "#A59FA0",
	"terminal.ansi.bright_red":     "#E14775",
	"terminal.ansi.bright_green":   "#269D69",
	"terminal.ansi.bright_yellow":  "#AB6763",
	"terminal.ansi.bright_blue":    "#E16032",
	"terminal.ansi.bright_magenta": "#79619E",
	"terminal.ansi.bright_cyan":    "#286A84",
	"terminal.ansi.bright_white":   "#918C8E",

	"created":  "#319668",
	"modified": "#007599",
	"deleted":  "#d75c4d",
	"ignored":  "#8d8788",
	"renamed":  "#664d9b",
}

var zedDarkExtras = map[string]string{
	"info.background":    "#385570",
	"info.border":        "#385570",
	"error.background":   "#45302B",
	"error.border":       "#45302B",
	"warning.background": "#614438",
	"warning.border":     "#614438",
	"hint.background":    "#614438",
	"hint.border":        "#614438",
	"success.background": "#294436",
	"success.border":     "#294436",

	"terminal.ansi.black":          "#353535",
	"terminal.ansi.red":            "#F78D8C",
	"terminal.ansi.green":          "#B8BB26",
	"terminal.ansi.yellow":         "#FABD2F",
	"terminal.ansi.blue":           "#84A498",
	"terminal.ansi.magenta":        "#D3859A",
	"terminal.ansi.cyan":           "#8EC07B",
	"terminal.ansi.white":          "#EBDBB2",
	"terminal.ansi.bright_black":   "#353535",
	"terminal.ansi.bright_red":     "#F28E82",
	"terminal.ansi.bright_green":   "#B2B437",
	"terminal.ansi.bright_yellow":  "#F1BF4A",
	"terminal.ansi.bright_blue":    "#95A19D",
	"terminal.ansi.bright_magenta": "#CD98A6",
	"terminal.ansi.bright_cyan":    "#9EBD93",
	"terminal.ansi.bright_white":   "#EBDBB2",

	"created":  "#C3E887",
	"modified": "#80CBC4",
	"deleted":  "#F77669",
	"ignored":  "#637777",
	"renamed":  "#C792EA",
}

// zedPlayerColors seed the collaborative-editing cursor set.
var zedPlayerColors = []string{
	"#566dda", "#bf41bf", "#aa563b", "#955ae6",
	"#3a8bc6", "#be4677", "#a06d3a", "#2b9292",
}

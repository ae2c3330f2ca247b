package convert

import (
	"github.com/schemeforge/themeport/internal/dialect/fleet"
	"github.com/schemeforge/themeport/internal/palette"
	"github.com/schemeforge/themeport/internal/taxonomy"
)

// fleetScopeRules maps TextMate scopes to Fleet semantic identifiers.
// Specific entries come before their generic prefixes so longest-prefix
// matching stays deterministic.
var fleetScopeRules = []taxonomy.Rule{
	{Key: "comment", Category: "comment"},
	{Key: "comment.line", Category: "comment"},
	{Key: "comment.block", Category: "comment"},
	{Key: "comment.documentation", Category: "comment.doc"},
	{Key: "punctuation.definition.comment", Category: "comment"},

	{Key: "keyword", Category: "keyword"},
	{Key: "keyword.control", Category: "keyword"},
	{Key: "keyword.operator", Category: "punctuation.operator"},
	{Key: "keyword.operator.logical", Category: "punctuation.operator"},
	{Key: "keyword.operator.comparison", Category: "punctuation.operator"},
	{Key: "keyword.operator.assignment", Category: "punctuation.operator"},
	{Key: "keyword.operator.arithmetic", Category: "punctuation.operator"},
	{Key: "keyword.other", Category: "keyword"},

	{Key: "storage", Category: "identifier.type"},
	{Key: "storage.type", Category: "identifier.type"},
	{Key: "storage.type.builtin", Category: "identifier.type"},
	{Key: "storage.modifier", Category: "keyword.typeModifier"},
	{Key: "entity.name", Category: "identifier.type"},
	{Key: "entity.name.type", Category: "identifier.type"},
	{Key: "entity.name.class", Category: "identifier.type.class"},
	{Key: "support.class", Category: "identifier.type.class"},

	{Key: "entity.name.function", Category: "identifier.function.declaration"},
	{Key: "variable.function", Category: "identifier.function.call"},
	{Key: "support.function", Category: "identifier.function.call"},
	{Key: "meta.function-call", Category: "identifier.function.call"},
	{Key: "support.function.builtin", Category: "identifier.function.call"},

	{Key: "variable", Category: "identifier.variable"},
	{Key: "variable.other", Category: "identifier.variable"},
	{Key: "variable.other.readwrite", Category: "identifier.variable"},
	{Key: "variable.other.member", Category: "identifier.field"},
	{Key: "variable.parameter", Category: "identifier.parameter"},
	{Key: "variable.other.constant", Category: "identifier.constant"},

	{Key: "constant", Category: "identifier.constant"},
	{Key: "constant.numeric", Category: "number"},
	{Key: "constant.language", Category: "identifier.constant.predefined"},
	{Key: "constant.character", Category: "identifier.constant"},
	{Key: "constant.character.escape", Category: "string.escape"},
	{Key: "support.constant", Category: "identifier.constant"},

	{Key: "string", Category: "string"},
	{Key: "string.quoted", Category: "string"},
	{Key: "string.quoted.single", Category: "string"},
	{Key: "string.quoted.double", Category: "string"},
	{Key: "string.quoted.triple", Category: "string"},
	{Key: "string.unquoted", Category: "string"},
	{Key: "string.template", Category: "string"},
	{Key: "string.regexp", Category: "string.regexp"},

	{Key: "constant.language.boolean", Category: "boolean"},

	{Key: "entity.name.tag", Category: "tagName.html"},
	{Key: "entity.name.tag.html", Category: "tagName.html"},
	{Key: "entity.name.tag.xml", Category: "tagName.html"},
	{Key: "meta.tag", Category: "tag.html"},

	{Key: "entity.other.attribute-name", Category: "attributeName.html"},
	{Key: "entity.other.attribute-name.html", Category: "attributeName.html"},
	{Key: "entity.other.attribute-name.xml", Category: "attributeName.html"},

	{Key: "entity.other.attribute-name.class.css", Category: "selector.class.css"},
	{Key: "entity.other.attribute-name.id.css", Category: "selector.id.css"},
	{Key: "entity.other.attribute-name.pseudo-class.css", Category: "selector.pseudo.css"},
	{Key: "support.type.property-name.css", Category: "propertyName.css"},

	{Key: "meta.mapping.key.json string.quoted.double.json", Category: "key.json"},
	{Key: "meta.mapping.key.yaml", Category: "key.yaml"},

	{Key: "punctuation.operator", Category: "punctuation.operator"},
	{Key: "punctuation", Category: "punctuation"},
	{Key: "punctuation.definition", Category: "punctuation"},

	{Key: "markup.bold", Category: "markup.bold"},
	{Key: "markup.italic", Category: "markup.italic"},
	{Key: "markup.heading", Category: "markup.heading"},
	{Key: "markup.inserted", Category: "diff.added"},
	{Key: "markup.deleted", Category: "diff.deleted"},
	{Key: "markup.changed", Category: "diff.modified"},

	{Key: "diff.deleted", Category: "diff.deleted"},
	{Key: "diff.deleted.char", Category: "diff.deleted.char"},
	{Key: "diff.inserted", Category: "diff.inserted"},
	{Key: "diff.inserted.char", Category: "diff.inserted.char"},
	{Key: "diff.deleted.sbs-compare", Category: "sbs.compare.diff.deleted"},
	{Key: "diff.deleted.char.sbs-compare", Category: "sbs.compare.diff.char.deleted"},
	{Key: "diff.inserted.sbs-compare", Category: "sbs.compare.diff.inserted"},
	{Key: "diff.inserted.char.sbs-compare", Category: "sbs.compare.diff.inserted.char"},

	{Key: "storage.type.annotation", Category: "comment.doc.tag"},
	{Key: "variable.annotation", Category: "comment.doc.tag"},

	{Key: "markup.underline.link", Category: "link"},
	{Key: "string.other.link", Category: "link"},
}

// fleetNamings maps Sublime variable names to Fleet palette names.
var fleetNamings = []palette.Naming{
	{Variable: "textcolor", Name: "Text"},
	{Variable: "background", Name: "Base"},
	{Variable: "popup_bg", Name: "Mantle"},
	{Variable: "selection_background", Name: "Selection"},
	{Variable: "line_highlight_color", Name: "LineHighlight"},
	{Variable: "gutter_foreground_color", Name: "GutterFg"},

	{Variable: "comment_color", Name: "Comment"},
	{Variable: "keyword_color", Name: "Keyword"},
	{Variable: "string_color", Name: "String"},
	{Variable: "function_color", Name: "Function"},
	{Variable: "constant_color", Name: "Constant"},
	{Variable: "operator_color", Name: "Operator"},
	{Variable: "variable_color", Name: "Variable"},
	{Variable: "storage_color", Name: "Storage"},
	{Variable: "annotation_color", Name: "Annotation"},
	{Variable: "doc_color", Name: "Documentation"},
	{Variable: "tag_color", Name: "Tag"},
	{Variable: "css_selector_color", Name: "CssSelector"},
	{Variable: "json_key_color", Name: "JsonKey"},
	{Variable: "yaml_key_color", Name: "YamlKey"},

	{Variable: "--redish", Name: "Red"},
	{Variable: "--greenish", Name: "Green"},
	{Variable: "--bluish", Name: "Blue"},
	{Variable: "--yellowish", Name: "Yellow"},
	{Variable: "--cyanish", Name: "Cyan"},
	{Variable: "--orangish", Name: "Orange"},
	{Variable: "--pinkish", Name: "Pink"},
	{Variable: "--purplish", Name: "Purple"},

	{Variable: "inserted", Name: "DiffInserted"},
	{Variable: "deleted", Name: "DiffDeleted"},
	{Variable: "modified", Name: "DiffModified"},
}

// fleetBackfill names the palette entry a rule classified to a given
// semantic may fill when no variable supplied it. Schemes without the
// semantic variable set still get a usable palette this way.
var fleetBackfill = []struct {
	semantic string
	name     string
}{
	{"comment", "Comment"},
	{"comment.doc", "Documentation"},
	{"comment.doc.tag", "Annotation"},
	{"keyword", "Keyword"},
	{"keyword.typeModifier", "Storage"},
	{"string", "String"},
	{"number", "Constant"},
	{"identifier.function.declaration", "Function"},
	{"identifier.function.call", "Function"},
	{"identifier.type", "Storage"},
	{"identifier.type.class", "Storage"},
	{"identifier.variable", "Variable"},
	{"identifier.constant", "Constant"},
	{"punctuation.operator", "Operator"},
	{"tagName.html", "Tag"},
	{"attributeName.html", "Annotation"},
	{"key.json", "JsonKey"},
	{"key.yaml", "YamlKey"},
}

// fleetColorSlots is the colors section: slot key to fallback chain, in the
// order the slots are emitted conceptually. A handful of slots derived from
// resolved globals are handled in the driver instead.
var fleetColorSlots = []struct {
	key   string
	chain palette.Chain
}{
	{"editor.text", chain("Text", "Variable")},
	{"editor.caret.background", chain("Text", "Variable")},
	{"editor.whitespace.text", chain("Comment", "GutterFg", "Text")},

	{"editor.lineNumber.default", chain("GutterFg", "Comment", "Text")},
	{"editor.lineNumber.current", chain("Keyword", "Purple", "Blue", "Text")},

	{"editor.foldedMark.background", chain("Mantle", "Base")},
	{"editor.foldedMark.text", chain("Text", "Variable")},
	{"editor.foldIndicator.icon.default", chain("GutterFg", "Comment")},
	{"editor.foldIndicator.icon.hovered", chain("Keyword", "Purple", "Blue")},
	{"editor.foldIndicator.background.hovered", chain("Mantle", "Base")},
	{"editor.interline.background", chain("Base", "Text")},
	{"editor.interline.match.background", chain("Yellow", "Orange", "Selection")},
	{"editor.interline.match.background.secondary", chain("Yellow", "Orange", "Selection")},
	{"editor.interline.match.text", chain("Text", "Variable")},
	{"editor.interline.match.text.secondary", chain("Text", "Variable")},
	{"editor.interline.preview.background", chain("Base", "Text")},
	{"editor.interline.preview.border", transparent()},

	{"background.secondary", chain("Base", "Text")},
	{"island.background", chain("Base", "Text")},
	{"background.hovered", chain("LineHighlight", "Selection", "Base")},
	{"background.selected", chain("Selection", "LineHighlight", "Base")},

	{"border", chain("Base", "Text")},
	{"border.focused", chain("Keyword", "Purple", "Blue", "Function")},
	{"shadow.border", chain("Mantle", "Base")},

	{"text.default", chain("Text", "Variable")},
	{"text.primary", chain("Text", "Variable")},
	{"text.secondary", chain("Comment", "GutterFg", "Text")},
	{"text.tertiary", chain("GutterFg", "Comment", "Text")},
	{"text.disabled", chain("Comment", "GutterFg", "Text")},
	{"text.bright", chain("Text", "Variable")},
	{"text.dangerous", chain("Red", "Operator", "Keyword")},

	{"editor.gitDiff.background.added", chain("DiffInserted", "Green", "String")},
	{"editor.gitDiff.text.added", chain("DiffInserted", "Green", "String")},
	{"editor.gitDiff.background.deleted", chain("DiffDeleted", "Red", "Operator")},
	{"editor.gitDiff.text.deleted", chain("DiffDeleted", "Red", "Operator")},
	{"editor.gitDiff.background.modified", chain("DiffModified", "Blue", "Function")},
	{"editor.gitDiff.text.modified", chain("DiffModified", "Blue", "Function")},
	{"editor.gitDiff.background.conflict", chain("DiffDeleted", "Red", "Operator")},
	{"editor.gitDiff.text.conflict", chain("DiffDeleted", "Red", "Operator")},

	{"link.focusOutline", chain("Blue", "Cyan", "Function")},
	{"link.text", chain("Blue", "Cyan", "Function", "Documentation")},

	{"completion.match.background", transparent()},
	{"completion.match.text", chain("Orange", "Yellow", "Constant")},
	{"search.match.background", chain("Yellow", "Orange", "Selection")},
	{"search.match.text", chain("Base", "Text")},

	{"popup.background", chain("Mantle", "Base")},
	{"popup.editor.background", chain("Base", "Text")},
	{"popup.goto.background", chain("Mantle", "Base")},
	{"popup.text", chain("Text", "Variable")},
	{"popup.foreground", chain("Text", "Variable")},
	{"tooltip.background", chain("Mantle", "Base")},
	{"tooltip.border", transparent()},
	{"tooltip.text.primary", chain("Text", "Variable")},
	{"tooltip.text", chain("Text", "Variable")},
	{"tooltip.text.secondary", chain("Text", "Variable")},
	{"tooltip.text.tertiary", chain("Text", "Variable")},

	{"notification.background.default", chain("Base", "Text")},
	{"notification.background.unread", chain("Selection", "LineHighlight")},
	{"notification.separator", chain("Mantle", "Base")},
	{"notification.text", chain("Text", "Variable")},
	{"notification.timestamp", chain("Text", "Variable")},

	{"ai.snippet.border", transparent()},
	{"ai.snippet.header.background", chain("Mantle", "Base")},
	{"ai.snippet.editor.background", chain("Base", "Text")},
	{"ai.icon.background", chain("Purple", "Keyword", "Blue")},
	{"ai.icon.background.secondary", chain("Selection", "LineHighlight")},
	{"ai.user.icon.text", chain("Blue", "Cyan", "Function")},
	{"ai.user.icon.background", chain("Blue", "Cyan", "Function")},
	{"ai.user.icon.background.secondary", chain("Selection", "LineHighlight")},
	{"ai.error.border", chain("Red", "Operator")},

	{"listItem.text.default", chain("Text", "Variable")},
	{"listItem.text.hovered", chain("Text", "Variable")},
	{"listItem.text.focused", chain("Text", "Variable")},
	{"listItem.text.selected", chain("Text", "Variable")},
	{"listItem.text.secondary", chain("Comment", "GutterFg")},
	{"listItem.border.default", transparent()},
	{"listItem.border.hovered", transparent()},
	{"listItem.border.focused", transparent()},
	{"listItem.border.selected", transparent()},
	{"listItem.background.default", transparent()},
	{"listItem.background.hovered", chain("LineHighlight", "Selection")},
	{"listItem.background.focused", chain("Selection", "LineHighlight")},
	{"listItem.background.selected", chain("Selection", "LineHighlight")},
	{"listItem.background.dnd", chain("Selection", "LineHighlight")},

	{"tree.focusBorder", chain("Keyword", "Purple", "Blue")},
	{"tree.compactFolder.selector.default", chain("Text", "Variable")},
	{"tree.compactFolder.selector.focused", chain("Text", "Variable")},
	{"tree.compactFolder.separator", chain("Comment", "GutterFg")},

	{"tab.background.default", transparent()},
	{"tab.background.hovered", chain("LineHighlight", "Selection")},
	{"tab.border.default", transparent()},
	{"tab.border.hovered", transparent()},
	{"tab.border.selected", transparent()},
	{"tab.border.selectedFocused", transparent()},
	{"tab.text", chain("Text", "Variable")},

	{"terminal.background", chain("Base", "Text")},
	{"terminal.foreground", chain("Text", "Variable")},

	{"terminal.ansiColors.background.ansiBlack", chain("Base", "Text")},
	{"terminal.ansiColors.foreground.ansiBlack", chain("Text", "Variable")},
	{"terminal.ansiColors.background.ansiRed", chain("Red", "Operator")},
	{"terminal.ansiColors.foreground.ansiRed", chain("Red", "Operator")},
	{"terminal.ansiColors.background.ansiGreen", chain("Green", "String")},
	{"terminal.ansiColors.foreground.ansiGreen", chain("Green", "String")},
	{"terminal.ansiColors.background.ansiYellow", chain("Yellow", "Constant")},
	{"terminal.ansiColors.foreground.ansiYellow", chain("Yellow", "Constant")},
	{"terminal.ansiColors.background.ansiBlue", chain("Blue", "Function")},
	{"terminal.ansiColors.foreground.ansiBlue", chain("Blue", "Function")},
	{"terminal.ansiColors.background.ansiMagenta", chain("Purple", "Pink", "Keyword")},
	{"terminal.ansiColors.foreground.ansiMagenta", chain("Purple", "Pink", "Keyword")},
	{"terminal.ansiColors.background.ansiCyan", chain("Cyan", "Blue")},
	{"terminal.ansiColors.foreground.ansiCyan", chain("Cyan", "Blue")},
	{"terminal.ansiColors.background.ansiWhite", chain("Text", "Variable")},
	{"terminal.ansiColors.foreground.ansiWhite", chain("Text", "Variable")},

	{"terminal.ansiColors.background.ansiBrightBlack", chain("LineHighlight", "Selection")},
	{"terminal.ansiColors.foreground.ansiBrightBlack", chain("Comment", "GutterFg")},
	{"terminal.ansiColors.background.ansiBrightRed", chain("Red", "Operator")},
	{"terminal.ansiColors.foreground.ansiBrightRed", chain("Red", "Operator")},
	{"terminal.ansiColors.background.ansiBrightGreen", chain("Green", "String")},
	{"terminal.ansiColors.foreground.ansiBrightGreen", chain("Green", "String")},
	{"terminal.ansiColors.background.ansiBrightYellow", chain("Yellow", "Constant")},
	{"terminal.ansiColors.foreground.ansiBrightYellow", chain("Yellow", "Constant")},
	{"terminal.ansiColors.background.ansiBrightBlue", chain("Blue", "Function")},
	{"terminal.ansiColors.foreground.ansiBrightBlue", chain("Blue", "Function")},
	{"terminal.ansiColors.background.ansiBrightMagenta", chain("Purple", "Pink", "Keyword")},
	{"terminal.ansiColors.foreground.ansiBrightMagenta", chain("Purple", "Pink", "Keyword")},
	{"terminal.ansiColors.background.ansiBrightCyan", chain("Cyan", "Blue")},
	{"terminal.ansiColors.foreground.ansiBrightCyan", chain("Cyan", "Blue")},
	// ansiBrightWhite background controls the terminal area background.
	{"terminal.ansiColors.background.ansiBrightWhite", chain("Base", "Text")},
	{"terminal.ansiColors.foreground.ansiBrightWhite", chain("Text", "Variable")},

	{"button.background.default", chain("LineHighlight", "Selection")},
	{"button.background.hovered", chain("Selection", "LineHighlight")},
	{"button.text.default", chain("Text", "Variable")},
	{"button.text.hovered", chain("Text", "Variable")},
	{"button.border.default", chain("Selection", "LineHighlight")},
	{"button.focusBorder", transparent()},
	{"button.focusOutline", transparent()},

	{"button.secondary.background.default", chain("LineHighlight", "Selection")},
	{"button.secondary.background.hovered", chain("Selection", "LineHighlight")},
	{"button.secondary.text.default", chain("Text", "Variable")},
	{"button.secondary.text.hovered", chain("Text", "Variable")},
	{"button.secondary.border.default", transparent()},

	{"button.tile.background.default", chain("Mantle", "LineHighlight", "Base")},
	{"button.tile.background.hovered", chain("LineHighlight", "Selection")},
	{"button.tile.text.default", chain("Text", "Variable")},
	{"button.tile.text.hovered", chain("Text", "Variable")},
	{"button.tile.border.default", transparent()},

	{"disabled", transparent()},
	{"focusOutline", chain("Keyword", "Purple", "Blue")},
}

// fleetAttrSlots is the fixed textAttributes section. Selection, indent
// guide, and diff entries depend on resolved globals and are added in the
// driver.
var fleetAttrSlots = []struct {
	key  string
	fg   palette.Chain
	bg   palette.Chain
	font *fleet.FontModifier
}{
	{key: "comment", fg: chain("Comment", "GutterFg"), font: &fleet.FontModifier{Italic: true}},
	{key: "comment.doc", fg: chain("Documentation", "Comment")},
	{key: "comment.doc.tag", fg: chain("Annotation", "Documentation", "Comment")},

	{key: "keyword", fg: chain("Keyword", "Purple", "Blue")},
	{key: "keyword.control", fg: chain("Keyword", "Purple", "Blue")},
	{key: "keyword.typeModifier", fg: chain("Storage", "Yellow", "Blue")},

	{key: "string", fg: chain("String", "Green", "Constant")},
	{key: "string.regexp", fg: chain("String", "Green")},

	{key: "number", fg: chain("Constant", "Orange", "Yellow")},
	{key: "boolean", fg: chain("Keyword", "Purple", "Constant")},

	{key: "identifier", fg: chain("Variable", "Text")},
	{key: "identifier.function.call", fg: chain("Function", "Blue", "Cyan")},
	{key: "identifier.function.declaration", fg: chain("Function", "Blue", "Cyan")},
	{key: "identifier.type", fg: chain("Storage", "Yellow", "Blue")},
	{key: "identifier.type.class", fg: chain("Storage", "Yellow", "Blue")},
	{key: "identifier.type.enum", fg: chain("Storage", "Yellow", "Blue")},
	{key: "identifier.type.struct", fg: chain("Storage", "Yellow", "Blue")},
	{key: "identifier.interface", fg: chain("Storage", "Yellow", "Blue")},
	{key: "identifier.typeReference", fg: chain("Storage", "Yellow", "Blue")},
	{key: "identifier.constant", fg: chain("Constant", "Orange", "Yellow")},
	{key: "identifier.parameter", fg: chain("Variable", "Text")},
	{key: "identifier.variable", fg: chain("Variable", "Text")},
	{key: "identifier.field", fg: chain("Variable", "Text")},

	{key: "punctuation", fg: chain("Operator", "Cyan", "Text")},
	{key: "punctuation.operator", fg: chain("Operator", "Cyan", "Keyword")},

	{key: "tagName.html", fg: chain("Tag", "Red", "Keyword")},
	{key: "tag.html", fg: chain("Tag", "Text"), bg: baseChain()},
	{key: "attributeName.html", fg: chain("Annotation", "Yellow", "Function")},

	{key: "json.keys", fg: chain("Text", "Variable")},

	{key: "markup.bold", font: &fleet.FontModifier{Bold: true}},
	{key: "markup.italic", font: &fleet.FontModifier{Italic: true}},
	{key: "markup.heading", fg: chain("Keyword", "Purple", "Blue"), font: &fleet.FontModifier{Bold: true}},

	{key: "link", fg: chain("Blue", "Cyan", "Function")},

	{key: "region.red.color", bg: baseChain()},
	{key: "region.blue.color", bg: baseChain()},
	{key: "region.orange.color", bg: baseChain()},
	{key: "region.yellow.color", bg: baseChain()},
	{key: "region.green.color", bg: baseChain()},
	{key: "region.purple.color", bg: baseChain()},
	{key: "region.pink.color", bg: baseChain()},

	{key: "lsp.info.color", fg: chain("Blue", "Function"), bg: baseChain()},
	{key: "lsp.hint.color", fg: chain("Green", "String"), bg: baseChain()},
	{key: "lsp.warning.color", fg: chain("Yellow", "Constant"), bg: baseChain()},
	{key: "lsp.error.color", fg: chain("Red", "Operator"), bg: baseChain()},
}

func chain(names ...string) palette.Chain {
	return palette.Chain{Names: names, Default: "Text"}
}

func baseChain() palette.Chain {
	return palette.Chain{Names: []string{"Base"}, Default: "Base"}
}

func transparent() palette.Chain {
	return palette.Chain{Default: palette.TransparentName}
}

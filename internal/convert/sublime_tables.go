package convert

// semanticGroup ties a family of TextMate scopes to the IntelliJ attributes
// that color it and the scheme variable the color is published under.
type semanticGroup struct {
	name     string
	scopes   string
	attrs    []string
	variable string
}

// sublimeGroups is ordered; rules are emitted in this order.
var sublimeGroups = []semanticGroup{
	{
		name:     "Keywords",
		scopes:   "keyword, keyword.other, keyword.control, variable.language.class, storage.modifier",
		attrs:    []string{"DEFAULT_KEYWORD"},
		variable: "keyword_color",
	},
	{
		name:     "Storage Types",
		scopes:   "storage, storage.type, storage.type.builtin, storage.modifier, meta.namespace, entity.name, support.class, entity.name.type, entity.name.class",
		attrs:    []string{"DEFAULT_CLASS_NAME"},
		variable: "storage_color",
	},
	{
		name:     "Strings",
		scopes:   "string, string.quoted, string.quoted.single, string.quoted.double, string.quoted.triple, string.unquoted, string.template, string.regexp, string.other.link, variable.annotation",
		attrs:    []string{"DEFAULT_STRING"},
		variable: "string_color",
	},
	{
		name:     "Functions",
		scopes:   "entity.name.function, variable.function, support.function, meta.function-call, keyword.other.special-method, support.function.builtin",
		attrs:    []string{"DEFAULT_FUNCTION_DECLARATION"},
		variable: "function_color",
	},
	{
		name:     "Variables",
		scopes:   "variable, variable.other, variable.other.readwrite, variable.other.member, variable.other.global, variable.other.local, variable.other.constant, meta.block variable.other, variable.language.anonymous, meta.function.declaration variable.parameter, variable.other.readwrite.declaration, variable.parameter",
		attrs:    []string{"DEFAULT_IDENTIFIER"},
		variable: "variable_color",
	},
	{
		name:     "Constants",
		scopes:   "constant, constant.numeric, constant.language, constant.character, constant.character.escape, constant.other, variable.other.constant, support.constant, keyword.other.unit",
		attrs:    []string{"DEFAULT_CONSTANT", "DEFAULT_NUMBER"},
		variable: "constant_color",
	},
	{
		name:     "Comments",
		scopes:   "comment, comment.line, comment.block, comment.documentation, punctuation.definition.comment, comment.line.shebang",
		attrs:    []string{"DEFAULT_LINE_COMMENT"},
		variable: "comment_color",
	},
	{
		name:     "Operators",
		scopes:   "keyword.operator, keyword.operator.logical, keyword.operator.comparison, keyword.operator.assignment, keyword.operator.arithmetic, keyword.operator.regexp",
		attrs:    []string{"DEFAULT_OPERATION_SIGN"},
		variable: "operator_color",
	},
	{
		name:     "Punctuation",
		scopes:   "punctuation, punctuation.separator, punctuation.separator.comma, punctuation.terminator, punctuation.terminator.semicolon, punctuation.section, punctuation.section.braces, punctuation.section.brackets, punctuation.section.parens, punctuation.accessor.dot, punctuation.separator.colon, punctuation.definition",
		attrs:    []string{"DEFAULT_BRACKETS"},
		variable: "punctuation_color",
	},
	{
		name:     "JSON Keys",
		scopes:   "source.json meta.mapping.key.json string.quoted.double.json",
		attrs:    []string{"JSON.PROPERTY_KEY"},
		variable: "json_key_color",
	},
	{
		name:     "JSON Values",
		scopes:   "source.json meta.mapping.value.json meta.string.json string.quoted.double.json",
		attrs:    []string{"JSON.PROPERTY_VALUE"},
		variable: "json_value_color",
	},
	{
		name:     "YAML Keys",
		scopes:   "source.yaml meta.mapping.key.yaml meta.string.yaml string.unquoted.plain.out.yaml, source.yaml meta.mapping.key.yaml meta.string.yaml string.quoted.double.yaml, source.yaml meta.mapping.key.yaml meta.string.yaml string.quoted.single.yaml",
		attrs:    []string{"YAML_SCALAR_KEY"},
		variable: "yaml_key_color",
	},
	{
		name:     "YAML Values",
		scopes:   "source.yaml meta.string.yaml string.unquoted.plain.out.yaml,source.yaml meta.string.yaml string.quoted.single.yaml, source.yaml meta.string.yaml string.quoted.double.yaml",
		attrs:    []string{"YAML_SCALAR_VALUE"},
		variable: "yaml_value_color",
	},
	{
		name:     "XML/HTML Tags",
		scopes:   "meta.tag, entity.name.tag, entity.name.tag.html, entity.name.tag.xml, entity.other.attribute-name, entity.other.attribute-name.html, entity.other.attribute-name.xml, string.quoted.double.xml, string.quoted.single.xml, string.quoted.double.html, string.quoted.single.html, punctuation.definition.tag, punctuation.definition.tag.html, punctuation.definition.tag.xml, meta.tag.preprocessor.xml, meta.tag.sgml, constant.character.entity.html, constant.character.entity.xml, punctuation.definition.entity.html, punctuation.definition.entity.xml, meta.tag.inline, meta.tag.block, meta.tag.other",
		attrs:    []string{"HTML_TAG"},
		variable: "tag_color",
	},
	{
		name:     "Annotations",
		scopes:   "variable.annotation, punctuation.definition.annotation, meta.annotation, storage.type.annotation, entity.name.function.annotation, keyword.other.annotation, support.type.annotation, meta.declaration.annotation, punctuation.definition.annotation.java, storage.modifier.annotation, entity.other.attribute-name.annotation",
		attrs:    []string{"DEFAULT_METADATA"},
		variable: "annotation_color",
	},
	{
		name:     "Markup/Markdown",
		scopes:   "markup.heading, markup.heading.1, markup.heading.2, markup.heading.3, markup.heading.4, markup.heading.5, markup.heading.6, markup.raw.inline, markup.raw.block, markup.underline.link, markup.bold, markup.italic, string.other.link.destination, punctuation.definition.heading.markdown, punctuation.definition.bold.markdown, punctuation.definition.italic.markdown",
		attrs:    []string{"MARKDOWN_HEADER_LEVEL_1", "MARKDOWN_HEADER_LEVEL_2", "MARKDOWN_HEADER_LEVEL_3", "MARKDOWN_HEADER_LEVEL_4", "MARKDOWN_HEADER_LEVEL_5", "MARKDOWN_HEADER_LEVEL_6", "MARKDOWN_CODE_SPAN", "MARKDOWN_CODE_BLOCK", "MARKDOWN_LINK_TEXT", "MARKDOWN_LINK_DESTINATION"},
		variable: "markup_color",
	},
	{
		name:     "CSS Selectors",
		scopes:   "entity.other.attribute-name.class.css, entity.other.attribute-name.id.css, entity.other.attribute-name.pseudo-class.css, entity.other.attribute-name.pseudo-element.css, support.type.property-name.css",
		attrs:    []string{"CSS.CLASS_NAME"},
		variable: "css_selector_color",
	},
	{
		name:     "RegExp",
		scopes:   "string.regexp, constant.character.character-class.regexp, constant.character.escape.regexp, keyword.operator.quantifier.regexp, punctuation.section.group.regexp, punctuation.section.character-class.regexp",
		attrs:    []string{"REGEXP.CHARACTER"},
		variable: "regexp_color",
	},
	{
		name:     "Errors/Invalid",
		scopes:   "invalid, invalid.illegal, invalid.deprecated, invalid.illegal.bad-character, invalid.deprecated.trailing-whitespace",
		attrs:    []string{"ERRORS_ATTRIBUTES"},
		variable: "error_color",
	},
	{
		name:     "Documentation",
		scopes:   "comment.documentation, keyword.other.documentation, variable.parameter.documentation, markup.other.documentation",
		attrs:    []string{"DEFAULT_DOC_COMMENT_TAG"},
		variable: "doc_color",
	},
}

// sublimePriorityAttrs may override a group color another attribute already
// supplied.
var sublimePriorityAttrs = map[string]bool{
	"DEFAULT_KEYWORD":              true,
	"DEFAULT_STRING":               true,
	"DEFAULT_FUNCTION_DECLARATION": true,
	"DEFAULT_IDENTIFIER":           true,
	"DEFAULT_COMMENT":              true,
	"DEFAULT_CONSTANT":             true,
}

// popupCSSRules styles mdpopups and LSP popups against the popup palette
// variables; buildPopupCSS prepends the html block that defines them.
const popupCSSRules = `
html, body {--background: var(--popups_background); border-radius: 2px;}
.mdpopups {--mdpopups-bg: var(--mdpopups_background); --mdpopups-hl-bg: var(--mdpopups_background); --mdpopups-hl-border: none; --mdpopups-link: var(--popup_cyanish);}
a {text-decoration: none; color: var(--popup_cyanish);}
.mdpopups .lsp_popup {--redish: var(--popup_redish); --yellowish: var(--popup_redish); --greenish: var(--popup_greenish); }
.mdpopups .lsp_popup a {color: var(--popup_cyanish);}
.mdpopups .bracket-highlighter .admonition.panel-error {--mdpopups-admon-error-accent: var(--mdpopups_background); --mdpopups-admon-info-accent: var(--mdpopups_background); --mdpopups-admon-warning-accent: var(--mdpopups_background); --mdpopups-admon-success-accent: var(--mdpopups_background);}
.mdpopups .bracket-highlighter .admonition.panel-error .admonition-title {--mdpopups-admon-error-accent: color(var(--popup_redish) alpha(0.25)); --mdpopups-admon-info-accent: color(var(--popup_cyanish) alpha(0.25)); --mdpopups-admon-warning-accent: color(var(--popup_yellowish) alpha(0.25)); --mdpopups-admon-success-accent: color(var(--popup_greenish) alpha(0.25));}
.mdpopups .bracket-highlighter { --mdpopups-admon-info-bg: var(--mdpopups_background); --mdpopups-admon-warning-bg: var(--mdpopups_background); --mdpopups-admon-warning-bg: var(--mdpopups_background); --mdpopups-admon-success-bg: var(--mdpopups_background);  --mdpopups-admon-error-bg: var(--mdpopups_background); --mdpopups-link: var(--cyanish);}
`

package main

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
}

func TestLoadPaletteFleet(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTestFile(t, fs, "theme.json", `{
		"meta": {"theme.name": "Midnight", "theme.kind": "Dark", "theme.version": 1},
		"colors": {"editor.text": "Text"},
		"textAttributes": {},
		"palette": {"Base": "#101010", "Text": "#EEEEEE"}
	}`)

	title, colors, background, err := loadPalette(fs, "theme.json")
	require.NoError(t, err)
	assert.Equal(t, "Midnight", title)
	assert.Equal(t, "#EEEEEE", colors["Text"])
	assert.Equal(t, "#101010", background)
}

func TestLoadPaletteSublime(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTestFile(t, fs, "scheme.sublime-color-scheme", `{
		"name": "Mariana",
		"variables": {"blue": "#5599ff", "accent": "var(blue)", "font_face": "monospace"},
		"globals": {"background": "#303841"},
		"rules": []
	}`)

	title, colors, background, err := loadPalette(fs, "scheme.sublime-color-scheme")
	require.NoError(t, err)
	assert.Equal(t, "Mariana", title)
	assert.Equal(t, "#5599FF", colors["accent"])
	assert.Equal(t, "#303841", background)
	_, hasFont := colors["font_face"]
	assert.False(t, hasFont)
}

func TestLoadPaletteZed(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTestFile(t, fs, "zed.json", `{
		"$schema": "https://zed.dev/schema/themes/v0.1.0.json",
		"name": "Dark Test",
		"author": "someone",
		"themes": [{
			"name": "Dark Test",
			"appearance": "dark",
			"style": {
				"background": "#2B2B2B",
				"text": "#A9B7C6",
				"players": [],
				"syntax": {}
			}
		}]
	}`)

	title, colors, background, err := loadPalette(fs, "zed.json")
	require.NoError(t, err)
	assert.Equal(t, "Dark Test", title)
	assert.Equal(t, "#A9B7C6", colors["text"])
	assert.Equal(t, "#2B2B2B", background)
	_, hasPlayers := colors["players"]
	assert.False(t, hasPlayers)
}

func TestLoadPaletteIntelliJ(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTestFile(t, fs, "dark.icls", `<scheme name="Dark" version="142">
		<colors>
			<option name="CARET_ROW_COLOR" value="323232"/>
		</colors>
		<attributes>
			<option name="TEXT">
				<value>
					<option name="FOREGROUND" value="a9b7c6"/>
					<option name="BACKGROUND" value="2b2b2b"/>
				</value>
			</option>
		</attributes>
	</scheme>`)

	title, colors, background, err := loadPalette(fs, "dark.icls")
	require.NoError(t, err)
	assert.Equal(t, "Dark", title)
	assert.Equal(t, "#323232", colors["CARET_ROW_COLOR"])
	assert.Equal(t, "#A9B7C6", colors["TEXT"])
	assert.Equal(t, "#2B2B2B", background)
}

func TestLoadPaletteUnrecognized(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTestFile(t, fs, "odd.json", `{"something": "else"}`)

	_, _, _, err := loadPalette(fs, "odd.json")
	require.Error(t, err)
}

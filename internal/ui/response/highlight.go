package response

import (
	"mime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/lexers"
)

// Bodies larger than this are shown without colors; tokenising them
// stalls the UI goroutine.
const maxHighlightBytes = 256 << 10

// lexerFor picks a lexer from the response media type, falling back to
// content sniffing and then plain text.
func lexerFor(contentType, text string) chroma.Lexer {
	var lexer chroma.Lexer
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		lexer = lexers.MatchMimeType(mediaType)
	}
	if lexer == nil {
		lexer = lexers.Analyse(text)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// tokenColorName maps token types to Fyne theme color names.
func tokenColorName(t chroma.TokenType) fyne.ThemeColorName {
	switch {
	case t == chroma.NameTag || t == chroma.NameAttribute:
		return theme.ColorNamePrimary
	case t.InSubCategory(chroma.LiteralString):
		return theme.ColorNameSuccess
	case t.InSubCategory(chroma.LiteralNumber):
		return theme.ColorNameWarning
	case t.InCategory(chroma.Keyword):
		return theme.ColorNameError
	case t.InCategory(chroma.Comment):
		return theme.ColorNameDisabled
	default:
		return theme.ColorNameForeground
	}
}

// highlight converts a response body into colored monospace RichText segments.
func highlight(text, contentType string) []widget.RichTextSegment {
	if text == "" {
		return nil
	}
	if len(text) > maxHighlightBytes {
		return []widget.RichTextSegment{segment(text, theme.ColorNameForeground)}
	}

	it, err := lexerFor(contentType, text).Tokenise(nil, text)
	if err != nil {
		return []widget.RichTextSegment{segment(text, theme.ColorNameForeground)}
	}

	var segments []widget.RichTextSegment
	var last *widget.TextSegment
	for _, tok := range it.Tokens() {
		colorName := tokenColorName(tok.Type)
		// Merge runs of the same color to keep the segment count down.
		if last != nil && last.Style.ColorName == colorName {
			last.Text += tok.Value
			continue
		}
		last = segment(tok.Value, colorName)
		segments = append(segments, last)
	}
	return segments
}

func segment(text string, colorName fyne.ThemeColorName) *widget.TextSegment {
	return &widget.TextSegment{
		Style: widget.RichTextStyle{
			ColorName: colorName,
			Inline:    true,
			SizeName:  theme.SizeNameText,
			TextStyle: fyne.TextStyle{Monospace: true},
		},
		Text: text,
	}
}

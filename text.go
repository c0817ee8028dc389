package gui

// TruncateText shortens text to fit maxWidth as measured by p, ending it with
// ".." when cut. When even ".." does not fit the result is "".
func TruncateText(p Painter, text string, maxWidth float32) string {
	return TruncateTextWithSuffix(p, text, maxWidth, "..")
}

// TruncateTextWithSuffix is TruncateText with a custom suffix.
func TruncateTextWithSuffix(p Painter, text string, maxWidth float32, suffix string) string {
	if p.MeasureText(text).X <= maxWidth {
		return text
	}
	target := maxWidth - p.MeasureText(suffix).X
	if target < 0 {
		return ""
	}
	runes := []rune(text)
	for len(runes) > 0 && p.MeasureText(string(runes)).X > target {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + suffix
}

package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按最大宽度（像素）换行
//
// 优先在空格处断行；单个单词超宽时按字符强制断行。
// face 为 nil 或 maxWidth <= 0 时原样返回。
func WrapText(s string, face text.Face, maxWidth float64) []string {
	if s == "" || face == nil || maxWidth <= 0 {
		return []string{s}
	}
	if measureTextWidth(s, face) <= maxWidth {
		return []string{s}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(s) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measureTextWidth(candidate, face) <= maxWidth {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		if measureTextWidth(word, face) <= maxWidth {
			current = word
			continue
		}

		// 超长单词
		for _, r := range word {
			next := current + string(r)
			if current != "" && measureTextWidth(next, face) > maxWidth {
				lines = append(lines, current)
				next = string(r)
			}
			current = next
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		lines = []string{s}
	}
	return lines
}

func measureTextWidth(s string, face text.Face) float64 {
	if s == "" {
		return 0
	}
	w, _ := text.Measure(s, face, 0)
	return w
}

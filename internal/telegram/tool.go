package telegram

import "regexp"

// escapeMarkdown 转义 Markdown 格式中的特殊字符
func escapeMarkdown(input string) string {
	specialChars := []struct {
		char   string
		escape string
	}{
		{"\\", "\\\\"},
		{"*", "\\*"},
		{"_", "\\_"},
		{"`", "\\`"},
		{"[", "\\["},
		{"]", "\\]"},
	}

	for _, sc := range specialChars {
		re := regexp.MustCompile(regexp.QuoteMeta(sc.char))
		input = re.ReplaceAllString(input, sc.escape)
	}

	return input
}

package service

import "strings"

// Messages holds the fixed toast texts for one locale.
type Messages struct {
	SuccessTitle string
	SuccessText  string
	FailureTitle string
	FailureText  string
}

const defaultLocale = "ja"

var messagesByLocale = map[string]Messages{
	"ja": {
		SuccessTitle: "成功",
		SuccessText:  "正常に制御できました．",
		FailureTitle: "失敗",
		FailureText:  "制御に失敗しました．",
	},
	"en": {
		SuccessTitle: "Success",
		SuccessText:  "Controlled successfully.",
		FailureTitle: "Failure",
		FailureText:  "Control failed.",
	},
}

// MessagesFor returns the texts for locale, falling back to Japanese.
func MessagesFor(locale string) Messages {
	if m, ok := messagesByLocale[strings.ToLower(strings.TrimSpace(locale))]; ok {
		return m
	}
	return messagesByLocale[defaultLocale]
}

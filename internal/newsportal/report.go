package newsportal

import (
	"fmt"
	"net/url"
	"strings"
)

// componentReplacer undoes the QueryEscape differences from a URI component
// encoder: spaces are %20 and !'()* stay literal.
var componentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeComponent(s string) string {
	return componentReplacer.Replace(url.QueryEscape(s))
}

// MailtoURL builds the compose link opened for an urgent tip.
func MailtoURL(mailbox, siteName string, r Report) string {
	subject := fmt.Sprintf("[%s 긴급 제보] %s", siteName, r.Title)
	body := fmt.Sprintf("제보자명: %s\n연락처: %s\n이메일: %s\n\n[내용]\n%s",
		r.Name, r.Phone, r.Email, r.Content)

	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		mailbox, encodeComponent(subject), encodeComponent(body))
}

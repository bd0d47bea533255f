package newsportal

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailtoURL(t *testing.T) {
	r := Report{
		Name:    "홍길동",
		Phone:   "010-1234-5678",
		Email:   "hong@example.com",
		Title:   "공장 화재 발생",
		Content: "오늘 오후 3시 A&B 공장에서",
	}

	got := MailtoURL("ai@aag.co.kr", "이노뉴스", r)

	require.True(t, strings.HasPrefix(got, "mailto:ai@aag.co.kr?subject="))
	assert.NotContains(t, got, "+")
	assert.NotContains(t, got, " ")
	assert.Contains(t, got, "%20")

	u, err := url.Parse(got)
	require.NoError(t, err)

	q, err := url.ParseQuery(u.RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "[이노뉴스 긴급 제보] 공장 화재 발생", q.Get("subject"))
	assert.Equal(t,
		"제보자명: 홍길동\n연락처: 010-1234-5678\n이메일: hong@example.com\n\n[내용]\n오늘 오후 3시 A&B 공장에서",
		q.Get("body"))
}

func TestEncodeComponent(t *testing.T) {
	assert.Equal(t, "a%20b%26c%3Dd", encodeComponent("a b&c=d"))
	assert.Equal(t, "%0A", encodeComponent("\n"))
	assert.Equal(t, "1%2B1", encodeComponent("1+1"))
	assert.Equal(t, "Hi%20(urgent)!", encodeComponent("Hi (urgent)!"))
	assert.Equal(t, "it's*-_.~", encodeComponent("it's*-_.~"))
	assert.Equal(t, "%25", encodeComponent("%"))
}

package email

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"
)

func TestSendDigestBuildsMIMEMessage(t *testing.T) {
	t.Parallel()

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	sender := NewSMTPSender("mail.example.com", 587, "user", "secret", "brief@example.com",
		[]string{"a@example.com", "b@example.com"})
	sender.send = func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	if err := sender.SendDigest(context.Background(), "Your 3 Things", "<p>Body</p>"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if gotAddr != "mail.example.com:587" || gotFrom != "brief@example.com" {
		t.Fatalf("unexpected addr/from: %s %s", gotAddr, gotFrom)
	}
	if len(gotTo) != 2 {
		t.Fatalf("expected 2 recipients, got %v", gotTo)
	}
	msg := string(gotMsg)
	if !strings.Contains(msg, "Subject: Your 3 Things\r\n") {
		t.Fatal("missing subject header")
	}
	if !strings.Contains(msg, "Content-Type: text/html") {
		t.Fatal("missing html content type")
	}
	if !strings.HasSuffix(msg, "\r\n<p>Body</p>") {
		t.Fatalf("body not separated from headers: %q", msg)
	}
}

func TestSendDigestPropagatesFailure(t *testing.T) {
	t.Parallel()

	sender := NewSMTPSender("mail.example.com", 587, "user", "secret", "brief@example.com", []string{"a@example.com"})
	sender.send = func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
		return errors.New("auth failed")
	}

	err := sender.SendDigest(context.Background(), "subject", "body")
	if err == nil || !strings.Contains(err.Error(), "auth failed") {
		t.Fatalf("expected wrapped auth error, got %v", err)
	}
}

func TestSendDigestRequiresRecipients(t *testing.T) {
	t.Parallel()

	sender := NewSMTPSender("mail.example.com", 587, "user", "secret", "brief@example.com", nil)
	if err := sender.SendDigest(context.Background(), "subject", "body"); err == nil {
		t.Fatal("expected error with no recipients")
	}
}

func TestBuildDigestHTML(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, 8, 28, 7, 0, 0, 0, time.UTC)
	items := []DigestItem{
		{
			Category:    "Macro & Economics",
			Title:       "Fed holds rates <again>",
			URL:         "https://example.com/fed",
			Source:      "example.com",
			PublishedAt: date,
			Summary:     "• Rates unchanged at 4.5%.\n• Two cuts still projected.\nSo what? Borrowing costs stay put.",
		},
	}

	html, err := BuildDigestHTML(date, items)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "Friday, August 28, 2026") {
		t.Fatal("missing date header")
	}
	if !strings.Contains(html, "Macro &amp; Economics") {
		t.Fatal("category label not escaped/rendered")
	}
	if !strings.Contains(html, "Fed holds rates &lt;again&gt;") {
		t.Fatal("title not escaped")
	}
	if !strings.Contains(html, "<strong>So what? Borrowing costs stay put.</strong>") {
		t.Fatal("takeaway line not emphasized")
	}
	if !strings.Contains(html, `href="https://example.com/fed"`) {
		t.Fatal("headline link missing")
	}
}

func TestSummaryHTMLSkipsBlankLines(t *testing.T) {
	t.Parallel()

	got := string(summaryHTML("line one\n\n\nline two"))
	if got != "line one<br>line two" {
		t.Fatalf("unexpected markup: %q", got)
	}
}

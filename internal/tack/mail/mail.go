// Package mail delivers the few transactional emails tack sends:
// verification codes, password reset links and workspace invites.
package mail

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Message is a rendered email.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string

	// Kind names the template, for logs and tests.
	Kind string
}

// Mailer delivers a rendered message.
type Mailer interface {
	Send(ctx context.Context, m Message) error
}

const (
	KindVerification  = "verification"
	KindPasswordReset = "password_reset"
	KindInvite        = "invite"
)

// Composer renders messages with links pointing at the web client.
type Composer struct {
	BaseURL string
}

func (c Composer) link(path string, query url.Values) string {
	base := strings.TrimRight(c.BaseURL, "/")
	if len(query) == 0 {
		return base + path
	}
	return base + path + "?" + query.Encode()
}

// Verification renders the email verification code message.
func (c Composer) Verification(to, name, code string, ttl time.Duration) Message {
	text := fmt.Sprintf("Hi %s,\n\nYour tack verification code is %s.\nIt expires in %s.\n", name, code, humanize(ttl))
	html := fmt.Sprintf("<p>Hi %s,</p><p>Your tack verification code is <strong>%s</strong>.</p><p>It expires in %s.</p>",
		escape(name), code, humanize(ttl))
	return Message{To: to, Subject: "Verify your tack account", Text: text, HTML: html, Kind: KindVerification}
}

// PasswordReset renders the reset link message.
func (c Composer) PasswordReset(to, name, token string, ttl time.Duration) Message {
	link := c.link("/reset-password", url.Values{"token": {token}})
	text := fmt.Sprintf("Hi %s,\n\nReset your tack password here: %s\nThe link expires in %s. If you did not ask for this, ignore this email.\n",
		name, link, humanize(ttl))
	html := fmt.Sprintf("<p>Hi %s,</p><p><a href=\"%s\">Reset your tack password</a>. The link expires in %s.</p><p>If you did not ask for this, ignore this email.</p>",
		escape(name), link, humanize(ttl))
	return Message{To: to, Subject: "Reset your tack password", Text: text, HTML: html, Kind: KindPasswordReset}
}

// Invite renders a workspace invitation.
func (c Composer) Invite(to, inviter, workspace, role, token string, ttl time.Duration) Message {
	link := c.link("/invites/"+url.PathEscape(token), nil)
	text := fmt.Sprintf("%s invited you to join %s on tack as %s.\nAccept here: %s\nThe invite expires in %s.\n",
		inviter, workspace, strings.ToLower(role), link, humanize(ttl))
	html := fmt.Sprintf("<p>%s invited you to join <strong>%s</strong> on tack as %s.</p><p><a href=\"%s\">Accept the invite</a>. It expires in %s.</p>",
		escape(inviter), escape(workspace), strings.ToLower(role), link, humanize(ttl))
	return Message{To: to, Subject: fmt.Sprintf("You're invited to %s on tack", workspace), Text: text, HTML: html, Kind: KindInvite}
}

func humanize(d time.Duration) string {
	switch {
	case d >= 24*time.Hour && d%(24*time.Hour) == 0:
		n := int(d / (24 * time.Hour))
		return plural(n, "day")
	case d >= time.Hour && d%time.Hour == 0:
		return plural(int(d/time.Hour), "hour")
	default:
		return plural(int(d/time.Minute), "minute")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&#39;")

func escape(s string) string { return htmlEscaper.Replace(s) }

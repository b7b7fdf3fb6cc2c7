package notify

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/threatwatch/threatwatch/pkg/domain"
)

// digestTmpl renders the HTML body of a digest covering all qualifying
// articles since the subscriber's last successful notification
var digestTmpl = template.Must(template.New("digest").Parse(`<html>
<body style="font-family:sans-serif">
<h2>Security alerts{{if .Name}} for {{.Name}}{{end}}</h2>
<p>{{len .Articles}} new alert{{if ne (len .Articles) 1}}s{{end}} since your last digest.</p>
{{range .Articles}}
<div style="margin-bottom:16px">
  <h3>[{{.Severity}}] {{.Title}}</h3>
  <p>{{.Summary}}</p>
  {{if .CVE}}<p><b>{{.CVE}}</b></p>{{end}}
  {{if .Link}}<p><a href="{{.Link}}">Read more</a></p>{{end}}
</div>
{{end}}
<hr>
<p style="font-size:12px;color:#666">
You receive this because you subscribed to Threatwatch alerts.
<a href="{{.UnsubscribeURL}}">Unsubscribe</a>
</p>
</body>
</html>`))

// digestData is the template payload for a digest message
type digestData struct {
	Name           string
	Articles       []*domain.Article
	UnsubscribeURL string
}

// RenderDigest builds the outbound digest message for a subscriber.
// All articles for one window fold into a single message to bound
// email volume.
func RenderDigest(sub *domain.Subscription, articles []*domain.Article, baseURL string) (Message, error) {
	unsubscribeURL := fmt.Sprintf("%s/api/v1/subscriptions/unsubscribe?token=%s", baseURL, sub.Token)

	var html strings.Builder
	err := digestTmpl.Execute(&html, digestData{
		Name:           sub.Name,
		Articles:       articles,
		UnsubscribeURL: unsubscribeURL,
	})
	if err != nil {
		return Message{}, fmt.Errorf("render digest: %w", err)
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Security alerts - %d new\n\n", len(articles))
	for _, a := range articles {
		fmt.Fprintf(&text, "[%s] %s\n", strings.ToUpper(string(a.Severity)), a.Title)
		if a.Summary != "" {
			fmt.Fprintf(&text, "%s\n", a.Summary)
		}
		if a.CVE != "" {
			fmt.Fprintf(&text, "%s\n", a.CVE)
		}
		if a.Link != "" {
			fmt.Fprintf(&text, "%s\n", a.Link)
		}
		text.WriteString("\n")
	}
	fmt.Fprintf(&text, "Unsubscribe: %s\n", unsubscribeURL)

	subject := fmt.Sprintf("Security digest: %d new alert", len(articles))
	if len(articles) != 1 {
		subject += "s"
	}
	if top := mostSevere(articles); top != nil && top.Severity == domain.SeverityCritical {
		subject = fmt.Sprintf("CRITICAL: %s", top.Title)
	}

	return Message{
		To:      sub.Email,
		Subject: subject,
		Text:    text.String(),
		HTML:    html.String(),
		Headers: map[string]string{
			// one-click unsubscribe for list-compliance
			"List-Unsubscribe":      fmt.Sprintf("<%s>", unsubscribeURL),
			"List-Unsubscribe-Post": "List-Unsubscribe=One-Click",
		},
	}, nil
}

// RenderVerification builds the email asking a new subscriber to
// confirm their address
func RenderVerification(sub *domain.Subscription, baseURL string) Message {
	verifyURL := fmt.Sprintf("%s/api/v1/subscriptions/verify?token=%s", baseURL, sub.Token)

	text := fmt.Sprintf(`Hello%s,

Confirm your Threatwatch alert subscription by opening this link:

%s

The link expires at %s. If you didn't request this subscription you can ignore this message.
`, nameSuffix(sub.Name), verifyURL, sub.TokenExpires.Format(time.RFC1123))

	return Message{
		To:      sub.Email,
		Subject: "Confirm your security alert subscription",
		Text:    text,
	}
}

// RenderAlreadySubscribed builds the notice sent when a verified
// subscriber re-submits; preferences were updated in place
func RenderAlreadySubscribed(sub *domain.Subscription) Message {
	text := fmt.Sprintf(`Hello%s,

Your Threatwatch alert preferences were updated. You are already verified, so no further action is needed.
`, nameSuffix(sub.Name))

	return Message{
		To:      sub.Email,
		Subject: "Your alert preferences were updated",
		Text:    text,
	}
}

// RenderManagementLink builds the single-use management-link email
func RenderManagementLink(sub *domain.Subscription, baseURL string) Message {
	manageURL := fmt.Sprintf("%s/manage?token=%s", baseURL, sub.Token)

	text := fmt.Sprintf(`Hello%s,

Manage your Threatwatch alert subscription with this single-use link:

%s

The link expires at %s and replaces any previously issued link.
`, nameSuffix(sub.Name), manageURL, sub.TokenExpires.Format(time.RFC1123))

	return Message{
		To:      sub.Email,
		Subject: "Manage your security alert subscription",
		Text:    text,
	}
}

// RenderAdminNotice builds the fire-and-forget copy relayed to the
// admin address on new submissions
func RenderAdminNotice(adminEmail, kind, from string) Message {
	return Message{
		To:      adminEmail,
		Subject: fmt.Sprintf("New %s submission", kind),
		Text:    fmt.Sprintf("New %s submission from %s at %s\n", kind, from, time.Now().UTC().Format(time.RFC1123)),
	}
}

// RenderContactMessage relays a contact-form message to the admin
// address
func RenderContactMessage(adminEmail, from, name, body string) Message {
	if name == "" {
		name = "anonymous"
	}
	return Message{
		To:      adminEmail,
		Subject: fmt.Sprintf("Contact message from %s", from),
		Text:    fmt.Sprintf("From: %s <%s>\nReceived: %s\n\n%s\n", name, from, time.Now().UTC().Format(time.RFC1123), body),
	}
}

func nameSuffix(name string) string {
	if name == "" {
		return ""
	}
	return " " + name
}

// mostSevere returns the article with the lowest severity rank
func mostSevere(articles []*domain.Article) *domain.Article {
	var top *domain.Article
	for _, a := range articles {
		if top == nil || a.Severity.Rank() < top.Severity.Rank() {
			top = a
		}
	}
	return top
}

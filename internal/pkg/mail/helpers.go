package mail

import (
	"bytes"
	"html/template"
)

var waitlistWelcomeTmpl = template.Must(template.New("waitlist_welcome").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #1f2937; max-width: 560px; margin: 0 auto;">
  <h2>You're on the list</h2>
  <p>Thanks for joining the {{.SiteName}} waitlist. We'll email you the moment your access is ready.</p>
  <p>In the meantime, keep an eye on <a href="{{.SiteURL}}">{{.SiteURL}}</a> for product updates.</p>
  <p style="color: #6b7280; font-size: 13px;">If you didn't sign up, you can ignore this email.</p>
</body>
</html>`))

// SendWaitlistWelcome sends the post-signup welcome email. Errors are
// returned for logging only; signup never depends on delivery.
func (s *Sender) SendWaitlistWelcome(to, siteName, siteURL string) error {
	var html bytes.Buffer
	err := waitlistWelcomeTmpl.Execute(&html, map[string]string{
		"SiteName": siteName,
		"SiteURL":  siteURL,
	})
	if err != nil {
		return err
	}

	return s.Send(Message{
		To:      []string{to},
		Subject: "Welcome to the " + siteName + " waitlist",
		HTML:    html.String(),
	})
}

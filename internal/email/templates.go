package email

import "fmt"

// BroadcastHTML returns the HTML body for a subscriber broadcast.
// The message is rendered as supplied by the admin; link, when
// non-empty, becomes a call-to-action button.
func BroadcastHTML(appName, message, link string) string {
	cta := ""
	if link != "" {
		cta = fmt.Sprintf(`<a href="%s" style="display:inline-block;background-color:#db2777;color:white;padding:10px 20px;text-decoration:none;border-radius:5px;margin-top:10px;">Check it out</a>`, link)
	}

	return fmt.Sprintf(`<div style="font-family:sans-serif;max-width:600px;margin:0 auto;">
<h2 style="color:#db2777;">%s Update</h2>
<p>%s</p>
%s
<hr style="border:0;border-top:1px solid #eee;margin:20px 0;">
<p style="font-size:12px;color:#888;">You are receiving this because you subscribed to %s updates.</p>
</div>`, appName, message, cta, appName)
}

// BroadcastText returns the plain-text fallback for a subscriber broadcast.
func BroadcastText(appName, message, link string) string {
	body := fmt.Sprintf("%s Update\n\n%s\n", appName, message)
	if link != "" {
		body += fmt.Sprintf("\nCheck it out: %s\n", link)
	}
	body += fmt.Sprintf("\nYou are receiving this because you subscribed to %s updates.", appName)
	return body
}

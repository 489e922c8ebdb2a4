package site

import "fmt"

// analyticsSnippet returns the script block injected into page heads for a
// tracking ID, or an empty string when the repository has no ID configured.
func analyticsSnippet(trackingID string) string {
	if trackingID == "" {
		return ""
	}
	return fmt.Sprintf(`<script async src="https://www.googletagmanager.com/gtag/js?id=%s"></script>
    <script>
      window.dataLayer = window.dataLayer || [];
      function gtag(){dataLayer.push(arguments);}
      gtag('js', new Date());
      gtag('config', '%s');
    </script>`, trackingID, trackingID)
}

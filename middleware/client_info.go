package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	ua "github.com/mileusna/useragent"
)

// ClientInfoMiddleware logs each request together with the parsed
// browser, OS, device class and preferred language of the client.
func ClientInfoMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		browser, osName, device := parseUserAgent(c.Request.UserAgent())
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = "unknown"
		}

		log.Printf("%s %s %d %s [%s / %s / %s lang=%s]",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			browser, osName, device, lang,
		)
	}
}

func parseUserAgent(userAgent string) (browser, osName, device string) {
	if userAgent == "" {
		return "Unknown Browser", "Unknown OS", "Desktop"
	}

	parsed := ua.Parse(userAgent)

	browser = parsed.Name
	if browser == "" {
		browser = "Unknown Browser"
	}

	osName = parsed.OS
	if osName == "" {
		osName = "Unknown OS"
	}

	device = "Desktop"
	if parsed.Mobile {
		device = "Mobile"
	} else if parsed.Tablet {
		device = "Tablet"
	}

	return browser, osName, device
}

// Package botdetect classifies User-Agent strings as crawlers.
//
// The locale resolution middleware uses it to keep crawlers out of the
// redirect/cookie machinery: a flagged request is served the default locale
// with no side effects, so crawl budgets are never spent on 302s and indexed
// URLs never depend on a crawler's synthetic Accept-Language header.
package botdetect

import "regexp"

// botPattern matches known crawlers plus generic automation markers, grouped
// as: search engines, social link-preview fetchers, SEO/monitoring tools,
// generic markers. The bare `bot` alternative requires a trailing word
// boundary so "robot" matches while "robotics" does not; a leading boundary
// is deliberately absent for the same reason.
var botPattern = regexp.MustCompile(`(?i)(` +
	`googlebot|bingbot|yandex|baiduspider|duckduckbot|slurp|sogou|applebot|` +
	`facebookexternalhit|twitterbot|linkedinbot|whatsapp|telegrambot|slackbot|discordbot|pinterestbot|` +
	`ahrefsbot|semrushbot|mj12bot|dotbot|petalbot|screaming frog|uptimerobot|pingdom|lighthouse|gtmetrix|` +
	`bot\b|crawler|spider|scraper|headless|phantomjs|puppeteer|playwright|selenium|python-requests|curl|wget` +
	`)`)

// IsBot reports whether the User-Agent string identifies a crawler.
// It is pure and total: matching is case-insensitive and an empty or absent
// User-Agent is not a bot.
func IsBot(userAgent string) bool {
	if userAgent == "" {
		return false
	}
	return botPattern.MatchString(userAgent)
}

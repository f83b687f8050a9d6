package content

// Curated block-page phrases, grouped by cause. These are data, not logic:
// tune the lists here without touching the detector.
var blockPhrases = []string{
	// JavaScript / cookie requirements
	"please enable javascript",
	"javascript is disabled",
	"javascript is required",
	"enable javascript and cookies",
	"please enable cookies",
	"cookies are disabled",
	"your browser does not support javascript",
	"turn on javascript",

	// Ad-blocker detection
	"disable your ad blocker",
	"turn off your ad blocker",
	"ad blocker detected",
	"adblock detected",
	"whitelist our site",
	"please disable adblock",

	// Subscription / paywall
	"subscribe to continue",
	"subscribe to read",
	"subscription required",
	"subscribers only",
	"already a subscriber",
	"this article is for subscribers",
	"sign in to continue",
	"log in to continue reading",
	"register to continue",
	"create a free account to continue",
	"become a member to read",
	"you have reached your article limit",
	"you've reached your free article limit",
	"unlock this article",
	"to continue reading this article",

	// Bot verification / CAPTCHA
	"verify you are human",
	"verify that you are not a robot",
	"confirm you are not a robot",
	"complete the captcha",
	"complete the security check",
	"checking your browser",
	"unusual traffic from your network",
	"automated requests",
	"are you a robot",
	"press and hold the button",

	// Geographic restriction
	"not available in your region",
	"not available in your country",
	"unavailable in your location",
	"access denied based on your location",

	// Rate limiting / outright denial
	"too many requests",
	"rate limit exceeded",
	"access to this page has been denied",
	"your access has been blocked",
	"403 forbidden",
}

// Weak indicators only become meaningful on short pages, where several of
// them co-occurring is a reliable block signal.
var weakIndicators = []string{
	"javascript",
	"cookies",
	"subscribe",
	"sign in",
	"log in",
	"blocked",
	"denied",
	"robot",
}

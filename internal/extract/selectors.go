package extract

// Selectors for the map-search UI. The surface is a single fixed query
// page, so these live here rather than in configuration.
const (
	// Result list (virtualized feed of listing cards).
	selResultFeed = "div[role='feed']"
	selResultItem = "div[role='feed'] div[role='article']"

	// Detail pane fields.
	selName        = "h1"
	selAddress     = "button[data-item-id='address'] div[class*='fontBodyMedium']"
	selPhone       = "button[data-item-id*='phone:tel:'] div[class*='fontBodyMedium']"
	selWebsite     = "a[data-item-id='authority']"
	selRatingLabel = "div[role='img'][aria-label*='stars']"
	selReviewCount = "span[aria-label*='reviews']"

	// Text-anchored tab controls, matched by contained text the way the
	// UI labels them.
	xpAboutTab   = "//button[contains(., 'About')]"
	xpHoursTab   = "//button[contains(., 'Hours')]"
	xpReviewsTab = "//button[contains(., 'Reviews')]"

	// Review feed (same role='feed' container, different content).
	selReviewCard = "div[role='feed'] div[data-review-id]"
)

package teams

import (
	"net/url"
	"strconv"
)

// defaultPageSize matches the server's page size for the team listing.
const defaultPageSize = 10

// nextPageNumber extracts the page query parameter from a next-page URL.
// A next URL without a parseable page parameter is treated as pointing at
// page 2, which keeps the derived current page at 1.
func nextPageNumber(pageURL string) int {
	u, err := url.Parse(pageURL)
	if err != nil {
		return 2
	}

	n, err := strconv.Atoi(u.Query().Get("page"))
	if err != nil || n < 1 {
		return 2
	}
	return n
}

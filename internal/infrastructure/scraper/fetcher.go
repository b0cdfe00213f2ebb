// Package scraper retrieves store listings from a mall's public directory
// page. It is the only component that talks to the outside network.
package scraper

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/halemalu/mall-directory-services/api/internal/public/domain"
)

// DefaultUserAgent is sent with every page request. Some directory hosts
// refuse requests without a browser-looking agent.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_9_3) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/35.0.1916.47 Safari/537.36"

// Selectors are the CSS hooks that identify tenant cards on the directory
// page. The defaults match the markup the skill was built against.
type Selectors struct {
	Card     string
	Name     string
	Hours    string
	Location string
}

// DefaultSelectors returns the tenant-card selectors for the standard
// directory page layout.
func DefaultSelectors() Selectors {
	return Selectors{
		Card:     "div.directory-tenant-card",
		Name:     ".tenant-info-row:first-of-type",
		Hours:    ".tenant-hours-container",
		Location: ".tenant-location-container",
	}
}

// FetchError reports a failed directory page retrieval. The pipeline maps
// it to an empty result; admin refresh surfaces it to the operator.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// TenantFetcher scrapes Store records from a directory page with colly.
type TenantFetcher struct {
	logger    *log.Logger
	selectors Selectors
	userAgent string
	timeout   time.Duration
}

// NewTenantFetcher creates a fetcher with the given request timeout.
// A zero timeout falls back to ten seconds.
func NewTenantFetcher(logger *log.Logger, selectors Selectors, userAgent string, timeout time.Duration) *TenantFetcher {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &TenantFetcher{
		logger:    logger,
		selectors: selectors,
		userAgent: userAgent,
		timeout:   timeout,
	}
}

// Fetch retrieves the directory page and extracts one Store per tenant
// card. Cards missing a name or an hours row are dropped: both fields are
// required on every record downstream.
func (f *TenantFetcher) Fetch(ctx context.Context, pageURL string) ([]domain.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	collector := colly.NewCollector(colly.UserAgent(f.userAgent))
	collector.SetRequestTimeout(f.timeout)

	fetchedAt := time.Now().UTC()
	var stores []domain.Store
	var fetchErr *FetchError

	collector.OnHTML(f.selectors.Card, func(card *colly.HTMLElement) {
		name := strings.TrimSpace(card.ChildText(f.selectors.Name))
		hours := strings.TrimSpace(card.ChildText(f.selectors.Hours))
		if name == "" || hours == "" {
			f.logger.Printf("skipping tenant card without name or hours on %s", pageURL)
			return
		}
		stores = append(stores, domain.Store{
			Name:      name,
			Hours:     hours,
			Location:  strings.TrimSpace(card.ChildText(f.selectors.Location)),
			LogoURL:   card.ChildAttr("img", "src"),
			FetchedAt: fetchedAt,
		})
	})

	collector.OnError(func(response *colly.Response, err error) {
		fetchErr = &FetchError{URL: pageURL, Status: response.StatusCode, Err: err}
	})

	if err := collector.Visit(pageURL); err != nil {
		if fetchErr != nil {
			return nil, fetchErr
		}
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	collector.Wait()

	if fetchErr != nil {
		return nil, fetchErr
	}
	return stores, nil
}

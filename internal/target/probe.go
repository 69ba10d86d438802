// -----------------------------------------------------------------------
// Target Probe - Reachability check and static page diagnosis
// -----------------------------------------------------------------------

package target

import (
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/udara780/IT23265660/internal/common"
	"github.com/udara780/IT23265660/internal/locator"
)

// NewHTTPClient creates a plain HTTP client with a timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}

// Surface is what the static locator cascade found for one role in the
// fetched HTML. Found=false is a warning, not an error: hydrated pages
// often only reveal their fields to live in-browser discovery.
type Surface struct {
	Role     locator.Role
	Found    bool
	Strategy string
	Element  string
}

// Diagnosis is the result of a static probe of the target page.
type Diagnosis struct {
	URL        string
	StatusCode int
	Surfaces   []Surface
}

// Reachable checks the target answers HTTP at all. Any status code
// counts: the page content is the browser suite's concern, the probe only
// guards against running scenarios with no network path to the target.
func Reachable(client *http.Client, baseURL, userAgent string) error {
	resp, err := fetch(client, baseURL, userAgent)
	if err != nil {
		return fmt.Errorf("target %s not reachable: %w", baseURL, err)
	}
	resp.Body.Close()

	common.GetLogger().Debug().
		Str("url", baseURL).
		Int("status", resp.StatusCode).
		Msg("Target answered")
	return nil
}

// Probe fetches the target page and runs the locator cascade over its
// static HTML, reporting what each role resolved to. Purely diagnostic:
// live discovery inside the browser remains the authority during
// scenarios.
func Probe(client *http.Client, baseURL, userAgent string) (*Diagnosis, error) {
	resp, err := fetch(client, baseURL, userAgent)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", baseURL, err)
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", baseURL, err)
	}

	d := &Diagnosis{
		URL:        baseURL,
		StatusCode: resp.StatusCode,
	}
	for _, role := range []locator.Role{locator.RoleInput, locator.RoleOutput} {
		el, strategy, found := locator.DiscoverStatic(doc, role)
		s := Surface{
			Role:     role,
			Found:    found,
			Strategy: strategy,
		}
		if found {
			s.Element = locator.Describe(el)
		}
		d.Surfaces = append(d.Surfaces, s)
	}

	return d, nil
}

func fetch(client *http.Client, url, userAgent string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	return client.Do(req)
}

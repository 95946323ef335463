// Package synth composes synthetic browser identities by mixing attribute
// groups from independently sampled catalog templates. A synthetic identity
// is never an exact copy of any recorded template: its screen and hardware
// groups come from templates other than the one supplying the base identity,
// widening the observable cross-product beyond any single recorded set.
package synth

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jinshan6677-spec/fpgen/internal/catalog"
	"github.com/jinshan6677-spec/fpgen/internal/sample"
)

var (
	// ErrNoTemplates is returned when the requested OS/browser pool is empty.
	ErrNoTemplates = errors.New("no templates available")
	// ErrNoBrowsers is returned when a random browser is requested for an OS
	// that has no recorded browsers.
	ErrNoBrowsers = errors.New("no browsers available")
	// ErrCombinationsExhausted is returned when no unseen combination could
	// be drawn within the attempt budget.
	ErrCombinationsExhausted = errors.New("combination space exhausted")
)

// maxAttempts bounds the collision-retry loop. The combination space is the
// cubed pool size, so hitting this bound means the space is saturated and
// the caller should clear used combinations.
const maxAttempts = 100

// Sources records which template supplied each attribute group.
type Sources struct {
	Base     string `json:"base"`
	Screen   string `json:"screen"`
	Hardware string `json:"hardware"`
}

// Identity is one composed synthetic browser identity.
type Identity struct {
	ID             string           `json:"id"`
	OS             string           `json:"os"`
	Browser        string           `json:"browser"`
	UserAgent      string           `json:"userAgent"`
	Platform       string           `json:"platform"`
	Vendor         string           `json:"vendor"`
	BrowserVersion string           `json:"browserVersion"`
	MajorVersion   int              `json:"majorVersion"`
	OSVersion      string           `json:"osVersion"`
	WebGL          catalog.WebGL    `json:"webgl"`
	Fonts          []string         `json:"fonts"`
	Screen         catalog.Screen   `json:"screen"`
	Hardware       catalog.Hardware `json:"hardware"`
	Synthetic      bool             `json:"synthetic"`
	CombinationKey string           `json:"combinationKey"`
	Sources        Sources          `json:"sources"`
}

// Request scopes one generation call. Empty OS or Browser means "choose
// uniformly at random from the catalog's keys"; a nil Seed means draws are
// non-deterministic.
type Request struct {
	OS      string
	Browser string
	Seed    *uint32
}

// Composer generates synthetic identities from a catalog store. The used
// combination set lives for the composer's lifetime and is not synchronized;
// one logical caller drives generation at a time.
type Composer struct {
	store *catalog.Store
	used  map[string]struct{}
}

// NewComposer creates a Composer over the given store.
func NewComposer(store *catalog.Store) *Composer {
	return &Composer{
		store: store,
		used:  map[string]struct{}{},
	}
}

// Generate composes one synthetic identity. Three weighted draws share one
// random source: the base template from the OS+browser pool, then screen and
// hardware donors each from the OS-wide pool across all browsers. If the
// resulting combination was already emitted, the draw is retried with the
// seed perturbed by one per attempt, up to maxAttempts.
func (c *Composer) Generate(req Request) (*Identity, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		var src sample.Source
		if req.Seed != nil {
			src = sample.NewLCG(*req.Seed + uint32(attempt))
		} else {
			src = sample.Ambient()
		}

		id, err := c.compose(req.OS, req.Browser, src)
		if err != nil {
			return nil, err
		}
		if _, seen := c.used[id.CombinationKey]; seen {
			continue
		}
		c.used[id.CombinationKey] = struct{}{}
		return id, nil
	}
	return nil, fmt.Errorf("%w after %d attempts", ErrCombinationsExhausted, maxAttempts)
}

func (c *Composer) compose(osName, browser string, src sample.Source) (*Identity, error) {
	if osName == "" {
		key, ok := sample.Uniform(c.store.OSKeys(), src)
		if !ok {
			return nil, ErrNoTemplates
		}
		osName = key
	}
	if browser == "" {
		key, ok := sample.Uniform(c.store.BrowserKeys(osName), src)
		if !ok {
			return nil, fmt.Errorf("%w for os %q", ErrNoBrowsers, osName)
		}
		browser = key
	}

	base, ok := sample.Weighted(c.store.ByOSAndBrowser(osName, browser), (*catalog.Template).EffectiveWeight, src)
	if !ok {
		return nil, fmt.Errorf("%w for %s/%s", ErrNoTemplates, osName, browser)
	}

	// Screen and hardware donors come from the whole OS, not just the
	// requested browser. Non-empty: the base pool is a subset of it.
	osPool := c.store.ByOS(osName)
	screenDonor, _ := sample.Weighted(osPool, (*catalog.Template).EffectiveWeight, src)
	hardwareDonor, _ := sample.Weighted(osPool, (*catalog.Template).EffectiveWeight, src)

	return &Identity{
		ID:             uuid.NewString(),
		OS:             base.OS,
		Browser:        base.Browser,
		UserAgent:      base.UserAgent,
		Platform:       base.Platform,
		Vendor:         base.Vendor,
		BrowserVersion: base.BrowserVersion,
		MajorVersion:   base.MajorVersion,
		OSVersion:      base.OSVersion,
		WebGL:          base.WebGL,
		Fonts:          base.Fonts,
		Screen:         screenDonor.Screen,
		Hardware:       hardwareDonor.Hardware,
		Synthetic:      true,
		CombinationKey: fmt.Sprintf("%s|%s|%s", base.ID, screenDonor.ID, hardwareDonor.ID),
		Sources: Sources{
			Base:     base.ID,
			Screen:   screenDonor.ID,
			Hardware: hardwareDonor.ID,
		},
	}, nil
}

// ClearUsedCombinations empties the used set, allowing previously emitted
// combinations to recur. Intended for long-running processes that would
// otherwise saturate a small combination space.
func (c *Composer) ClearUsedCombinations() {
	clear(c.used)
}

// UsedCombinations reports how many distinct combinations were emitted since
// the last clear.
func (c *Composer) UsedCombinations() int {
	return len(c.used)
}

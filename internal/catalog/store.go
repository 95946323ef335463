package catalog

import (
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jinshan6677-spec/fpgen/internal/sample"
	"github.com/jinshan6677-spec/fpgen/internal/weights"
)

// Store owns one OS→Browser→Template catalog. Assembly happens lazily on
// first read: built-in seed templates, then the optional augmentation
// document, then weight-override rules. Augmentation and override input is
// advisory — any read or parse failure is logged and skipped so the catalog
// always comes up (fail-open).
//
// Loading is guarded by sync.Once; everything past that point assumes one
// logical caller at a time, matching the engine's single-driver design.
// Hosts calling in from multiple goroutines must serialize access.
type Store struct {
	augmentData  []byte
	augmentPath  string
	overrideData []byte
	overridePath string
	seed         map[string]map[string][]*Template
	once         sync.Once
	catalog      map[string]map[string][]*Template
	validate     *validator.Validate
}

// Option configures a Store before first load.
type Option func(*Store)

// WithAugment supplies an inline JSON augmentation document that is appended
// to the built-in catalog at load time. Takes precedence over
// WithAugmentFile.
func WithAugment(doc []byte) Option {
	return func(s *Store) { s.augmentData = doc }
}

// WithAugmentFile points the store at a JSON augmentation document that is
// appended to the built-in catalog at load time.
func WithAugmentFile(path string) Option {
	return func(s *Store) { s.augmentPath = path }
}

// WithOverrides supplies an inline JSON weight-override document. Takes
// precedence over WithOverridesFile.
func WithOverrides(doc []byte) Option {
	return func(s *Store) { s.overrideData = doc }
}

// WithOverridesFile points the store at a JSON weight-override document.
func WithOverridesFile(path string) Option {
	return func(s *Store) { s.overridePath = path }
}

// WithSeedData replaces the built-in seed templates. Intended for tests that
// need a fully controlled catalog.
func WithSeedData(doc *Document) Option {
	return func(s *Store) { s.seed = doc.Fingerprints }
}

// New creates a Store. Nothing is loaded until the first read operation.
func New(opts ...Option) *Store {
	s := &Store{
		seed:     builtinTemplates,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) load() {
	s.catalog = make(map[string]map[string][]*Template, len(s.seed))
	for os, browsers := range s.seed {
		bucket := make(map[string][]*Template, len(browsers))
		for browser, tpls := range browsers {
			list := make([]*Template, 0, len(tpls))
			for _, t := range tpls {
				c := t.Clone()
				c.OS = strings.ToLower(os)
				c.Browser = strings.ToLower(browser)
				list = append(list, c)
			}
			bucket[strings.ToLower(browser)] = list
		}
		s.catalog[strings.ToLower(os)] = bucket
	}

	switch {
	case len(s.augmentData) > 0:
		doc, err := ParseDocument(s.augmentData)
		if err != nil {
			slog.Warn("skipping inline catalog augmentation", "error", err)
		} else {
			slog.Debug("catalog augmented", "added", s.merge(doc))
		}
	case s.augmentPath != "":
		doc, err := LoadDocumentFile(s.augmentPath)
		if err != nil {
			slog.Warn("skipping catalog augmentation", "path", s.augmentPath, "error", err)
		} else {
			slog.Debug("catalog augmented", "path", s.augmentPath, "added", s.merge(doc))
		}
	}

	s.applyOverrides()
}

func (s *Store) applyOverrides() {
	var (
		doc weights.Document
		err error
	)
	switch {
	case len(s.overrideData) > 0:
		doc, err = weights.Parse(s.overrideData)
	case s.overridePath != "":
		doc, err = weights.LoadFile(s.overridePath)
	default:
		return
	}
	if err != nil {
		slog.Warn("skipping weight overrides", "error", err)
		return
	}

	for os, browsers := range s.catalog {
		for browser, tpls := range browsers {
			spec := doc.Bucket(os, browser)
			if spec == nil {
				continue
			}
			for _, t := range tpls {
				t.Weight = spec.Resolve(t.MajorVersion, t.BrowserVersion, t.Weight)
			}
		}
	}
}

func (s *Store) ensure() {
	s.once.Do(s.load)
}

// ByOS returns every template recorded for an OS, across all browsers.
// Browsers iterate in sorted order so results are reproducible. Unknown
// keys yield an empty slice.
func (s *Store) ByOS(os string) []*Template {
	s.ensure()
	browsers, ok := s.catalog[strings.ToLower(os)]
	if !ok {
		return nil
	}
	var out []*Template
	for _, browser := range slices.Sorted(maps.Keys(browsers)) {
		for _, t := range browsers[browser] {
			out = append(out, t.Clone())
		}
	}
	return out
}

// ByBrowser returns every template recorded for a browser, across all
// operating systems, in sorted OS order.
func (s *Store) ByBrowser(browser string) []*Template {
	s.ensure()
	key := strings.ToLower(browser)
	var out []*Template
	for _, os := range slices.Sorted(maps.Keys(s.catalog)) {
		for _, t := range s.catalog[os][key] {
			out = append(out, t.Clone())
		}
	}
	return out
}

// ByOSAndBrowser returns one bucket's templates in recorded order.
func (s *Store) ByOSAndBrowser(os, browser string) []*Template {
	s.ensure()
	browsers, ok := s.catalog[strings.ToLower(os)]
	if !ok {
		return nil
	}
	tpls := browsers[strings.ToLower(browser)]
	out := make([]*Template, 0, len(tpls))
	for _, t := range tpls {
		out = append(out, t.Clone())
	}
	return out
}

// All returns the whole catalog in sorted OS/browser order.
func (s *Store) All() []*Template {
	s.ensure()
	var out []*Template
	for _, os := range slices.Sorted(maps.Keys(s.catalog)) {
		out = append(out, s.ByOS(os)...)
	}
	return out
}

// OSKeys lists the operating systems present in the catalog, sorted.
func (s *Store) OSKeys() []string {
	s.ensure()
	return slices.Sorted(maps.Keys(s.catalog))
}

// BrowserKeys lists the browsers recorded for an OS, sorted. Unknown OS
// yields an empty slice.
func (s *Store) BrowserKeys(os string) []string {
	s.ensure()
	browsers, ok := s.catalog[strings.ToLower(os)]
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(browsers))
}

// Query filters the catalog. Zero values leave a dimension unconstrained;
// major-version bounds are inclusive; GPUVendor is a case-insensitive
// substring match against the WebGL vendor and unmasked vendor strings.
type Query struct {
	OS        string
	Browser   string
	MinMajor  int
	MaxMajor  int
	GPUVendor string
}

// Search returns every template matching the query.
func (s *Store) Search(q Query) []*Template {
	s.ensure()

	var pool []*Template
	switch {
	case q.OS != "" && q.Browser != "":
		pool = s.ByOSAndBrowser(q.OS, q.Browser)
	case q.OS != "":
		pool = s.ByOS(q.OS)
	case q.Browser != "":
		pool = s.ByBrowser(q.Browser)
	default:
		pool = s.All()
	}

	vendor := strings.ToLower(q.GPUVendor)
	var out []*Template
	for _, t := range pool {
		if q.MinMajor > 0 && t.MajorVersion < q.MinMajor {
			continue
		}
		if q.MaxMajor > 0 && t.MajorVersion > q.MaxMajor {
			continue
		}
		if vendor != "" &&
			!strings.Contains(strings.ToLower(t.WebGL.Vendor), vendor) &&
			!strings.Contains(strings.ToLower(t.WebGL.UnmaskedVendor), vendor) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Random draws one template from the pool selected by the optional OS and
// browser filters, weighted by each template's effective weight. ok is false
// when the pool is empty.
func (s *Store) Random(os, browser string, src sample.Source) (*Template, bool) {
	pool := s.Search(Query{OS: os, Browser: browser})
	return sample.Weighted(pool, (*Template).EffectiveWeight, src)
}

// Import merges an augmentation document into the live catalog. Templates
// whose id already exists in their bucket are skipped, so importing the same
// document twice adds nothing the second time. Returns the number of newly
// added templates.
func (s *Store) Import(doc *Document) int {
	s.ensure()
	return s.merge(doc)
}

func (s *Store) merge(doc *Document) int {
	if doc == nil {
		return 0
	}
	added := 0
	for os, browsers := range doc.Fingerprints {
		osKey := strings.ToLower(os)
		for browser, tpls := range browsers {
			browserKey := strings.ToLower(browser)
			for _, t := range tpls {
				if t == nil {
					continue
				}
				if err := s.validate.Struct(t); err != nil {
					slog.Warn("skipping invalid template", "os", osKey, "browser", browserKey, "id", t.ID, "error", err)
					continue
				}
				if s.hasID(osKey, browserKey, t.ID) {
					continue
				}
				c := t.Clone()
				c.OS = osKey
				c.Browser = browserKey
				if s.catalog[osKey] == nil {
					s.catalog[osKey] = map[string][]*Template{}
				}
				s.catalog[osKey][browserKey] = append(s.catalog[osKey][browserKey], c)
				added++
			}
		}
	}
	return added
}

func (s *Store) hasID(os, browser, id string) bool {
	for _, t := range s.catalog[os][browser] {
		if t.ID == id {
			return true
		}
	}
	return false
}

// Export snapshots the live catalog in augmentation-document shape.
func (s *Store) Export() *Document {
	s.ensure()
	doc := &Document{Fingerprints: make(map[string]map[string][]*Template, len(s.catalog))}
	for os, browsers := range s.catalog {
		bucket := make(map[string][]*Template, len(browsers))
		for browser, tpls := range browsers {
			list := make([]*Template, 0, len(tpls))
			for _, t := range tpls {
				list = append(list, t.Clone())
			}
			bucket[browser] = list
		}
		doc.Fingerprints[os] = bucket
	}
	return doc
}

// Statistics aggregates catalog counts.
type Statistics struct {
	Total     int            `json:"total"`
	ByOS      map[string]int `json:"byOS"`
	ByBrowser map[string]int `json:"byBrowser"`
}

// Statistics counts templates over the whole catalog.
func (s *Store) Statistics() Statistics {
	s.ensure()
	stats := Statistics{
		ByOS:      map[string]int{},
		ByBrowser: map[string]int{},
	}
	for os, browsers := range s.catalog {
		for browser, tpls := range browsers {
			stats.Total += len(tpls)
			stats.ByOS[os] += len(tpls)
			stats.ByBrowser[browser] += len(tpls)
		}
	}
	return stats
}

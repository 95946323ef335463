package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jinshan6677-spec/fpgen/internal/sample"
)

func testSeed() *Document {
	return &Document{
		Fingerprints: map[string]map[string][]*Template{
			"windows": {
				"chrome": {
					{
						ID: "wc-1", OS: "windows", Browser: "chrome",
						UserAgent: "ua-wc-1", BrowserVersion: "121.0.6167.85", MajorVersion: 121, Weight: 1,
						WebGL:  WebGL{UnmaskedVendor: "Google Inc. (NVIDIA)"},
						Screen: Screen{Width: 1920, Height: 1080, ColorDepth: 24, PixelRatio: 1},
					},
					{
						ID: "wc-2", OS: "windows", Browser: "chrome",
						UserAgent: "ua-wc-2", BrowserVersion: "123.0.0.0", MajorVersion: 123, Weight: 1,
						WebGL:  WebGL{UnmaskedVendor: "Google Inc. (Intel)"},
						Screen: Screen{Width: 2560, Height: 1440, ColorDepth: 24, PixelRatio: 1},
					},
				},
				"firefox": {
					{
						ID: "wf-1", OS: "windows", Browser: "firefox",
						UserAgent: "ua-wf-1", BrowserVersion: "130.0", MajorVersion: 130, Weight: 1,
						WebGL: WebGL{UnmaskedVendor: "AMD"},
					},
				},
			},
			"macos": {
				"safari": {
					{
						ID: "ms-1", OS: "macos", Browser: "safari",
						UserAgent: "ua-ms-1", BrowserVersion: "17.5", MajorVersion: 17, Weight: 2,
						WebGL: WebGL{UnmaskedVendor: "Apple Inc."},
					},
				},
			},
		},
	}
}

func TestFreshStoresAgree(t *testing.T) {
	a := New().ByOSAndBrowser("windows", "chrome")
	b := New().ByOSAndBrowser("windows", "chrome")

	require.NotEmpty(t, a)
	require.Equal(t, len(a), len(b))
	for i := range a {
		require.Equal(t, a[i], b[i], "template %d differs between fresh stores", i)
	}
}

func TestLookupKeyNormalization(t *testing.T) {
	s := New(WithSeedData(testSeed()))

	require.Len(t, s.ByOSAndBrowser("Windows", "Chrome"), 2)
	require.Len(t, s.ByOS("WINDOWS"), 3)
	require.Len(t, s.ByBrowser("Firefox"), 1)

	require.Empty(t, s.ByOSAndBrowser("beos", "chrome"))
	require.Empty(t, s.ByOS("beos"))
	require.Empty(t, s.ByBrowser("netscape"))
}

func TestLookupReturnsCopies(t *testing.T) {
	s := New(WithSeedData(testSeed()))

	got := s.ByOSAndBrowser("windows", "chrome")
	got[0].UserAgent = "mutated"
	got[0].Weight = 999

	again := s.ByOSAndBrowser("windows", "chrome")
	require.Equal(t, "ua-wc-1", again[0].UserAgent)
	require.Equal(t, 1.0, again[0].Weight)
}

func TestSearch(t *testing.T) {
	s := New(WithSeedData(testSeed()))

	byBounds := s.Search(Query{OS: "windows", Browser: "chrome", MinMajor: 122, MaxMajor: 123})
	require.Len(t, byBounds, 1)
	require.Equal(t, "wc-2", byBounds[0].ID)

	byVendor := s.Search(Query{GPUVendor: "nvidia"})
	require.Len(t, byVendor, 1)
	require.Equal(t, "wc-1", byVendor[0].ID)

	require.Empty(t, s.Search(Query{OS: "windows", MinMajor: 500}))
	require.Empty(t, s.Search(Query{OS: "amiga"}))
}

func TestRandomDeterministic(t *testing.T) {
	s := New(WithSeedData(testSeed()))

	a, ok := s.Random("windows", "chrome", sample.NewLCG(7))
	require.True(t, ok)
	b, ok := s.Random("windows", "chrome", sample.NewLCG(7))
	require.True(t, ok)
	require.Equal(t, a.ID, b.ID)

	_, ok = s.Random("amiga", "", sample.NewLCG(7))
	require.False(t, ok)
}

func TestImportIdempotence(t *testing.T) {
	s := New(WithSeedData(testSeed()))
	before := s.Statistics().Total

	doc := &Document{
		Fingerprints: map[string]map[string][]*Template{
			"windows": {
				"chrome": {
					{ID: "wc-new", OS: "windows", Browser: "chrome", UserAgent: "ua-new", MajorVersion: 124},
				},
			},
			"linux": {
				"chrome": {
					{ID: "lc-1", OS: "linux", Browser: "chrome", UserAgent: "ua-lc-1", MajorVersion: 125},
				},
			},
		},
	}

	require.Equal(t, 2, s.Import(doc))
	require.Equal(t, before+2, s.Statistics().Total)

	require.Equal(t, 0, s.Import(doc))
	require.Equal(t, before+2, s.Statistics().Total)
}

func TestImportSkipsInvalidTemplates(t *testing.T) {
	s := New(WithSeedData(testSeed()))

	doc := &Document{
		Fingerprints: map[string]map[string][]*Template{
			"windows": {
				"chrome": {
					{ID: "wc-missing-ua", OS: "windows", Browser: "chrome"},
					nil,
					{ID: "wc-ok", OS: "windows", Browser: "chrome", UserAgent: "ua-ok"},
				},
			},
		},
	}

	require.Equal(t, 1, s.Import(doc))
}

func TestExportRoundTrip(t *testing.T) {
	s := New(WithSeedData(testSeed()))
	exported := s.Export()

	other := New(WithSeedData(&Document{Fingerprints: map[string]map[string][]*Template{}}))
	require.Equal(t, s.Statistics().Total, other.Import(exported))
	require.Equal(t, s.ByOSAndBrowser("windows", "chrome"), other.ByOSAndBrowser("windows", "chrome"))
}

func TestStatistics(t *testing.T) {
	s := New(WithSeedData(testSeed()))
	stats := s.Statistics()

	require.Equal(t, 4, stats.Total)
	require.Equal(t, 3, stats.ByOS["windows"])
	require.Equal(t, 1, stats.ByOS["macos"])
	require.Equal(t, 2, stats.ByBrowser["chrome"])
	require.Equal(t, 1, stats.ByBrowser["firefox"])
	require.Equal(t, 1, stats.ByBrowser["safari"])
}

func TestKeys(t *testing.T) {
	s := New(WithSeedData(testSeed()))
	require.Equal(t, []string{"macos", "windows"}, s.OSKeys())
	require.Equal(t, []string{"chrome", "firefox"}, s.BrowserKeys("windows"))
	require.Empty(t, s.BrowserKeys("beos"))
}

func TestAugmentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "augment.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"fingerprints": {
			"windows": {
				"chrome": [
					{"id": "wc-aug", "os": "windows", "browser": "chrome", "userAgent": "ua-aug", "majorVersion": 126}
				]
			}
		}
	}`), 0o644))

	s := New(WithSeedData(testSeed()), WithAugmentFile(path))
	require.Len(t, s.ByOSAndBrowser("windows", "chrome"), 3)
}

func TestAugmentInline(t *testing.T) {
	s := New(WithSeedData(testSeed()), WithAugment([]byte(`{
		"fingerprints": {
			"windows": {
				"chrome": [
					{"id": "wc-inline", "os": "windows", "browser": "chrome", "userAgent": "ua-inline", "majorVersion": 127}
				]
			}
		}
	}`)))
	require.Len(t, s.ByOSAndBrowser("windows", "chrome"), 3)
}

func TestAugmentInlineWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "augment.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"fingerprints": {
			"windows": {
				"chrome": [
					{"id": "wc-file", "os": "windows", "browser": "chrome", "userAgent": "ua-file", "majorVersion": 126}
				]
			}
		}
	}`), 0o644))

	s := New(WithSeedData(testSeed()), WithAugment([]byte(`{
		"fingerprints": {
			"windows": {
				"chrome": [
					{"id": "wc-inline", "os": "windows", "browser": "chrome", "userAgent": "ua-inline", "majorVersion": 127}
				]
			}
		}
	}`)), WithAugmentFile(path))

	tpls := s.ByOSAndBrowser("windows", "chrome")
	require.Len(t, tpls, 3)
	ids := map[string]bool{}
	for _, tpl := range tpls {
		ids[tpl.ID] = true
	}
	require.True(t, ids["wc-inline"])
	require.False(t, ids["wc-file"])
}

func TestAugmentInlineFailOpen(t *testing.T) {
	s := New(WithSeedData(testSeed()), WithAugment([]byte("{broken")))
	require.Equal(t, 4, s.Statistics().Total)
}

func TestAugmentFileFailOpen(t *testing.T) {
	s := New(WithSeedData(testSeed()), WithAugmentFile(filepath.Join(t.TempDir(), "missing.json")))
	require.Equal(t, 4, s.Statistics().Total)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{broken"), 0o644))
	s = New(WithSeedData(testSeed()), WithAugmentFile(bad))
	require.Equal(t, 4, s.Statistics().Total)
}

func TestOverridesApplied(t *testing.T) {
	s := New(WithSeedData(testSeed()), WithOverrides([]byte(`{
		"windows": {
			"chrome": {
				"majors": {"121": 50},
				"majorRanges": [{"range": ">=123", "weight": 10}]
			}
		}
	}`)))

	tpls := s.ByOSAndBrowser("windows", "chrome")
	byID := map[string]float64{}
	for _, tpl := range tpls {
		byID[tpl.ID] = tpl.Weight
	}
	require.Equal(t, 50.0, byID["wc-1"])
	require.Equal(t, 10.0, byID["wc-2"])

	// Buckets without a spec keep their recorded weights.
	require.Equal(t, 1.0, s.ByOSAndBrowser("windows", "firefox")[0].Weight)
}

func TestOverridesFailOpen(t *testing.T) {
	s := New(WithSeedData(testSeed()), WithOverrides([]byte("{broken")))
	require.Equal(t, 1.0, s.ByOSAndBrowser("windows", "chrome")[0].Weight)
}

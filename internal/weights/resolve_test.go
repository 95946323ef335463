package weights

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolvePrecedence(t *testing.T) {
	spec := &Spec{
		Majors:          map[string]float64{"121": 50},
		MajorRanges:     []RangeRule{{Range: ">=123", Weight: 10}},
		VersionPrefixes: []PrefixRule{{Prefix: "121.", Weight: 5}},
	}

	// majors beats prefixes for 121, ranges claim 123 and above.
	require.Equal(t, 50.0, spec.Resolve(121, "121.0.6167.85", 1))
	require.Equal(t, 10.0, spec.Resolve(123, "123.0.0.0", 1))
	require.Equal(t, 10.0, spec.Resolve(130, "130.0.0.0", 1))
	// 122 matches neither majors, ranges, nor the "121." prefix.
	require.Equal(t, 1.0, spec.Resolve(122, "122.0.0.0", 1))
}

func TestResolveLegacyKeysWinFirst(t *testing.T) {
	spec := &Spec{
		Legacy: map[string]float64{"121": 7, "121.0.6167.85": 3},
		Majors: map[string]float64{"121": 50},
	}

	require.Equal(t, 7.0, spec.Resolve(121, "121.0.6167.85", 1))

	// Without a major match, the exact version-string legacy key applies.
	spec.Legacy = map[string]float64{"121.0.6167.85": 3}
	require.Equal(t, 3.0, spec.Resolve(121, "121.0.6167.85", 1))
	require.Equal(t, 50.0, spec.Resolve(121, "121.0.9999.0", 1))
}

func TestResolveVersionsBeforeRanges(t *testing.T) {
	spec := &Spec{
		Versions:    map[string]float64{"124.0.1": 9},
		MajorRanges: []RangeRule{{Range: ">=120", Weight: 2}},
	}
	require.Equal(t, 9.0, spec.Resolve(124, "124.0.1", 1))
	require.Equal(t, 2.0, spec.Resolve(124, "124.0.2", 1))
}

func TestResolveDefaultAndUnchanged(t *testing.T) {
	spec := &Spec{Default: 4}
	require.Equal(t, 4.0, spec.Resolve(99, "99.0", 2))

	spec = &Spec{}
	require.Equal(t, 2.0, spec.Resolve(99, "99.0", 2))
	require.Equal(t, 1.0, spec.Resolve(99, "99.0", 0))
	require.Equal(t, 1.0, spec.Resolve(99, "99.0", -5))
}

func TestResolveScale(t *testing.T) {
	spec := &Spec{Default: 3, Scale: 1.5}
	// 3 * 1.5 = 4.5, rounded to nearest.
	require.Equal(t, 5.0, spec.Resolve(99, "99.0", 1))

	spec = &Spec{Default: 1, Scale: 0.1}
	// 0.1 rounds to 0, floored at 1.
	require.Equal(t, 1.0, spec.Resolve(99, "99.0", 1))

	spec = &Spec{Default: 3, Scale: 0}
	require.Equal(t, 3.0, spec.Resolve(99, "99.0", 1))
}

func TestMatchMajorRange(t *testing.T) {
	cases := []struct {
		expr  string
		major int
		want  bool
	}{
		{"100-110", 100, true},
		{"100-110", 110, true},
		{"100-110", 99, false},
		{"100-110", 111, false},
		{">=123", 123, true},
		{">=123", 200, true},
		{">=123", 122, false},
		{">123", 124, true},
		{">123", 123, false},
		{"<=123", 123, true},
		{"<=123", 124, false},
		{"<123", 122, true},
		{"<123", 123, false},
		{"==121", 121, true},
		{"==121", 122, false},
		{"123", 123, true},
		{"123", 124, false},
		{" >= 123 ", 123, true},
		{"garbage", 123, false},
		{">=123", 0, false},
		{">=123", -1, false},
	}
	for _, c := range cases {
		require.Equal(t, c.want, matchMajorRange(c.expr, c.major), "expr %q major %d", c.expr, c.major)
	}
}

func TestParseDocument(t *testing.T) {
	doc, err := Parse([]byte(`{
		"Windows": {
			"Chrome": {
				"121": 50,
				"121.0.6167.85": 7,
				"majors": {"122": 20},
				"versions": {"123.0.1": 11},
				"majorRanges": [{"range": ">=130", "weight": 10}, {"range": "100-110", "weight": 2}],
				"versionPrefixes": [{"prefix": "121.", "weight": 5}],
				"default": 3,
				"scale": 2
			}
		}
	}`))
	require.NoError(t, err)

	spec := doc.Bucket("windows", "chrome")
	require.NotNil(t, spec)
	require.Equal(t, 50.0, spec.Legacy["121"])
	require.Equal(t, 7.0, spec.Legacy["121.0.6167.85"], "dotted legacy keys must survive parsing")
	require.Equal(t, 20.0, spec.Majors["122"])
	require.Equal(t, 11.0, spec.Versions["123.0.1"])
	require.Equal(t, []RangeRule{{Range: ">=130", Weight: 10}, {Range: "100-110", Weight: 2}}, spec.MajorRanges)
	require.Equal(t, []PrefixRule{{Prefix: "121.", Weight: 5}}, spec.VersionPrefixes)
	require.Equal(t, 3.0, spec.Default)
	require.Equal(t, 2.0, spec.Scale)

	// Keys are case-normalized on lookup.
	require.NotNil(t, doc.Bucket("WINDOWS", "Chrome"))
	require.Nil(t, doc.Bucket("macos", "chrome"))
}

func TestParseMalformedEntriesDegrade(t *testing.T) {
	doc, err := Parse([]byte(`{
		"windows": {
			"chrome": {
				"majors": "not a map",
				"majorRanges": [{"range": ">=130"}, "junk", {"range": ">=120", "weight": 4}],
				"default": "high"
			},
			"firefox": 12
		},
		"linux": "nope"
	}`))
	require.NoError(t, err)

	spec := doc.Bucket("windows", "chrome")
	require.NotNil(t, spec)
	require.Empty(t, spec.Majors)
	require.Equal(t, []RangeRule{{Range: ">=120", Weight: 4}}, spec.MajorRanges)
	require.Zero(t, spec.Default)

	require.Nil(t, doc.Bucket("windows", "firefox"))
	require.Nil(t, doc.Bucket("linux", "chrome"))
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	require.Error(t, err)
}

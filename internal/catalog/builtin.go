package catalog

// Built-in seed templates, one list per OS/browser bucket. Values are drawn
// from recorded sessions; list order is stable so freshly constructed
// catalogs always agree.

var builtinTemplates = map[string]map[string][]*Template{
	"windows": {
		"chrome": {
			{
				ID: "win-chrome-001", OS: "windows", Browser: "chrome",
				UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
				Platform:       "Win32",
				Vendor:         "Google Inc.",
				BrowserVersion: "131.0.0.0",
				MajorVersion:   131,
				Weight:         2,
				OSVersion:      "10.0",
				WebGL: WebGL{
					Vendor:           "WebKit",
					Renderer:         "WebKit WebGL",
					UnmaskedVendor:   "Google Inc. (Intel)",
					UnmaskedRenderer: "ANGLE (Intel, Intel(R) UHD Graphics 630 Direct3D11 vs_5_0 ps_5_0, D3D11)",
				},
				Screen:   Screen{Width: 1920, Height: 1080, ColorDepth: 24, PixelRatio: 1},
				Hardware: Hardware{CPUCores: 8, DeviceMemory: 8, MaxTouchPoints: 0},
				Fonts:    []string{"Arial", "Calibri", "Cambria", "Consolas", "Segoe UI", "Tahoma", "Times New Roman", "Verdana"},
			},
			{
				ID: "win-chrome-002", OS: "windows", Browser: "chrome",
				UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/132.0.0.0 Safari/537.36",
				Platform:       "Win32",
				Vendor:         "Google Inc.",
				BrowserVersion: "132.0.0.0",
				MajorVersion:   132,
				Weight:         3,
				OSVersion:      "10.0",
				WebGL: WebGL{
					Vendor:           "WebKit",
					Renderer:         "WebKit WebGL",
					UnmaskedVendor:   "Google Inc. (NVIDIA)",
					UnmaskedRenderer: "ANGLE (NVIDIA, NVIDIA GeForce GTX 1650 Direct3D11 vs_5_0 ps_5_0, D3D11)",
				},
				Screen:   Screen{Width: 2560, Height: 1440, ColorDepth: 24, PixelRatio: 1},
				Hardware: Hardware{CPUCores: 12, DeviceMemory: 16, MaxTouchPoints: 0},
				Fonts:    []string{"Arial", "Calibri", "Cambria", "Consolas", "Georgia", "Segoe UI", "Times New Roman", "Verdana"},
			},
			{
				ID: "win-chrome-003", OS: "windows", Browser: "chrome",
				UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/133.0.0.0 Safari/537.36",
				Platform:       "Win32",
				Vendor:         "Google Inc.",
				BrowserVersion: "133.0.0.0",
				MajorVersion:   133,
				Weight:         3,
				OSVersion:      "11.0",
				WebGL: WebGL{
					Vendor:           "WebKit",
					Renderer:         "WebKit WebGL",
					UnmaskedVendor:   "Google Inc. (NVIDIA)",
					UnmaskedRenderer: "ANGLE (NVIDIA, NVIDIA GeForce RTX 3060 Direct3D11 vs_5_0 ps_5_0, D3D11)",
				},
				Screen:   Screen{Width: 1536, Height: 864, ColorDepth: 24, PixelRatio: 1.25},
				Hardware: Hardware{CPUCores: 16, DeviceMemory: 16, MaxTouchPoints: 0},
				Fonts:    []string{"Arial", "Calibri", "Consolas", "Courier New", "Segoe UI", "Segoe UI Emoji", "Tahoma", "Verdana"},
			},
			{
				ID: "win-chrome-004", OS: "windows", Browser: "chrome",
				UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
				Platform:       "Win32",
				Vendor:         "Google Inc.",
				BrowserVersion: "131.0.0.0",
				MajorVersion:   131,
				Weight:         1,
				OSVersion:      "10.0",
				WebGL: WebGL{
					Vendor:           "WebKit",
					Renderer:         "WebKit WebGL",
					UnmaskedVendor:   "Google Inc. (Intel)",
					UnmaskedRenderer: "ANGLE (Intel, Intel(R) UHD Graphics 770 Direct3D11 vs_5_0 ps_5_0, D3D11)",
				},
				Screen:   Screen{Width: 1366, Height: 768, ColorDepth: 24, PixelRatio: 1},
				Hardware: Hardware{CPUCores: 4, DeviceMemory: 4, MaxTouchPoints: 0},
				Fonts:    []string{"Arial", "Calibri", "Segoe UI", "Tahoma", "Times New Roman", "Verdana"},
			},
		},
		"firefox": {
			{
				ID: "win-firefox-001", OS: "windows", Browser: "firefox",
				UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:133.0) Gecko/20100101 Firefox/133.0",
				Platform:       "Win32",
				Vendor:         "",
				BrowserVersion: "133.0",
				MajorVersion:   133,
				Weight:         2,
				OSVersion:      "10.0",
				WebGL: WebGL{
					Vendor:           "Mozilla",
					Renderer:         "Mozilla",
					UnmaskedVendor:   "Google Inc. (Intel)",
					UnmaskedRenderer: "ANGLE (Intel, Intel(R) UHD Graphics 630 Direct3D11 vs_5_0 ps_5_0)",
				},
				Screen:   Screen{Width: 1920, Height: 1080, ColorDepth: 24, PixelRatio: 1},
				Hardware: Hardware{CPUCores: 8, DeviceMemory: 8, MaxTouchPoints: 0},
				Fonts:    []string{"Arial", "Calibri", "Consolas", "Courier New", "Segoe UI", "Times New Roman", "Verdana"},
			},
			{
				ID: "win-firefox-002", OS: "windows", Browser: "firefox",
				UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:134.0) Gecko/20100101 Firefox/134.0",
				Platform:       "Win32",
				Vendor:         "",
				BrowserVersion: "134.0",
				MajorVersion:   134,
				Weight:         1,
				OSVersion:      "10.0",
				WebGL: WebGL{
					Vendor:           "Mozilla",
					Renderer:         "Mozilla",
					UnmaskedVendor:   "Google Inc. (NVIDIA)",
					UnmaskedRenderer: "ANGLE (NVIDIA, NVIDIA GeForce GTX 1650 Direct3D11 vs_5_0 ps_5_0)",
				},
				Screen:   Screen{Width: 1680, Height: 1050, ColorDepth: 24, PixelRatio: 1},
				Hardware: Hardware{CPUCores: 12, DeviceMemory: 16, MaxTouchPoints: 0},
				Fonts:    []string{"Arial", "Cambria", "Consolas", "Georgia", "Segoe UI", "Tahoma", "Verdana"},
			},
		},
		"edge": {
			{
				ID: "win-edge-001", OS: "windows", Browser: "edge",
				UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36 Edg/131.0.2903.86",
				Platform:       "Win32",
				Vendor:         "Google Inc.",
				BrowserVersion: "131.0.2903.86",
				MajorVersion:   131,
				Weight:         1,
				OSVersion:      "11.0",
				WebGL: WebGL{
					Vendor:           "WebKit",
					Renderer:         "WebKit WebGL",
					UnmaskedVendor:   "Google Inc. (Intel)",
					UnmaskedRenderer: "ANGLE (Intel, Intel(R) UHD Graphics 630 Direct3D11 vs_5_0 ps_5_0, D3D11)",
				},
				Screen:   Screen{Width: 1920, Height: 1080, ColorDepth: 24, PixelRatio: 1},
				Hardware: Hardware{CPUCores: 8, DeviceMemory: 8, MaxTouchPoints: 0},
				Fonts:    []string{"Arial", "Calibri", "Cambria", "Segoe UI", "Tahoma", "Times New Roman", "Verdana"},
			},
		},
	},
	"macos": {
		"chrome": {
			{
				ID: "mac-chrome-001", OS: "macos", Browser: "chrome",
				UserAgent:      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/132.0.0.0 Safari/537.36",
				Platform:       "MacIntel",
				Vendor:         "Google Inc.",
				BrowserVersion: "132.0.0.0",
				MajorVersion:   132,
				Weight:         2,
				OSVersion:      "14.5",
				WebGL: WebGL{
					Vendor:           "WebKit",
					Renderer:         "WebKit WebGL",
					UnmaskedVendor:   "Google Inc. (Apple)",
					UnmaskedRenderer: "ANGLE (Apple, Apple M1, OpenGL 4.1)",
				},
				Screen:   Screen{Width: 2560, Height: 1600, ColorDepth: 30, PixelRatio: 2},
				Hardware: Hardware{CPUCores: 8, DeviceMemory: 8, MaxTouchPoints: 0},
				Fonts:    []string{"Arial", "Avenir", "Geneva", "Helvetica", "Helvetica Neue", "Menlo", "Monaco", "San Francisco"},
			},
			{
				ID: "mac-chrome-002", OS: "macos", Browser: "chrome",
				UserAgent:      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/133.0.0.0 Safari/537.36",
				Platform:       "MacIntel",
				Vendor:         "Google Inc.",
				BrowserVersion: "133.0.0.0",
				MajorVersion:   133,
				Weight:         1,
				OSVersion:      "13.6",
				WebGL: WebGL{
					Vendor:           "WebKit",
					Renderer:         "WebKit WebGL",
					UnmaskedVendor:   "Google Inc. (Intel Inc.)",
					UnmaskedRenderer: "ANGLE (Intel Inc., Intel Iris Plus Graphics, OpenGL 4.1)",
				},
				Screen:   Screen{Width: 1440, Height: 900, ColorDepth: 30, PixelRatio: 2},
				Hardware: Hardware{CPUCores: 4, DeviceMemory: 8, MaxTouchPoints: 0},
				Fonts:    []string{"Arial", "Avenir", "Geneva", "Helvetica", "Helvetica Neue", "Menlo", "Monaco"},
			},
		},
		"safari": {
			{
				ID: "mac-safari-001", OS: "macos", Browser: "safari",
				UserAgent:      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Safari/605.1.15",
				Platform:       "MacIntel",
				Vendor:         "Apple Computer, Inc.",
				BrowserVersion: "17.5",
				MajorVersion:   17,
				Weight:         2,
				OSVersion:      "14.5",
				WebGL: WebGL{
					Vendor:           "WebKit",
					Renderer:         "WebKit WebGL",
					UnmaskedVendor:   "Apple Inc.",
					UnmaskedRenderer: "Apple GPU",
				},
				Screen:   Screen{Width: 2560, Height: 1600, ColorDepth: 30, PixelRatio: 2},
				Hardware: Hardware{CPUCores: 8, DeviceMemory: 8, MaxTouchPoints: 0},
				Fonts:    []string{"Arial", "Avenir", "Geneva", "Helvetica", "Helvetica Neue", "Lucida Grande", "Menlo", "Monaco"},
			},
		},
	},
	"linux": {
		"chrome": {
			{
				ID: "linux-chrome-001", OS: "linux", Browser: "chrome",
				UserAgent:      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/132.0.0.0 Safari/537.36",
				Platform:       "Linux x86_64",
				Vendor:         "Google Inc.",
				BrowserVersion: "132.0.0.0",
				MajorVersion:   132,
				Weight:         1,
				OSVersion:      "6.12",
				WebGL: WebGL{
					Vendor:           "WebKit",
					Renderer:         "WebKit WebGL",
					UnmaskedVendor:   "Google Inc. (Intel)",
					UnmaskedRenderer: "ANGLE (Intel, Mesa Intel(R) UHD Graphics 630 (CFL GT2), OpenGL 4.6)",
				},
				Screen:   Screen{Width: 1920, Height: 1080, ColorDepth: 24, PixelRatio: 1},
				Hardware: Hardware{CPUCores: 8, DeviceMemory: 16, MaxTouchPoints: 0},
				Fonts:    []string{"Cantarell", "DejaVu Sans", "DejaVu Sans Mono", "Liberation Mono", "Liberation Sans", "Noto Sans", "Ubuntu"},
			},
		},
		"firefox": {
			{
				ID: "linux-firefox-001", OS: "linux", Browser: "firefox",
				UserAgent:      "Mozilla/5.0 (X11; Linux x86_64; rv:133.0) Gecko/20100101 Firefox/133.0",
				Platform:       "Linux x86_64",
				Vendor:         "",
				BrowserVersion: "133.0",
				MajorVersion:   133,
				Weight:         1,
				OSVersion:      "6.12",
				WebGL: WebGL{
					Vendor:           "Mozilla",
					Renderer:         "Mozilla",
					UnmaskedVendor:   "AMD",
					UnmaskedRenderer: "AMD Radeon RX 6600 (radeonsi, navi23, LLVM 17.0.6)",
				},
				Screen:   Screen{Width: 1920, Height: 1080, ColorDepth: 24, PixelRatio: 1},
				Hardware: Hardware{CPUCores: 12, DeviceMemory: 16, MaxTouchPoints: 0},
				Fonts:    []string{"Cantarell", "DejaVu Sans", "DejaVu Serif", "Liberation Sans", "Noto Sans", "Ubuntu", "Ubuntu Mono"},
			},
		},
	},
}

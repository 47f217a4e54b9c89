//go:build unit

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strings"
	"testing"
	"time"

	"golang-devtools/internal/mock"
	"golang-devtools/internal/pkg/config"
	"golang-devtools/internal/pkg/geo"
	"golang-devtools/internal/pkg/qr"
	"golang-devtools/internal/pkg/subnet"
	"golang-devtools/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	geo    *mock.MockGeoReporter
	qr     *mock.MockQRDownloader
	ifaces *mock.MockInterfaceInspector
}

func newTestServer(t *testing.T, mutate func(*config.Config)) (*Server, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	cfg := config.Default()
	cfg.Timestamp.Timezone = "UTC"
	cfg.Server.RateLimit = 0
	if mutate != nil {
		mutate(cfg)
	}

	deps := testDeps{
		geo:    mock.NewMockGeoReporter(ctrl),
		qr:     mock.NewMockQRDownloader(ctrl),
		ifaces: mock.NewMockInterfaceInspector(ctrl),
	}
	s, err := NewServer(cfg, deps.geo, deps.qr, deps.ifaces)
	require.NoError(t, err)
	s.clock = func() time.Time { return time.Unix(1700000000, 0) }
	return s, deps
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorBody
	decode(t, rec, &body)
	return body.Error
}

func TestServer_Health(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := do(s.Handler(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_Routing(t *testing.T) {
	s, _ := newTestServer(t, nil)
	h := s.Handler()

	t.Run("UnknownRoute", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/v1/nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, errorOf(t, rec), "/api/v1/nope")
	})

	t.Run("WrongMethod", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/v1/base64/encode", "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Contains(t, errorOf(t, rec), "method GET not allowed")
	})

	t.Run("WrongMethodTopLevel", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/healthz", "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Contains(t, errorOf(t, rec), "method POST not allowed")
	})
}

func TestServer_Codecs(t *testing.T) {
	s, _ := newTestServer(t, nil)
	h := s.Handler()

	t.Run("Base64Encode", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/base64/encode", `{"input":"hello world"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"output":"aGVsbG8gd29ybGQ="}`, rec.Body.String())
	})

	t.Run("Base64DecodeInvalid", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/base64/decode", `{"input":"!!!!"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorOf(t, rec), "invalid base64")
	})

	t.Run("URLRoundTrip", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/url/encode", `{"input":"a b&c"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"output":"a%20b%26c"}`, rec.Body.String())

		rec = do(h, http.MethodPost, "/api/v1/url/decode", `{"input":"a%20b%26c"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"output":"a b&c"}`, rec.Body.String())
	})

	t.Run("MalformedBody", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/base64/encode", `{"input":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("UnknownField", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/base64/encode", `{"text":"x"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_UUID(t *testing.T) {
	s, _ := newTestServer(t, nil)
	h := s.Handler()

	t.Run("Count", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/v1/uuid?count=3", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string][]string
		decode(t, rec, &body)
		assert.Len(t, body["uuids"], 3)
	})

	t.Run("UnsupportedVersion", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/v1/uuid?version=5", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_JSON(t *testing.T) {
	s, _ := newTestServer(t, nil)
	h := s.Handler()

	t.Run("Format", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/json/format", `{"input":"{\"a\":[1,2]}"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		var body textResponse
		decode(t, rec, &body)
		assert.Equal(t, "{\n  \"a\": [\n    1,\n    2\n  ]\n}", body.Output)
	})

	t.Run("FormatIndent", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/json/format", `{"input":"{\"a\":1}","indent":4}`)
		require.Equal(t, http.StatusOK, rec.Code)
		var body textResponse
		decode(t, rec, &body)
		assert.Equal(t, "{\n    \"a\": 1\n}", body.Output)
	})

	t.Run("IndentOutOfRange", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/json/format", `{"input":"{}","indent":11}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Minify", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/json/minify", `{"input":"{ \"a\" : 1 }"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"output":"{\"a\":1}"}`, rec.Body.String())
	})

	t.Run("Invalid", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/json/minify", `{"input":"{a:1}"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorOf(t, rec), "invalid JSON")
	})

	t.Run("MissingInput", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/json/format", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorOf(t, rec), "Input")
	})
}

func TestServer_Hash(t *testing.T) {
	s, _ := newTestServer(t, nil)
	h := s.Handler()

	t.Run("SHA256", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/hash", `{"input":"abc","algorithms":["sha256"]}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"digests":[{"algorithm":"sha256","hex":"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"}]}`, rec.Body.String())
	})

	t.Run("Defaults", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/hash", `{"input":"abc"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string][]map[string]string
		decode(t, rec, &body)
		assert.Len(t, body["digests"], 3)
	})

	t.Run("UnknownAlgorithm", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/hash", `{"input":"abc","algorithms":["crc32"]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Password(t *testing.T) {
	s, _ := newTestServer(t, nil)
	h := s.Handler()

	t.Run("Overrides", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/v1/password?length=20&symbols=false&numbers=false", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

		var body struct {
			Password string `json:"password"`
			Length   int    `json:"length"`
		}
		decode(t, rec, &body)
		assert.Equal(t, 20, body.Length)
		assert.Len(t, body.Password, 20)
		assert.NotContains(t, body.Password, "!")
		for _, c := range body.Password {
			assert.True(t, (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'), string(c))
		}
	})

	t.Run("DefaultsFromConfig", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/v1/password", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Length int `json:"length"`
		}
		decode(t, rec, &body)
		assert.Equal(t, 16, body.Length)
	})

	t.Run("LengthOutOfRange", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/v1/password?length=2", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("NoClasses", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/v1/password?uppercase=false&lowercase=false&numbers=false&symbols=false", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "select at least one character class", errorOf(t, rec))
	})

	t.Run("Strength", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/password/strength", `{"password":"aB3!aB3!aB3!aB3!"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]interface{}
		decode(t, rec, &body)
		assert.EqualValues(t, 7, body["score"])
		assert.Equal(t, "excellent", body["level"])
	})
}

func TestServer_Color(t *testing.T) {
	s, _ := newTestServer(t, nil)
	h := s.Handler()

	for _, q := range []string{"%23FF0000", "FF0000"} {
		rec := do(h, http.MethodGet, "/api/v1/color?hex="+q, "")
		require.Equal(t, http.StatusOK, rec.Code, q)
		var body map[string]interface{}
		decode(t, rec, &body)
		assert.Equal(t, "rgb(255, 0, 0)", body["rgb"])
		assert.Equal(t, "hsl(0, 100%, 50%)", body["hsl"])
	}

	rec := do(h, http.MethodGet, "/api/v1/color?hex=zzz", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h, http.MethodGet, "/api/v1/color", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Timestamp(t *testing.T) {
	s, _ := newTestServer(t, nil)
	h := s.Handler()

	expected := `{"seconds":1700000000,"milliseconds":1700000000000,"local":"2023-11-14 22:13:20 UTC","utc":"Tue, 14 Nov 2023 22:13:20 GMT","iso":"2023-11-14T22:13:20.000Z"}`

	t.Run("Seconds", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/v1/timestamp?seconds=1700000000", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, expected, rec.Body.String())
	})

	t.Run("Milliseconds", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/v1/timestamp?milliseconds=1700000000000", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, expected, rec.Body.String())
	})

	t.Run("Now", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/v1/timestamp", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, expected, rec.Body.String())
	})

	t.Run("Both", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/v1/timestamp?seconds=1&milliseconds=1", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("NotANumber", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/v1/timestamp?seconds=abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_QR(t *testing.T) {
	s, deps := newTestServer(t, nil)
	h := s.Handler()

	t.Run("URL", func(t *testing.T) {
		deps.qr.EXPECT().
			URL(qr.Request{Text: "hi there", Size: 300}).
			Return("https://qr.example/?data=hi%20there", nil)

		rec := do(h, http.MethodGet, "/api/v1/qr?text=hi+there&size=300", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"url":"https://qr.example/?data=hi%20there"}`, rec.Body.String())
	})

	t.Run("Rejected", func(t *testing.T) {
		deps.qr.EXPECT().URL(qr.Request{}).Return("", qr.ErrEmptyText)

		rec := do(h, http.MethodGet, "/api/v1/qr", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Diff(t *testing.T) {
	s, _ := newTestServer(t, nil)
	h := s.Handler()

	t.Run("Positional", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/diff", `{"left":"a\nb","right":"a\nc"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]interface{}
		decode(t, rec, &body)
		assert.EqualValues(t, 1, body["unchanged"])
		assert.EqualValues(t, 1, body["removed"])
		assert.EqualValues(t, 1, body["added"])
		assert.Equal(t, false, body["identical"])
		assert.NotContains(t, body, "unified")
	})

	t.Run("Unified", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/diff", `{"left":"a\nb\n","right":"a\nc\n","unified":true}`)
		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]interface{}
		decode(t, rec, &body)
		assert.Contains(t, body["unified"], "--- left")
		assert.Contains(t, body["unified"], "+c")
	})

	t.Run("Empty", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/diff", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Lorem(t *testing.T) {
	s, _ := newTestServer(t, nil)
	h := s.Handler()

	rec := do(h, http.MethodGet, "/api/v1/lorem?type=words&count=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	decode(t, rec, &body)
	assert.Len(t, strings.Fields(body["text"]), 5)

	rec = do(h, http.MethodGet, "/api/v1/lorem?type=chapters", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h, http.MethodGet, "/api/v1/lorem?count=1001", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_RegexAndCase(t *testing.T) {
	s, _ := newTestServer(t, nil)
	h := s.Handler()

	t.Run("Regex", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/regex", `{"pattern":"\\d+","text":"a1b22","global":true}`)
		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]interface{}
		decode(t, rec, &body)
		assert.EqualValues(t, 2, body["count"])
		assert.Equal(t, "a[[1]]b[[22]]", body["highlighted"])
	})

	t.Run("RegexInvalid", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/regex", `{"pattern":"(","text":"x"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Case", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/case", `{"input":"hello world"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]string
		decode(t, rec, &body)
		assert.Equal(t, "HELLO WORLD", body["upper"])
		assert.Equal(t, "hello_world", body["snake"])
		assert.Equal(t, "helloWorld", body["camel"])
	})
}

func TestServer_Network(t *testing.T) {
	s, _ := newTestServer(t, nil)
	h := s.Handler()

	t.Run("IP", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/v1/ip/192.168.1.10", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]interface{}
		decode(t, rec, &body)
		assert.EqualValues(t, 3232235786, body["decimal"])
	})

	t.Run("IPInvalid", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/v1/ip/192.168.01.1", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorOf(t, rec), "invalid IPv4 address")
	})

	t.Run("Subnet", func(t *testing.T) {
		for _, mask := range []string{"/24", "255.255.255.0"} {
			rec := do(h, http.MethodGet, "/api/v1/subnet?ip=192.168.1.10&mask="+mask, "")
			require.Equal(t, http.StatusOK, rec.Code, mask)
			var body subnet.Result
			decode(t, rec, &body)
			assert.Equal(t, "192.168.1.0", body.Network)
			assert.Equal(t, "192.168.1.255", body.Broadcast)
			assert.Equal(t, uint64(254), body.UsableHosts)
		}
	})

	t.Run("SubnetMissingMask", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/v1/subnet?ip=192.168.1.10", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Geo(t *testing.T) {
	s, deps := newTestServer(t, nil)
	h := s.Handler()

	t.Run("Lookup", func(t *testing.T) {
		deps.geo.EXPECT().
			Locate(gomock.Any(), "8.8.8.8").
			Return(geo.Report{Query: "8.8.8.8", Location: &geo.Display{IP: "8.8.8.8", Country: "United States (US)"}})

		rec := do(h, http.MethodGet, "/api/v1/geo/8.8.8.8", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var body geo.Report
		decode(t, rec, &body)
		require.NotNil(t, body.Location)
		assert.Equal(t, "United States (US)", body.Location.Country)
	})

	t.Run("InvalidAddress", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/v1/geo/not-an-ip", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ServiceFailure", func(t *testing.T) {
		deps.geo.EXPECT().
			LocateSelf(gomock.Any()).
			Return(geo.FailureReport("", errors.New("HTTP error! status: 429")))

		rec := do(h, http.MethodGet, "/api/v1/geo", "")
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "failed to get geolocation information: HTTP error! status: 429", errorOf(t, rec))
	})
}

func TestServer_Interfaces(t *testing.T) {
	s, deps := newTestServer(t, nil)
	h := s.Handler()

	t.Run("Named", func(t *testing.T) {
		deps.ifaces.EXPECT().
			Inspect(gomock.Any(), "eth0").
			Return([]types.InterfaceSubnet{{Interface: "eth0", Index: 2, CIDR: "10.0.0.5/24"}}, nil)

		rec := do(h, http.MethodGet, "/api/v1/interfaces?name=eth0", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"10.0.0.5/24"`)
	})

	t.Run("Failure", func(t *testing.T) {
		deps.ifaces.EXPECT().
			Inspect(gomock.Any(), "").
			Return(nil, errors.New("operation not permitted"))

		rec := do(h, http.MethodGet, "/api/v1/interfaces", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestServer_Middleware(t *testing.T) {
	t.Run("RequestIDGenerated", func(t *testing.T) {
		s, _ := newTestServer(t, nil)
		rec := do(s.Handler(), http.MethodGet, "/healthz", "")
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("RequestIDPropagated", func(t *testing.T) {
		s, _ := newTestServer(t, nil)
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
		assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
	})

	t.Run("CORSPreflight", func(t *testing.T) {
		s, _ := newTestServer(t, func(c *config.Config) {
			c.Server.CORSOrigins = []string{"https://tools.example"}
		})
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/hash", nil)
		req.Header.Set("Origin", "https://tools.example")
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://tools.example", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("CORSOtherOrigin", func(t *testing.T) {
		s, _ := newTestServer(t, func(c *config.Config) {
			c.Server.CORSOrigins = []string{"https://tools.example"}
		})
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("BodyLimit", func(t *testing.T) {
		s, _ := newTestServer(t, func(c *config.Config) {
			c.Server.MaxBodySize = 16
		})
		rec := do(s.Handler(), http.MethodPost, "/api/v1/base64/encode", `{"input":"`+strings.Repeat("x", 64)+`"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorOf(t, rec), "exceeds 16 bytes")
	})

	t.Run("RateLimit", func(t *testing.T) {
		s, _ := newTestServer(t, func(c *config.Config) {
			c.Server.RateLimit = 1
			c.Server.RateBurst = 2
		})
		h := s.Handler()

		assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/healthz", "").Code)
		assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/healthz", "").Code)

		rec := do(h, http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
		assert.Equal(t, "too many requests", errorOf(t, rec))
	})

	t.Run("RateLimitIgnoresSpoofedForwardedFor", func(t *testing.T) {
		s, _ := newTestServer(t, func(c *config.Config) {
			c.Server.RateLimit = 1
			c.Server.RateBurst = 1
		})
		h := s.Handler()

		for i, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i+1))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, want, rec.Code)
		}
	})

	t.Run("RateLimitTrustedProxy", func(t *testing.T) {
		s, _ := newTestServer(t, func(c *config.Config) {
			c.Server.RateLimit = 1
			c.Server.RateBurst = 1
			c.Server.TrustedProxies = []string{"192.0.2.0/24"}
		})
		h := s.Handler()

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i+1))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("Recovery", func(t *testing.T) {
		h := Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))
		rec := do(h, http.MethodGet, "/", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal server error", errorOf(t, rec))
	})
}

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Unix(0, 0)
	rl := NewRateLimiter(1, 1)
	rl.now = func() time.Time { return now }

	allowed, _ := rl.Allow("a")
	assert.True(t, allowed)

	allowed, retry := rl.Allow("a")
	assert.False(t, allowed)
	assert.Equal(t, time.Second, retry)

	allowed, _ = rl.Allow("b")
	assert.True(t, allowed, "clients have separate buckets")

	now = now.Add(time.Second)
	allowed, _ = rl.Allow("a")
	assert.True(t, allowed)

	now = now.Add(10 * time.Minute)
	_, _ = rl.Allow("c")
	assert.Len(t, rl.visitors, 1, "idle clients are swept")
}

func TestClientIP(t *testing.T) {
	resolve := func(trusted []netip.Prefix, headers map[string]string) string {
		var got string
		h := ClientIP(trusted)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = clientIP(r)
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		h.ServeHTTP(httptest.NewRecorder(), req)
		return got
	}
	proxies := []netip.Prefix{netip.MustParsePrefix("192.0.2.0/24")}

	t.Run("PeerAddress", func(t *testing.T) {
		assert.Equal(t, "192.0.2.1", resolve(nil, nil))
		assert.Equal(t, "192.0.2.1", clientIP(httptest.NewRequest(http.MethodGet, "/", nil)))
	})

	t.Run("UntrustedPeerHeadersIgnored", func(t *testing.T) {
		assert.Equal(t, "192.0.2.1", resolve(nil, map[string]string{
			"X-Forwarded-For": "203.0.113.7",
			"X-Real-IP":       "10.0.0.2",
		}))
	})

	t.Run("TrustedPeerRealIP", func(t *testing.T) {
		assert.Equal(t, "10.0.0.2", resolve(proxies, map[string]string{"X-Real-IP": "10.0.0.2"}))
	})

	t.Run("TrustedPeerForwardedFor", func(t *testing.T) {
		headers := map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}
		assert.Equal(t, "10.0.0.1", resolve(proxies, headers))

		chain := append(proxies, netip.MustParsePrefix("10.0.0.0/8"))
		assert.Equal(t, "203.0.113.7", resolve(chain, headers))
	})
}

func TestServer_Run(t *testing.T) {
	s, _ := newTestServer(t, func(c *config.Config) {
		c.Server.Listen = "127.0.0.1:0"
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

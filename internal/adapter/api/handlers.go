package api

import (
	"errors"
	"fmt"
	"net/http"

	"golang-devtools/internal/pkg/codec"
	"golang-devtools/internal/pkg/color"
	"golang-devtools/internal/pkg/hash"
	"golang-devtools/internal/pkg/ipv4"
	"golang-devtools/internal/pkg/jsonfmt"
	"golang-devtools/internal/pkg/lorem"
	"golang-devtools/internal/pkg/password"
	"golang-devtools/internal/pkg/qr"
	"golang-devtools/internal/pkg/regextest"
	"golang-devtools/internal/pkg/subnet"
	"golang-devtools/internal/pkg/textcase"
	"golang-devtools/internal/pkg/textdiff"
	"golang-devtools/internal/pkg/timestamp"
	"golang-devtools/internal/pkg/uuidgen"
	"golang-devtools/internal/pkg/version"

	"github.com/gorilla/mux"
	"github.com/vishvananda/netlink"
)

type textRequest struct {
	Input string `json:"input"`
}

type textResponse struct {
	Output string `json:"output"`
}

type uuidQuery struct {
	Count   int `schema:"count" validate:"gte=0"`
	Version int `schema:"version" validate:"omitempty,oneof=4 7"`
}

type jsonRequest struct {
	Input  string `json:"input" validate:"required"`
	Indent *int   `json:"indent" validate:"omitempty,gte=0,lte=10"`
}

type hashRequest struct {
	Input      string   `json:"input"`
	Algorithms []string `json:"algorithms" validate:"omitempty,dive,required"`
}

type passwordQuery struct {
	Length    *int  `schema:"length" validate:"omitempty,gte=4,lte=128"`
	Uppercase *bool `schema:"uppercase"`
	Lowercase *bool `schema:"lowercase"`
	Numbers   *bool `schema:"numbers"`
	Symbols   *bool `schema:"symbols"`
}

type strengthRequest struct {
	Password string `json:"password"`
}

type colorQuery struct {
	Hex string `schema:"hex" validate:"required"`
}

type timestampQuery struct {
	Seconds      *int64 `schema:"seconds"`
	Milliseconds *int64 `schema:"milliseconds"`
}

type diffRequest struct {
	Left    string `json:"left"`
	Right   string `json:"right"`
	Unified bool   `json:"unified"`
	Context *int   `json:"context" validate:"omitempty,gte=0"`
}

type diffResponse struct {
	textdiff.Result
	Identical bool   `json:"identical"`
	Unified   string `json:"unified,omitempty"`
}

type loremQuery struct {
	Type  string `schema:"type"`
	Count int    `schema:"count" validate:"gte=0,lte=1000"`
}

type subnetQuery struct {
	IP   string `schema:"ip" validate:"required"`
	Mask string `schema:"mask" validate:"required"`
}

type interfacesQuery struct {
	Name string `schema:"name"`
}

func (s *Server) health(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
	return map[string]string{"status": "ok"}, ok()
}

func (s *Server) getVersion(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
	return version.GetGitInfo(), ok()
}

func (s *Server) base64Encode(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
	var req textRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, badRequest(err)
	}
	return textResponse{Output: codec.EncodeBase64(req.Input)}, ok()
}

func (s *Server) base64Decode(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
	var req textRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, badRequest(err)
	}
	out, err := codec.DecodeBase64(req.Input)
	if err != nil {
		return nil, badRequest(err)
	}
	return textResponse{Output: out}, ok()
}

func (s *Server) urlEncode(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
	var req textRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, badRequest(err)
	}
	return textResponse{Output: codec.EncodeURIComponent(req.Input)}, ok()
}

func (s *Server) urlDecode(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
	var req textRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, badRequest(err)
	}
	out, err := codec.DecodeURIComponent(req.Input)
	if err != nil {
		return nil, badRequest(err)
	}
	return textResponse{Output: out}, ok()
}

func (s *Server) generateUUID(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
	var q uuidQuery
	if err := parseQueryParams(r, &q); err != nil {
		return nil, badRequest(err)
	}
	ids, err := uuidgen.Generate(q.Count, q.Version)
	if err != nil {
		if errors.Is(err, uuidgen.ErrUnsupportedVersion) {
			return nil, badRequest(err)
		}
		return nil, internalServerError(err)
	}
	return map[string][]string{"uuids": ids}, ok()
}

func (s *Server) jsonFormat(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
	var req jsonRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, badRequest(err)
	}
	indent := jsonfmt.DefaultIndent
	if req.Indent != nil {
		indent = *req.Indent
	}
	out, err := jsonfmt.Format(req.Input, indent)
	if err != nil {
		return nil, badRequest(err)
	}
	return textResponse{Output: out}, ok()
}

func (s *Server) jsonMinify(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
	var req jsonRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, badRequest(err)
	}
	out, err := jsonfmt.Minify(req.Input)
	if err != nil {
		return nil, badRequest(err)
	}
	return textResponse{Output: out}, ok()
}

func (s *Server) hashText(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
	var req hashRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, badRequest(err)
	}
	digests, err := hash.SumAll(req.Input, req.Algorithms...)
	if err != nil {
		return nil, badRequest(err)
	}
	return map[string][]hash.Digest{"digests": digests}, ok()
}

func (s *Server) generatePassword(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
	var q passwordQuery
	if err := parseQueryParams(r, &q); err != nil {
		return nil, badRequest(err)
	}

	opts := s.defaults
	if q.Length != nil {
		opts.Length = *q.Length
	}
	if q.Uppercase != nil {
		opts.Uppercase = *q.Uppercase
	}
	if q.Lowercase != nil {
		opts.Lowercase = *q.Lowercase
	}
	if q.Numbers != nil {
		opts.Numbers = *q.Numbers
	}
	if q.Symbols != nil {
		opts.Symbols = *q.Symbols
	}

	generated, err := s.passwords.Generate(opts)
	if err != nil {
		if errors.Is(err, password.ErrInvalidLength) || errors.Is(err, password.ErrNoCharacterClass) {
			return nil, badRequest(err)
		}
		return nil, internalServerError(err)
	}
	return generated, ok().WithHeader("Cache-Control", "no-store")
}

func (s *Server) passwordStrength(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
	var req strengthRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, badRequest(err)
	}
	return password.Evaluate(req.Password), ok()
}

func (s *Server) convertColor(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
	var q colorQuery
	if err := parseQueryParams(r, &q); err != nil {
		return nil, badRequest(err)
	}
	formats, err := color.Convert(q.Hex)
	if err != nil {
		return nil, badRequest(err)
	}
	return formats, ok()
}

func (s *Server) convertTimestamp(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
	var q timestampQuery
	if err := parseQueryParams(r, &q); err != nil {
		return nil, badRequest(err)
	}

	var (
		conv timestamp.Conversion
		err  error
	)
	switch {
	case q.Seconds != nil && q.Milliseconds != nil:
		return nil, badRequest(errors.New("seconds and milliseconds are mutually exclusive"))
	case q.Seconds != nil:
		conv, err = timestamp.FromSeconds(*q.Seconds, s.location)
	case q.Milliseconds != nil:
		conv, err = timestamp.FromMillis(*q.Milliseconds, s.location)
	default:
		conv = timestamp.Now(s.clock, s.location)
	}
	if err != nil {
		return nil, badRequest(err)
	}
	return conv, ok()
}

func (s *Server) qrURL(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
	var req qr.Request
	if err := parseQueryParams(r, &req); err != nil {
		return nil, badRequest(err)
	}
	url, err := s.qr.URL(req)
	if err != nil {
		return nil, badRequest(err)
	}
	return map[string]string{"url": url}, ok()
}

func (s *Server) diff(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
	var req diffRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, badRequest(err)
	}

	result, err := textdiff.Compare(req.Left, req.Right)
	if err != nil {
		return nil, badRequest(err)
	}
	resp := diffResponse{Result: result, Identical: result.Identical()}

	if req.Unified {
		context := -1
		if req.Context != nil {
			context = *req.Context
		}
		resp.Unified, err = textdiff.Unified(req.Left, req.Right, context)
		if err != nil {
			return nil, internalServerError(err)
		}
	}
	return resp, ok()
}

func (s *Server) loremText(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
	var q loremQuery
	if err := parseQueryParams(r, &q); err != nil {
		return nil, badRequest(err)
	}
	kind, err := lorem.ParseKind(q.Type)
	if err != nil {
		return nil, badRequest(err)
	}
	text, err := s.lorem.Generate(kind, q.Count)
	if err != nil {
		return nil, badRequest(err)
	}
	return map[string]string{"text": text}, ok()
}

func (s *Server) regex(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
	var req regextest.Request
	if err := decodeBody(r, &req); err != nil {
		return nil, badRequest(err)
	}
	result, err := regextest.Test(req)
	if err != nil {
		return nil, badRequest(err)
	}
	return result, ok()
}

func (s *Server) textCase(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
	var req textRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, badRequest(err)
	}
	return textcase.Convert(req.Input), ok()
}

func (s *Server) convertIP(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
	conv, err := ipv4.Convert(mux.Vars(r)["address"])
	if err != nil {
		return nil, badRequest(err)
	}
	return conv, ok()
}

func (s *Server) calculateSubnet(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
	var q subnetQuery
	if err := parseQueryParams(r, &q); err != nil {
		return nil, badRequest(err)
	}
	result, err := subnet.Calculate(q.IP, q.Mask)
	if err != nil {
		return nil, badRequest(err)
	}
	return result, ok()
}

func (s *Server) geoSelf(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
	report := s.geo.LocateSelf(r.Context())
	if report.Failed() {
		return nil, badGateway(errors.New(report.Error))
	}
	return report, ok()
}

func (s *Server) geoLookup(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
	ip := mux.Vars(r)["ip"]
	if !ipv4.IsValid(ip) {
		return nil, badRequest(fmt.Errorf("%w: %q", ipv4.ErrInvalidAddress, ip))
	}
	report := s.geo.Locate(r.Context(), ip)
	if report.Failed() {
		return nil, badGateway(errors.New(report.Error))
	}
	return report, ok()
}

func (s *Server) interfaces(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
	var q interfacesQuery
	if err := parseQueryParams(r, &q); err != nil {
		return nil, badRequest(err)
	}
	subnets, err := s.ifaces.Inspect(r.Context(), q.Name)
	if err != nil {
		var lnf netlink.LinkNotFoundError
		if errors.As(err, &lnf) {
			return nil, notFound(err)
		}
		return nil, internalServerError(err)
	}
	return map[string]interface{}{"interfaces": subnets}, ok()
}

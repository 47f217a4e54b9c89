package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/netip"
	"time"

	"golang-devtools/internal/pkg/config"
	"golang-devtools/internal/pkg/logging"
	"golang-devtools/internal/pkg/lorem"
	"golang-devtools/internal/pkg/password"
	"golang-devtools/internal/pkg/timestamp"
	"golang-devtools/internal/port"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Server serves the tools over HTTP.
type Server struct {
	cfg       config.ServerConfig
	trusted   []netip.Prefix
	defaults  password.Options
	geo       port.GeoReporter
	qr        port.QRDownloader
	ifaces    port.InterfaceInspector
	passwords *password.Generator
	lorem     *lorem.Generator
	location  *time.Location
	clock     timestamp.Clock
	logger    *logrus.Entry
}

// NewServer wires the HTTP API with its collaborators.
func NewServer(cfg *config.Config, geo port.GeoReporter, qr port.QRDownloader, ifaces port.InterfaceInspector) (*Server, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	trusted, err := cfg.Server.TrustedProxyPrefixes()
	if err != nil {
		return nil, err
	}

	return &Server{
		cfg:       cfg.Server,
		trusted:   trusted,
		defaults:  cfg.Password.Options(),
		geo:       geo,
		qr:        qr,
		ifaces:    ifaces,
		passwords: password.NewGenerator(),
		lorem:     lorem.NewGenerator(),
		location:  loc,
		clock:     time.Now,
		logger:    logging.WithComponent("api"),
	}, nil
}

// Handler returns the router wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	s.registerHandlers(r)

	var h http.Handler = r
	if s.cfg.RateLimit > 0 {
		h = NewRateLimiter(s.cfg.RateLimit, s.cfg.RateBurst).Middleware(h)
	}
	if s.cfg.MaxBodySize > 0 {
		h = BodySizeLimit(s.cfg.MaxBodySize)(h)
	}
	h = CORS(s.cfg.CORSOrigins)(h)
	h = Recovery(h)
	h = AccessLog(h)
	h = ClientIP(s.trusted)(h)
	return RequestID(h)
}

// setFallbacks installs the JSON 404 and 405 handlers. Subrouters resolve
// misses on their own, so every router needs them.
func setFallbacks(r *mux.Router) {
	r.NotFoundHandler = wrapFunc(func(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
		return nil, notFound(fmt.Errorf("no route for %s", r.URL.Path))
	})
	r.MethodNotAllowedHandler = wrapFunc(func(r *http.Request, w http.ResponseWriter) (interface{}, Response) {
		return nil, genError(fmt.Errorf("method %s not allowed", r.Method), http.StatusMethodNotAllowed)
	})
}

func (s *Server) registerHandlers(r *mux.Router) {
	r.HandleFunc("/healthz", wrapFunc(s.health)).Methods(http.MethodGet)
	r.HandleFunc("/version", wrapFunc(s.getVersion)).Methods(http.MethodGet)

	v1 := r.PathPrefix("/api/v1").Subrouter()
	setFallbacks(r)
	setFallbacks(v1)

	v1.HandleFunc("/base64/encode", wrapFunc(s.base64Encode)).Methods(http.MethodPost)
	v1.HandleFunc("/base64/decode", wrapFunc(s.base64Decode)).Methods(http.MethodPost)
	v1.HandleFunc("/url/encode", wrapFunc(s.urlEncode)).Methods(http.MethodPost)
	v1.HandleFunc("/url/decode", wrapFunc(s.urlDecode)).Methods(http.MethodPost)
	v1.HandleFunc("/uuid", wrapFunc(s.generateUUID)).Methods(http.MethodGet)
	v1.HandleFunc("/json/format", wrapFunc(s.jsonFormat)).Methods(http.MethodPost)
	v1.HandleFunc("/json/minify", wrapFunc(s.jsonMinify)).Methods(http.MethodPost)
	v1.HandleFunc("/hash", wrapFunc(s.hashText)).Methods(http.MethodPost)
	v1.HandleFunc("/password", wrapFunc(s.generatePassword)).Methods(http.MethodGet)
	v1.HandleFunc("/password/strength", wrapFunc(s.passwordStrength)).Methods(http.MethodPost)
	v1.HandleFunc("/color", wrapFunc(s.convertColor)).Methods(http.MethodGet)
	v1.HandleFunc("/timestamp", wrapFunc(s.convertTimestamp)).Methods(http.MethodGet)
	v1.HandleFunc("/qr", wrapFunc(s.qrURL)).Methods(http.MethodGet)
	v1.HandleFunc("/diff", wrapFunc(s.diff)).Methods(http.MethodPost)
	v1.HandleFunc("/lorem", wrapFunc(s.loremText)).Methods(http.MethodGet)
	v1.HandleFunc("/regex", wrapFunc(s.regex)).Methods(http.MethodPost)
	v1.HandleFunc("/case", wrapFunc(s.textCase)).Methods(http.MethodPost)
	v1.HandleFunc("/ip/{address}", wrapFunc(s.convertIP)).Methods(http.MethodGet)
	v1.HandleFunc("/subnet", wrapFunc(s.calculateSubnet)).Methods(http.MethodGet)
	v1.HandleFunc("/geo", wrapFunc(s.geoSelf)).Methods(http.MethodGet)
	v1.HandleFunc("/geo/{ip}", wrapFunc(s.geoLookup)).Methods(http.MethodGet)
	v1.HandleFunc("/interfaces", wrapFunc(s.interfaces)).Methods(http.MethodGet)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.Handler(),
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.WithField("listen", s.cfg.Listen).Info("Server is listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve: %w", err)
		}
		s.logger.Info("Stopped serving new connections")
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, shutdownRelease := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer shutdownRelease()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		s.logger.Info("Graceful shutdown complete")
		return nil
	})

	return g.Wait()
}

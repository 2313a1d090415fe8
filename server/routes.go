// Package server - Router und Handler des Introspection-Servers
// Beinhaltet: Server-Struct, Host-Pruefung, Routen fuer Familien, Kinds und Probe
package server

import (
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/7blacky7/godaal/api"
	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/envconfig"
	"github.com/7blacky7/godaal/native"
	"github.com/7blacky7/godaal/probe"
	"github.com/7blacky7/godaal/version"
)

var mode string = gin.DebugMode

// Server beantwortet Anfragen gegen eine geladene native Library
type Server struct {
	addr    net.Addr
	lib     native.Library
	backend string
}

// NewServer erzeugt einen Server fuer lib; backend erscheint in /api/version
func NewServer(lib native.Library, backend string) *Server {
	return &Server{lib: lib, backend: backend}
}

func init() {
	switch mode {
	case gin.DebugMode:
	case gin.ReleaseMode:
	case gin.TestMode:
	default:
		mode = gin.DebugMode
	}

	gin.SetMode(mode)
}

// isLocalIP prueft ob die IP-Adresse zu einem lokalen Interface gehoert
func isLocalIP(ip netip.Addr) bool {
	if interfaces, err := net.Interfaces(); err == nil {
		for _, iface := range interfaces {
			addrs, err := iface.Addrs()
			if err != nil {
				continue
			}

			for _, a := range addrs {
				if parsed, _, err := net.ParseCIDR(a.String()); err == nil {
					if parsed.String() == ip.String() {
						return true
					}
				}
			}
		}
	}

	return false
}

// allowedHost prueft ob der Host erlaubt ist
func allowedHost(host string) bool {
	host = strings.ToLower(host)

	if host == "" || host == "localhost" {
		return true
	}

	if hostname, err := os.Hostname(); err == nil && host == strings.ToLower(hostname) {
		return true
	}

	for _, tld := range []string{"localhost", "local", "internal"} {
		if strings.HasSuffix(host, "."+tld) {
			return true
		}
	}

	return false
}

// allowedHostsMiddleware blockiert fremde Hosts solange der Server nur auf Loopback lauscht
func allowedHostsMiddleware(addr net.Addr) gin.HandlerFunc {
	return func(c *gin.Context) {
		if addr == nil {
			c.Next()
			return
		}

		if addr, err := netip.ParseAddrPort(addr.String()); err == nil && !addr.Addr().IsLoopback() {
			c.Next()
			return
		}

		host, _, err := net.SplitHostPort(c.Request.Host)
		if err != nil {
			host = c.Request.Host
		}

		if addr, err := netip.ParseAddr(host); err == nil {
			if addr.IsLoopback() || addr.IsPrivate() || addr.IsUnspecified() || isLocalIP(addr) {
				c.Next()
				return
			}
		}

		if allowedHost(host) {
			if c.Request.Method == http.MethodOptions {
				c.AbortWithStatus(http.StatusNoContent)
				return
			}

			c.Next()
			return
		}

		c.AbortWithStatus(http.StatusForbidden)
	}
}

// GenerateRoutes erstellt und konfiguriert den HTTP-Router
func (s *Server) GenerateRoutes() http.Handler {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowWildcard = true
	corsConfig.AllowBrowserExtensions = true
	corsConfig.AllowHeaders = []string{
		"Authorization",
		"Content-Type",
		"User-Agent",
		"Accept",
		"X-Requested-With",
	}
	corsConfig.AllowOrigins = envconfig.AllowedOrigins()

	r := gin.Default()
	r.HandleMethodNotAllowed = true
	r.Use(
		cors.New(corsConfig),
		allowedHostsMiddleware(s.addr),
	)

	r.HEAD("/", func(c *gin.Context) { c.String(http.StatusOK, "godaal is running") })
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "godaal is running") })
	r.HEAD("/api/version", s.VersionHandler)
	r.GET("/api/version", s.VersionHandler)

	// Katalog
	r.GET("/api/families", s.ListFamiliesHandler)
	r.GET("/api/family/*name", s.ShowFamilyHandler)
	r.GET("/api/kinds", s.ListKindsHandler)
	r.GET("/api/kinds/:name", s.ShowKindHandler)

	// Konstruktion
	r.POST("/api/probe", s.ProbeHandler)

	return r
}

// VersionHandler liefert Server- und Library-Version
func (s *Server) VersionHandler(c *gin.Context) {
	resp := api.VersionResponse{Version: version.Version, Backend: s.backend}
	if s.lib != nil {
		resp.Native = s.lib.Version()
	}
	c.JSON(http.StatusOK, resp)
}

// ListFamiliesHandler listet alle Identifier-Familien
func (s *Server) ListFamiliesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.FamiliesResponse{Families: daal.Families()})
}

// ShowFamilyHandler liefert eine Familie; Namen enthalten '/'
func (s *Server) ShowFamilyHandler(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("name"), "/")
	f, err := daal.LookupFamily(name)
	if err != nil {
		c.AbortWithStatusJSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, f)
}

// ListKindsHandler listet alle konstruierbaren Kinds
func (s *Server) ListKindsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.KindsResponse{Kinds: daal.Kinds()})
}

// ShowKindHandler liefert einen einzelnen Kind
func (s *Server) ShowKindHandler(c *gin.Context) {
	info, err := daal.LookupKind(c.Param("name"))
	if err != nil {
		c.AbortWithStatusJSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}

// ProbeHandler konstruiert die angefragten Kinds gegen die geladene Library
func (s *Server) ProbeHandler(c *gin.Context) {
	var req api.ProbeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if s.lib == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "no native library loaded"})
		return
	}

	kinds := daal.Kinds()
	if len(req.Kinds) > 0 {
		kinds = kinds[:0:0]
		for _, name := range req.Kinds {
			info, err := daal.LookupKind(name)
			if err != nil {
				c.AbortWithStatusJSON(statusOf(err), gin.H{"error": err.Error()})
				return
			}
			kinds = append(kinds, info)
		}
	}

	jobs := probe.Jobs(kinds)
	if req.Precision != "" {
		prec, err := daal.ParsePrecision(req.Precision)
		if err != nil {
			c.AbortWithStatusJSON(statusOf(err), gin.H{"error": err.Error()})
			return
		}
		jobs = probe.WithPrecision(jobs, prec)
	}

	parallel := req.Parallel
	if parallel <= 0 {
		parallel = int(envconfig.ProbeParallel())
	}

	outcomes, err := probe.Run(c.Request.Context(), s.lib, jobs, parallel)
	if err != nil {
		slog.Error("probe failed", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.ProbeResponse{
		Backend:  s.backend,
		Outcomes: outcomes,
		Failed:   probe.Failed(outcomes),
	})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, daal.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, daal.ErrTypeUnsupported), errors.Is(err, daal.ErrMethodUnsupported):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

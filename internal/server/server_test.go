package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/cosmic-brain/internal/config"
	"github.com/MKhiriev/cosmic-brain/internal/handler"
	myGRPC "github.com/MKhiriev/cosmic-brain/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/cosmic-brain/internal/handler/http"
	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/internal/service"
)

func TestNewServer_NothingConfigured(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_HTTPAndGRPC(t *testing.T) {
	handlers := &handler.Handlers{
		HTTP: myHTTP.NewHandler(&service.Services{}, logger.Nop()),
		GRPC: myGRPC.NewHandler(&service.Services{}, logger.Nop()),
	}
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}

	s, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	srv := s.(*server)
	require.NotNil(t, srv.httpServer)
	require.NotNil(t, srv.gRPCServer)
	assert.Equal(t, cfg.HTTPAddress, srv.httpServer.server.Addr)

	// the gRPC listener is bound eagerly; shut it down without serving
	srv.gRPCServer.server.Stop()
	_ = srv.gRPCServer.gRPCNetListener.Close()
}

func TestNewServer_GRPCListenError(t *testing.T) {
	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(nil, logger.Nop())}

	_, err := NewServer(handlers, config.Server{GRPCAddress: "256.0.0.1:bad"}, logger.Nop())

	require.Error(t, err)
}

func TestHTTPServer_ServesHandler(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
	s := newHTTPServer(h, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, readHeaderTimeout, s.server.ReadHeaderTimeout)
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	require.ErrorIs(t, s.run(), errNoServersToRun)
}

package utils

import (
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Type(t *testing.T) {
	client := NewHTTPClient()

	// Ensure the embedded client is actually a *resty.Client
	if _, ok := interface{}(client.Client).(*resty.Client); !ok {
		t.Fatalf("expected embedded client to be *resty.Client, got %T", client.Client)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewHTTPClient_Options(t *testing.T) {
	client := NewHTTPClient(
		WithBaseURL("http://localhost:8080"),
		WithTimeout(3*time.Second),
		WithRetries(2, 10*time.Millisecond),
		WithHeader("X-Session-ID", "phone"),
	)

	if client.BaseURL != "http://localhost:8080" {
		t.Errorf("expected base URL to be set, got %q", client.BaseURL)
	}
	if client.GetClient().Timeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %v", client.GetClient().Timeout)
	}
	if client.RetryCount != 2 {
		t.Errorf("expected retry count 2, got %d", client.RetryCount)
	}
	if got := client.Header.Get("X-Session-ID"); got != "phone" {
		t.Errorf("expected session header, got %q", got)
	}
}

func TestNewHTTPClient_IgnoresEmptyOptions(t *testing.T) {
	client := NewHTTPClient(WithBaseURL(""), WithTimeout(0))

	if client.BaseURL != "" {
		t.Errorf("expected empty base URL, got %q", client.BaseURL)
	}
	if client.GetClient().Timeout != 0 {
		t.Errorf("expected no timeout, got %v", client.GetClient().Timeout)
	}
}

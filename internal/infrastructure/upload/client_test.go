package upload

import (
	"context"
	"errors"
	"testing"
)

func TestNewClient_EmptyURLReturnsDisabledClient(t *testing.T) {
	c := NewClient("", nil)
	if c == nil {
		t.Fatal("NewClient returned nil")
	}

	_, err := c.Upload(context.Background(), []byte("data"), "users/1/resume")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	c := NewClient("https://uploads.example.com/", nil)
	hc, ok := c.(*httpClient)
	if !ok {
		t.Fatalf("client type = %T, want *httpClient", c)
	}
	if hc.baseURL != "https://uploads.example.com" {
		t.Fatalf("baseURL = %q", hc.baseURL)
	}
}

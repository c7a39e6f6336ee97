package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLocalStoragePutGetDelete(t *testing.T) {
	root := t.TempDir()
	st, err := NewLocalStorage(root+"/report-attachments", "/files/report-attachments")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	ctx := context.Background()
	key := "reports/abc/photo.jpg"

	if err := st.Put(ctx, key, strings.NewReader("jpeg bytes"), "image/jpeg"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	ok, err := st.Exists(ctx, key)
	if err != nil || !ok {
		t.Fatalf("Exists = %v, %v; want true, nil", ok, err)
	}

	rc, err := st.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	body, _ := io.ReadAll(rc)
	rc.Close()
	if string(body) != "jpeg bytes" {
		t.Fatalf("unexpected content: %q", body)
	}

	if err := st.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	// Deleting a missing object is not an error.
	if err := st.Delete(ctx, key); err != nil {
		t.Fatalf("Delete (missing): %v", err)
	}
}

// The URL returned for a stored object must resolve through the file
// server mounted at /files over the storage root.
func TestLocalStorageURLServedByFileServer(t *testing.T) {
	root := t.TempDir()
	st, err := NewLocalStorage(root+"/news-images", "/files/news-images")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	key := "covers/xyz/cover.jpg"
	if err := st.Put(context.Background(), key, strings.NewReader("cover"), "image/jpeg"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	fileServer := http.StripPrefix("/files/", http.FileServer(http.Dir(root)))
	srv := httptest.NewServer(fileServer)
	defer srv.Close()

	url := st.GetURL(key)
	if url != "/files/news-images/covers/xyz/cover.jpg" {
		t.Fatalf("unexpected URL: %q", url)
	}

	resp, err := http.Get(srv.URL + url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s = %d, want 200", url, resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "cover" {
		t.Fatalf("unexpected body: %q", body)
	}
}

package api

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/google/go-cmp/cmp"

	"prodea_gateway/models"
)

func TestGetPostsDecodesWireFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/posts/get_posts" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"post_title":"t","post_description":"d","post_category":"Tech","post_difficulty":"Easy","user_id":3}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	posts, err := client.GetPosts(context.Background())
	if err != nil {
		t.Fatalf("GetPosts: %v", err)
	}

	want := []models.Post{{ID: 1, Title: "t", Description: "d", Category: "Tech", Difficulty: "Easy", UserID: 3}}
	if diff := cmp.Diff(want, posts); diff != "" {
		t.Errorf("posts mismatch (-want +got):\n%s", diff)
	}
}

func TestErrorCarriesBackendDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Post not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetPostByID(context.Background(), 99)
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error %T is not *Error", err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Detail != "Post not found" {
		t.Errorf("got status %d detail %q", apiErr.StatusCode, apiErr.Detail)
	}
	if apiErr.Error() != "Post not found" {
		t.Errorf("Error() = %q", apiErr.Error())
	}
}

func TestLoginSendsFormNotJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if r.PostForm.Get("username") != "alice" || r.PostForm.Get("password") != "secret" {
			t.Errorf("form = %v", r.PostForm)
		}
		json.NewEncoder(w).Encode(models.LoginResponse{
			AccessToken: "tok", TokenType: "bearer", UserID: 7, Username: "alice", Email: "a@b.com",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Login(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.AccessToken != "tok" || resp.UserID != 7 {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestCreatePostWrapsSingleInBatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/posts/create_multiple_posts" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var batch []models.CreatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(batch) != 1 || batch[0].Title != "t" {
			t.Errorf("batch = %+v", batch)
		}
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.CreatePost(context.Background(), models.CreatePostRequest{Title: "t", Description: "d", Category: "Tech", Difficulty: "Easy", UserID: 1})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
}

func TestLikeIsGetWithSideEffects(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Write([]byte(`{"message":"Post liked successfully","post_id":7}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if err := client.LikePost(context.Background(), 7); err != nil {
		t.Fatalf("LikePost: %v", err)
	}
	if gotMethod != http.MethodGet || gotPath != "/posts/like_post/7" {
		t.Errorf("request was %s %s", gotMethod, gotPath)
	}
}

func TestDecodesCompressedResponses(t *testing.T) {
	payload := []byte(`[{"id":1,"solution_text":"s","post_id":2,"user_id":3}]`)

	tests := []struct {
		encoding string
		compress func(http.ResponseWriter)
	}{
		{"gzip", func(w http.ResponseWriter) {
			zw := gzip.NewWriter(w)
			zw.Write(payload)
			zw.Close()
		}},
		{"br", func(w http.ResponseWriter) {
			bw := brotli.NewWriter(w)
			bw.Write(payload)
			bw.Close()
		}},
	}

	for _, tc := range tests {
		t.Run(tc.encoding, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Encoding", tc.encoding)
				w.Header().Set("Content-Type", "application/json")
				tc.compress(w)
			}))
			defer server.Close()

			client := NewClient(server.URL)
			solutions, err := client.GetSolutions(context.Background())
			if err != nil {
				t.Fatalf("GetSolutions: %v", err)
			}
			if len(solutions) != 1 || solutions[0].Text != "s" {
				t.Errorf("solutions = %+v", solutions)
			}
		})
	}
}

func TestBearerTokenFromContext(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := ContextWithToken(context.Background(), "tok123")
	if _, err := client.GetComments(ctx); err != nil {
		t.Fatalf("GetComments: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestTransportErrorIsNotAPIError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")
	_, err := client.GetUsers(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		t.Errorf("transport failure surfaced as *Error: %v", err)
	}
}

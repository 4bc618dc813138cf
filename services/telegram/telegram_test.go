package telegram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"bazaarbot/logger"
	"bazaarbot/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestClient_SendMessage(t *testing.T) {
	var gotPath string
	var gotForm map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"chat_id":    r.FormValue("chat_id"),
			"text":       r.FormValue("text"),
			"parse_mode": r.FormValue("parse_mode"),
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", "@testchannel", 5*time.Second)
	err := client.SendMessage(context.Background(), "<b>hello</b>", ParseModeHTML)

	assert.NoError(t, err)
	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, "@testchannel", gotForm["chat_id"])
	assert.Equal(t, "<b>hello</b>", gotForm["text"])
	assert.Equal(t, "HTML", gotForm["parse_mode"])
}

func TestClient_SendMessage_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"description":"Bad Request: can't parse entities"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", "@testchannel", 5*time.Second)
	err := client.SendMessage(context.Background(), "broken *markup", ParseModeMarkdown)

	assert.Error(t, err)
	assert.Equal(t, errors.ErrorTypeDelivery, errors.TypeOf(err))
}

func TestClient_SendPhoto(t *testing.T) {
	var gotForm map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/sendPhoto", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"photo":   r.FormValue("photo"),
			"caption": r.FormValue("caption"),
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", "@testchannel", 5*time.Second)
	err := client.SendPhoto(context.Background(), "https://img.example/p.jpg", "caption here", ParseModeMarkdown)

	assert.NoError(t, err)
	assert.Equal(t, "https://img.example/p.jpg", gotForm["photo"])
	assert.Equal(t, "caption here", gotForm["caption"])
}

func TestClient_SendPhoto_ClampsLongCaption(t *testing.T) {
	var gotCaption string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		gotCaption = r.FormValue("caption")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", "@testchannel", 5*time.Second)
	long := strings.Repeat("deal text ", 200)
	err := client.SendPhoto(context.Background(), "https://img.example/p.jpg", long, ParseModeHTML)

	assert.NoError(t, err)
	assert.LessOrEqual(t, len(gotCaption), CaptionLimit)
}

func TestClampCaption(t *testing.T) {
	assert.Equal(t, "short", ClampCaption("short", 1024))

	// the cut never splits a multi-byte rune
	clamped := ClampCaption(strings.Repeat("₹", 500), 1024)
	assert.LessOrEqual(t, len(clamped), 1024)
	assert.True(t, utf8.ValidString(clamped))

	// a tag left open by the cut is dropped entirely
	text := strings.Repeat("x", 1020) + "<a href"
	clamped = ClampCaption(text, 1024)
	assert.NotContains(t, clamped, "<")
}

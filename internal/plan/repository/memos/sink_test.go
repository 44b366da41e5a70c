package memos_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync/atomic"
	"testing"

	"ai-tasker/internal/model"
	"ai-tasker/internal/plan/repository"
	"ai-tasker/internal/plan/repository/memos"
	pkgLog "ai-tasker/pkg/log"
)

func newMemosServer(t *testing.T, calls *int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/memos", func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(calls, 1)
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var req memos.CreateMemoRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if strings.Contains(req.Content, "FAIL") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		uid := "uid-" + string(rune('a'+n-1))
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(memos.Memo{
			Name:       "memos/" + uid,
			Content:    req.Content,
			Visibility: req.Visibility,
		})
	})
	return httptest.NewServer(mux)
}

func TestSaveTasks(t *testing.T) {
	var calls int32
	ts := newMemosServer(t, &calls)
	defer ts.Close()

	sink := memos.New(memos.NewClient(ts.URL, "test-token"), "http://memos.local/", "", pkgLog.NewNop())
	ctx := context.Background()

	t.Run("partial success", func(t *testing.T) {
		atomic.StoreInt32(&calls, 0)
		res, err := sink.SaveTasks(ctx, repository.SaveTasksOptions{
			ProjectTitle: "Japan",
			Tasks: []model.GeneratedTask{
				{Title: "Book flights", EstimatedMinutes: 30, Priority: model.PriorityHigh},
				{Title: "FAIL", EstimatedMinutes: 10, Priority: model.PriorityLow},
				{Title: "Pack", EstimatedMinutes: 20, Priority: model.PriorityMedium},
			},
		})
		if err != nil {
			t.Fatalf("SaveTasks() error: %v", err)
		}
		if got := atomic.LoadInt32(&calls); got != 3 {
			t.Errorf("memos calls = %d, want 3", got)
		}
		if len(res.URLs) != 2 {
			t.Fatalf("URLs = %v, want 2 entries", res.URLs)
		}
		sort.Strings(res.URLs)
		for _, u := range res.URLs {
			if !strings.HasPrefix(u, "http://memos.local/m/uid-") {
				t.Errorf("unexpected memo url %q", u)
			}
		}
	})

	t.Run("all failed", func(t *testing.T) {
		_, err := sink.SaveTasks(ctx, repository.SaveTasksOptions{
			Tasks: []model.GeneratedTask{{Title: "FAIL"}},
		})
		if err == nil {
			t.Fatal("expected error when every memo fails")
		}
	})

	t.Run("nothing to store", func(t *testing.T) {
		atomic.StoreInt32(&calls, 0)
		res, err := sink.SaveTasks(ctx, repository.SaveTasksOptions{})
		if err != nil || len(res.URLs) != 0 {
			t.Errorf("SaveTasks(empty) = %+v, %v", res, err)
		}
		if atomic.LoadInt32(&calls) != 0 {
			t.Error("empty plan must not call memos")
		}
	})
}

func TestSaveQuestions(t *testing.T) {
	var calls int32
	ts := newMemosServer(t, &calls)
	defer ts.Close()

	sink := memos.New(memos.NewClient(ts.URL, "test-token"), "http://memos.local", "PUBLIC", pkgLog.NewNop())

	res, err := sink.SaveQuestions(context.Background(), repository.SaveQuestionsOptions{
		Goal: "Learn piano",
		Questions: []model.ClarifyingQuestion{
			{Question: "How many hours a week?", Kind: model.QuestionNumber},
			{Question: "Level?", Kind: model.QuestionMultipleChoice, Options: []string{"Beginner", "Advanced"}},
		},
	})
	if err != nil {
		t.Fatalf("SaveQuestions() error: %v", err)
	}
	if res.PlanID != "memos/uid-a" {
		t.Errorf("PlanID = %q, want memos/uid-a", res.PlanID)
	}
	if len(res.URLs) != 1 || res.URLs[0] != "http://memos.local/m/uid-a" {
		t.Errorf("URLs = %v", res.URLs)
	}
}

func TestCreateMemoUnauthorized(t *testing.T) {
	var calls int32
	ts := newMemosServer(t, &calls)
	defer ts.Close()

	_, err := memos.NewClient(ts.URL, "wrong").CreateMemo(context.Background(), memos.CreateMemoRequest{Content: "x"})
	if err == nil || !strings.Contains(err.Error(), "401") {
		t.Errorf("CreateMemo() error = %v, want 401 error", err)
	}
}

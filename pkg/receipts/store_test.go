// samarth-crm/pkg/receipts/store_test.go
package receipts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

func listPayload(rs []Receipt) string {
	b, _ := json.Marshal(listResponse{Success: true, Receipts: rs})
	return string(b)
}

func TestStoreLoad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/receipts/" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(listPayload(sampleReceipts())))
	}))
	defer srv.Close()

	var notified int
	s := NewStore(srv.URL)
	s.OnChange = func(view []Receipt, sum Summary) {
		notified++
		if sum.Count != len(view) {
			t.Errorf("summary count %d for view of %d", sum.Count, len(view))
		}
	}

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got := len(s.View()); got != 3 {
		t.Fatalf("view has %d receipts, want 3", got)
	}
	if notified != 1 {
		t.Errorf("OnChange fired %d times, want 1", notified)
	}
	if !s.Criteria().IsZero() {
		t.Error("Load did not reset criteria to identity")
	}
}

func TestStoreLoadFailureKeepsState(t *testing.T) {
	healthy := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(listPayload(sampleReceipts())))
	}))
	defer srv.Close()

	s := NewStore(srv.URL)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("initial Load() error: %v", err)
	}
	view := s.SetCriteria(Criteria{Month: 1})
	if len(view) != 2 {
		t.Fatalf("filtered view has %d receipts, want 2", len(view))
	}

	healthy = false
	err := s.Load(context.Background())

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("Load() error = %v, want *FetchError", err)
	}
	if fe.Status != http.StatusInternalServerError {
		t.Errorf("FetchError.Status = %d", fe.Status)
	}
	if got := len(s.View()); got != 2 {
		t.Errorf("failed load changed the view: %d receipts", got)
	}
	if s.Criteria().IsZero() {
		t.Error("failed load reset the criteria")
	}
}

func TestStoreLoadServerReportedFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(listResponse{Success: false, Error: "database unavailable"})
	}))
	defer srv.Close()

	s := NewStore(srv.URL)
	err := s.Load(context.Background())

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("Load() error = %v, want *FetchError", err)
	}
	if fe.Message != "database unavailable" {
		t.Errorf("FetchError.Message = %q", fe.Message)
	}
}

// Поздний ответ на более ранний Load должен быть отброшен, а не затирать
// более свежие данные.
func TestStoreStaleLoadDiscarded(t *testing.T) {
	firstArrived := make(chan struct{})
	release := make(chan struct{})
	var requests int
	var mu sync.Mutex

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests++
		n := requests
		mu.Unlock()

		if n == 1 {
			close(firstArrived)
			<-release
			w.Write([]byte(listPayload([]Receipt{{ID: 100, StudentName: "Stale"}})))
			return
		}
		w.Write([]byte(listPayload(sampleReceipts())))
	}))
	defer srv.Close()

	s := NewStore(srv.URL)

	done := make(chan error, 1)
	go func() { done <- s.Load(context.Background()) }()

	<-firstArrived
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("second Load() error: %v", err)
	}

	close(release)
	if err := <-done; !errors.Is(err, ErrStaleLoad) {
		t.Fatalf("first Load() error = %v, want ErrStaleLoad", err)
	}

	if _, ok := s.FindByID(100); ok {
		t.Error("stale response overwrote fresher data")
	}
	if got := len(s.View()); got != 3 {
		t.Errorf("view has %d receipts, want 3", got)
	}
}

func TestStoreFindByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listPayload(sampleReceipts())))
	}))
	defer srv.Close()

	s := NewStore(srv.URL)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Спрятанная фильтром запись всё равно находится.
	s.SetCriteria(Criteria{Search: "sneha"})
	r, ok := s.FindByID(3)
	if !ok || r.StudentName != "Rahul Jadhav" {
		t.Errorf("FindByID(3) = %+v, %v", r, ok)
	}

	if _, ok := s.FindByID(999); ok {
		t.Error("FindByID(999) found a receipt that does not exist")
	}
}

func TestStoreMutations(t *testing.T) {
	var gotPath string
	var gotUpdate UpdateRequest
	reject := false

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.Method != http.MethodPost {
			t.Errorf("mutation used method %s", r.Method)
		}
		if reject {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(mutationResponse{Success: false, Error: "receipt not found"})
			return
		}
		if r.URL.Path == "/api/receipts/7/update/" {
			json.NewDecoder(r.Body).Decode(&gotUpdate)
		}
		json.NewEncoder(w).Encode(mutationResponse{Success: true})
	}))
	defer srv.Close()

	s := NewStore(srv.URL)

	upd := UpdateRequest{PaymentDate: "2024-05-01", PaidFees: 500, RemainingFees: 1500}
	if err := s.Update(context.Background(), 7, upd); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if gotPath != "/api/receipts/7/update/" {
		t.Errorf("update path = %q", gotPath)
	}
	if gotUpdate != upd {
		t.Errorf("server received %+v, want %+v", gotUpdate, upd)
	}

	if err := s.Delete(context.Background(), 9); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if gotPath != "/api/receipts/9/delete/" {
		t.Errorf("delete path = %q", gotPath)
	}

	reject = true
	err := s.Delete(context.Background(), 9)
	var me *MutationError
	if !errors.As(err, &me) {
		t.Fatalf("Delete() error = %v, want *MutationError", err)
	}
	if me.Message != "receipt not found" {
		t.Errorf("MutationError.Message = %q", me.Message)
	}
}

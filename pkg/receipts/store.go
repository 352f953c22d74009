// samarth-crm/pkg/receipts/store.go
package receipts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Store владеет авторитетным списком квитанций (all) и производным
// отфильтрованным представлением (filtered). Снаружи оба среза недоступны
// напрямую: только операции Load/SetCriteria/FindByID, чтобы all и filtered
// не могли разойтись (раньше это были две глобальные переменные на странице).
type Store struct {
	// BaseURL сервера, например http://localhost:8080.
	baseURL string

	// Client подменяется в тестах; по умолчанию клиент с таймаутом.
	Client *http.Client

	// AuthToken, если задан, уходит на сервер кукой auth_token.
	AuthToken string

	// OnChange, если задан, вызывается после каждого успешного Load и
	// SetCriteria с новым представлением и пересчитанными итогами. Store
	// ничего не рисует сам - перерисовка на стороне подписчика.
	OnChange func(view []Receipt, summary Summary)

	mu       sync.Mutex
	all      []Receipt
	filtered []Receipt
	criteria Criteria

	// Каждому Load присваивается порядковый номер; применяется только
	// ответ с номером больше последнего примененного. Гонка "двух
	// перезагрузок" решается отбрасыванием устаревшего ответа, а не
	// правилом "последний записавший побеждает".
	issuedSeq  uint64
	appliedSeq uint64
}

// NewStore creates an empty store bound to the given server base URL.
func NewStore(baseURL string) *Store {
	return &Store{
		baseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// listResponse - форма ответа сервера на запрос списка.
type listResponse struct {
	Success  bool      `json:"success"`
	Receipts []Receipt `json:"receipts"`
	Error    string    `json:"error"`
}

// mutationResponse - форма ответа на update/delete.
type mutationResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Load replaces the full list from GET /api/receipts/ and resets the
// filtered view to the identity filter. On any failure the previous state is
// left untouched, so the page keeps showing the last good data. A response
// that arrives after a newer Load has already been applied is discarded and
// reported as ErrStaleLoad.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.issuedSeq++
	seq := s.issuedSeq
	s.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/receipts/", nil)
	if err != nil {
		return &FetchError{Err: err}
	}
	s.authorize(req)

	resp, err := s.Client.Do(req)
	if err != nil {
		return &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{Status: resp.StatusCode}
	}

	var payload listResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return &FetchError{Status: resp.StatusCode, Err: err}
	}
	if !payload.Success {
		return &FetchError{Status: resp.StatusCode, Message: payload.Error}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.appliedSeq {
		return ErrStaleLoad
	}
	s.appliedSeq = seq

	s.all = payload.Receipts
	s.criteria = Criteria{}
	s.filtered = append([]Receipt(nil), s.all...)

	s.notifyLocked()
	return nil
}

// SetCriteria recomputes the filtered view against the full list and returns
// it. Clearing the criteria (zero value) restores the original sequence.
func (s *Store) SetCriteria(c Criteria) []Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria = c
	s.filtered = Filter(s.all, c)

	s.notifyLocked()
	return append([]Receipt(nil), s.filtered...)
}

// Criteria returns the currently applied criteria.
func (s *Store) Criteria() Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// View returns a copy of the current filtered view.
func (s *Store) View() []Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Receipt(nil), s.filtered...)
}

// FindByID ищет в полном списке, а не в отфильтрованном: редактирование и
// печать работают с авторитетной записью, даже если устаревший фильтр
// спрятал её из таблицы.
func (s *Store) FindByID(id uint) (Receipt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.all {
		if r.ID == id {
			return r, true
		}
	}
	return Receipt{}, false
}

// UpdateRequest - редактируемые поля квитанции.
type UpdateRequest struct {
	PaymentDate   string  `json:"payment_date"`
	PaidFees      float64 `json:"paid_fees"`
	RemainingFees float64 `json:"remaining_fees"`
}

// Update sends an edit to the server. The cache is not touched: a successful
// mutation invalidates it and the caller is expected to Load again.
func (s *Store) Update(ctx context.Context, id uint, upd UpdateRequest) error {
	body, err := json.Marshal(upd)
	if err != nil {
		return &MutationError{Err: err}
	}
	return s.mutate(ctx, fmt.Sprintf("%s/api/receipts/%d/update/", s.baseURL, id), body)
}

// Delete removes a receipt on the server. Same invalidation contract as Update.
func (s *Store) Delete(ctx context.Context, id uint) error {
	return s.mutate(ctx, fmt.Sprintf("%s/api/receipts/%d/delete/", s.baseURL, id), nil)
}

func (s *Store) mutate(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &MutationError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	s.authorize(req)

	resp, err := s.Client.Do(req)
	if err != nil {
		return &MutationError{Err: err}
	}
	defer resp.Body.Close()

	var payload mutationResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return &MutationError{Status: resp.StatusCode, Err: err}
	}
	if !payload.Success {
		return &MutationError{Status: resp.StatusCode, Message: payload.Error}
	}
	return nil
}

func (s *Store) authorize(req *http.Request) {
	if s.AuthToken != "" {
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: s.AuthToken})
	}
}

// notifyLocked дергает подписчика под мьютексом с копией представления.
func (s *Store) notifyLocked() {
	if s.OnChange == nil {
		return
	}
	view := append([]Receipt(nil), s.filtered...)
	s.OnChange(view, Summarize(view))
}

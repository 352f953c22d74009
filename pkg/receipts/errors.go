// samarth-crm/pkg/receipts/errors.go
package receipts

import (
	"errors"
	"fmt"
)

// ErrStaleLoad сообщает, что ответ на Load пришел позже более нового и был
// отброшен; состояние хранилища не изменилось.
var ErrStaleLoad = errors.New("receipts: stale load response discarded")

// FetchError reports a failed receipt list load: network failure, non-2xx
// status, malformed JSON, or a success:false payload from the server.
type FetchError struct {
	Status  int    // HTTP status, 0 если до ответа не дошло
	Message string // сообщение сервера из поля error, если было
	Err     error
}

func (e *FetchError) Error() string {
	switch {
	case e.Message != "":
		return "receipts: load failed: " + e.Message
	case e.Err != nil:
		return "receipts: load failed: " + e.Err.Error()
	default:
		return fmt.Sprintf("receipts: load failed: status %d", e.Status)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// MutationError reports a rejected update or delete, carrying the optional
// server-supplied message for the user notification.
type MutationError struct {
	Status  int
	Message string
	Err     error
}

func (e *MutationError) Error() string {
	switch {
	case e.Message != "":
		return "receipts: mutation failed: " + e.Message
	case e.Err != nil:
		return "receipts: mutation failed: " + e.Err.Error()
	default:
		return fmt.Sprintf("receipts: mutation failed: status %d", e.Status)
	}
}

func (e *MutationError) Unwrap() error { return e.Err }

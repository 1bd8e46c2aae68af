package handlers

import (
	"strconv"
)

// CountResponse is the `{result: n}` envelope the count endpoints share.
type CountResponse struct {
	Body struct {
		Result int64 `json:"result"`
	}
}

// parseID converts a path identifier into the store's native id type.
// Handlers map a failure to a 400, never a crash.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

package transport

import (
	"encoding/json"
	goerrors "errors"
	"net/http"

	"github.com/timetrkkr/timetrkkr/constant"
	"github.com/timetrkkr/timetrkkr/utils/errors"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if data == nil {
		data = struct{}{}
	}
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !goerrors.As(err, &ce) {
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(ce.ErrorHTTPCode())
	_ = json.NewEncoder(w).Encode(errorBody{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
	})
}

package order

import (
	"fmt"
	"net/http"

	"github.com/zenkart/backend/srvcerror"
)

const ErrCodeOrderFieldInvalid = "order_field_invalid"

func newErrOrderFieldInvalid(field string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeOrderFieldInvalid,
		fmt.Sprintf("%s is missing or invalid", field),
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}

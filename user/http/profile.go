package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/zenkart/backend/auth"
	"github.com/zenkart/backend/httpjson"
	"github.com/zenkart/backend/logger"
	"github.com/zenkart/backend/srvcerror"
	"github.com/zenkart/backend/user"
)

func (h *UserHttpHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	u, err := h.userSrvc.GetProfile(r.Context(), claims.Email())
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapUser(u))
}

const ErrCodeDateOfBirthInvalid = "date_of_birth_invalid"

func (h *UserHttpHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	type updateProfileRequest struct {
		FirstName     string  `json:"first_name"`
		LastName      string  `json:"last_name"`
		DateOfBirth   string  `json:"date_of_birth"`
		Country       string  `json:"country"`
		ContactNumber string  `json:"contact_number"`
		Pincode       string  `json:"pincode"`
		AddressLine1  string  `json:"address_line1"`
		AddressLine2  string  `json:"address_line2"`
		Landmark      *string `json:"landmark"`
		City          string  `json:"city"`
		State         string  `json:"state"`
	}

	var request updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var dob time.Time
	if request.DateOfBirth != "" {
		var err error
		dob, err = time.Parse(dateFormat, request.DateOfBirth)
		if err != nil {
			httpjson.HandleError(logger.FromContext(r.Context()), w,
				srvcerror.New(ErrCodeDateOfBirthInvalid,
					"date_of_birth must be formatted as YYYY-MM-DD").
					SetHttpStatusCode(http.StatusBadRequest))
			return
		}
	}

	claims := auth.ClaimsFromContext(r.Context())

	u, err := h.userSrvc.UpdateProfile(r.Context(), claims.Email(), user.UpdateProfileParams{
		FirstName:     request.FirstName,
		LastName:      request.LastName,
		DateOfBirth:   dob,
		Country:       request.Country,
		ContactNumber: request.ContactNumber,
		Pincode:       request.Pincode,
		AddressLine1:  request.AddressLine1,
		AddressLine2:  request.AddressLine2,
		Landmark:      request.Landmark,
		City:          request.City,
		State:         request.State,
	})
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapUser(u))
}

package forms_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showcase/internal/forms"
	"showcase/internal/models"
)

func message(t *testing.T, err error) string {
	t.Helper()
	var verr *forms.ValidationError
	require.True(t, errors.As(err, &verr), "expected a validation error, got %v", err)
	return verr.Message
}

func TestValidateSubscribe(t *testing.T) {
	testCases := []struct {
		name     string
		email    string
		expected string
	}{
		{name: "empty", email: "", expected: forms.MsgEmpty},
		{name: "blank", email: "   ", expected: forms.MsgEmpty},
		{name: "missing at", email: "maker.example.com", expected: forms.MsgInvalidEmail},
		{name: "long tld", email: "maker@example.technology", expected: forms.MsgInvalidEmail},
		{name: "plus sign", email: "maker+news@example.com", expected: forms.MsgInvalidEmail},
		{name: "valid", email: "maker@example.com"},
		{name: "valid with surrounding space", email: " first.last-1@mail.example.io "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := forms.ValidateSubscribe(&models.SubscribeRequest{Email: tc.email})
			if tc.expected == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tc.expected, message(t, err))
		})
	}
}

func TestValidateLogin(t *testing.T) {
	assert.Equal(t, forms.MsgEmpty, message(t, forms.ValidateLogin(&models.LoginRequest{Email: "a@b.co"})))
	assert.Equal(t, forms.MsgInvalidEmail, message(t, forms.ValidateLogin(&models.LoginRequest{Email: "nope", Password: "x"})))
	assert.NoError(t, forms.ValidateLogin(&models.LoginRequest{Email: "a@b.co", Password: "x"}))
}

func TestValidateSignup(t *testing.T) {
	valid := models.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "analytical", ConfirmPassword: "analytical"}

	testCases := []struct {
		name     string
		mutate   func(r *models.SignupRequest)
		expected string
	}{
		{name: "valid", mutate: func(r *models.SignupRequest) {}},
		{name: "missing name", mutate: func(r *models.SignupRequest) { r.Name = " " }, expected: forms.MsgEmpty},
		{name: "missing confirmation", mutate: func(r *models.SignupRequest) { r.ConfirmPassword = "" }, expected: forms.MsgEmpty},
		{name: "bad email", mutate: func(r *models.SignupRequest) { r.Email = "ada@" }, expected: forms.MsgInvalidEmail},
		{name: "short password", mutate: func(r *models.SignupRequest) { r.Password, r.ConfirmPassword = "short", "short" }, expected: forms.MsgShortPassword},
		{name: "password at the bcrypt limit", mutate: func(r *models.SignupRequest) { r.Password = strings.Repeat("p", 72); r.ConfirmPassword = r.Password }},
		{name: "password over the bcrypt limit", mutate: func(r *models.SignupRequest) { r.Password = strings.Repeat("p", 73); r.ConfirmPassword = r.Password }, expected: forms.MsgLongPassword},
		{name: "mismatch", mutate: func(r *models.SignupRequest) { r.ConfirmPassword = "analytica1" }, expected: forms.MsgPasswordMismatch},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			err := forms.ValidateSignup(&req)
			if tc.expected == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tc.expected, message(t, err))
		})
	}
}

func TestToasts(t *testing.T) {
	assert.Equal(t, models.Toast{BgColor: "success", Msg: forms.MsgSubscribed, DelayMs: 10000}, forms.SuccessToast(forms.MsgSubscribed))
	assert.Equal(t, "danger", forms.DangerToast("x").BgColor)
	assert.Equal(t, models.Alert{Variant: "danger", Message: "x"}, forms.DangerAlert("x"))
}

package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupValidate(t *testing.T) {
	valid := SignupForm{Name: "Ada", Email: "ada@example.com", Password: "secret1", Confirm: "secret1"}
	assert.NoError(t, valid.Validate())

	mismatch := valid
	mismatch.Confirm = "secret2"
	assert.ErrorIs(t, mismatch.Validate(), ErrPasswordMismatch)

	short := valid
	short.Password, short.Confirm = "abc", "abc"
	assert.ErrorIs(t, short.Validate(), ErrPasswordTooShort)

	missing := valid
	missing.Name = "  "
	assert.ErrorIs(t, missing.Validate(), ErrMissingField)
}

func TestLoginValidate(t *testing.T) {
	assert.NoError(t, LoginForm{Email: "a@b.c", Password: "secret"}.Validate())
	assert.ErrorIs(t, LoginForm{Email: "a@b.c"}.Validate(), ErrMissingField)
	assert.ErrorIs(t, LoginForm{Email: "a@b.c", Password: "x"}.Validate(), ErrPasswordTooShort)
	assert.NoError(t, LoginForm{Email: "a@b.c", Password: "пароль"}.Validate())
}

func TestSubmissionTimeline(t *testing.T) {
	s := NewSubmission(SignupDelay)
	assert.Equal(t, StatusIdle, s.Status())

	wait, err := s.Submit(func() error { return nil })
	require.NoError(t, err)
	assert.Equal(t, SignupDelay, wait)
	assert.True(t, s.Busy())

	// A second submit while busy is ignored.
	wait, err = s.Submit(func() error { return nil })
	require.NoError(t, err)
	assert.Zero(t, wait)

	assert.Equal(t, SuccessHold, s.Advance())
	assert.Equal(t, StatusSuccess, s.Status())
	assert.Zero(t, s.Advance())
	assert.Equal(t, StatusIdle, s.Status())
}

func TestSubmissionGuardAbortsBeforeStateChange(t *testing.T) {
	s := NewSubmission(SignupDelay)
	form := SignupForm{Name: "Ada", Email: "a@b.c", Password: "secret1", Confirm: "other12"}
	_, err := s.Submit(form.Validate)
	assert.True(t, errors.Is(err, ErrPasswordMismatch))
	assert.Equal(t, StatusIdle, s.Status())
}

func TestTelegramScriptTag(t *testing.T) {
	tag := DefaultTelegramWidget().ScriptTag()
	assert.Equal(t,
		`<script async src="https://telegram.org/js/telegram-widget.js?22" data-telegram-login="fastcodingidbot" data-size="medium" data-auth-url="https://fastcoding.moorfo.uz/login" data-request-access="write"></script>`,
		tag)
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventoslisting/internal/domain"
)

type fakeMailer struct {
	sendErr error
	to      string
	subject string
	html    string
	text    string
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.to, f.subject, f.html, f.text = to, subject, html, text
	return nil
}

type fakeRenderer struct {
	err error
}

func (f *fakeRenderer) Render(name string, data any) (string, string, string, error) {
	if f.err != nil {
		return "", "", "", f.err
	}
	d := data.(*domain.ResetCodeEmailData)
	return "subject", "<b>" + d.Code + "</b>", d.Code, nil
}

func TestEmailService_SendResetCode(t *testing.T) {
	ctx := context.Background()

	t.Run("renders template and sends", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewEmailService(mailer, &fakeRenderer{})

		err := svc.SendResetCode(ctx, &domain.ResetCodeEmailData{Email: "a@b.com", Code: "0042", ExpiresInMinutes: 15})
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", mailer.to)
		assert.Contains(t, mailer.html, "0042")
	})

	t.Run("nil data", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{}, &fakeRenderer{})
		assert.Error(t, svc.SendResetCode(ctx, nil))
	})

	t.Run("render failure", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{}, &fakeRenderer{err: assert.AnError})
		assert.Error(t, svc.SendResetCode(ctx, &domain.ResetCodeEmailData{Email: "a@b.com"}))
	})

	t.Run("send failure propagates", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{sendErr: assert.AnError}, &fakeRenderer{})
		assert.Error(t, svc.SendResetCode(ctx, &domain.ResetCodeEmailData{Email: "a@b.com"}))
	})
}

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/model"
)

func TestFingerprintIsStable(t *testing.T) {
	email := &model.EmailRecord{
		Subject: "Quarterly numbers",
		Sender:  model.Sender{Name: "Pat", Email: "pat@company.com"},
		Date:    "2026-08-28",
	}
	assert.Equal(t, Fingerprint(email), Fingerprint(email))
	assert.Len(t, Fingerprint(email), 64)
}

func TestFingerprintDependsOnIdentityFields(t *testing.T) {
	base := model.EmailRecord{
		Subject: "Quarterly numbers",
		Sender:  model.Sender{Email: "pat@company.com"},
		Date:    "2026-08-28",
	}

	otherSubject := base
	otherSubject.Subject = "Quarterly numbers v2"
	otherSender := base
	otherSender.Sender.Email = "sam@company.com"
	otherDate := base
	otherDate.Date = "2026-08-29"

	assert.NotEqual(t, Fingerprint(&base), Fingerprint(&otherSubject))
	assert.NotEqual(t, Fingerprint(&base), Fingerprint(&otherSender))
	assert.NotEqual(t, Fingerprint(&base), Fingerprint(&otherDate))

	// Body and attachments are not part of identity.
	otherBody := base
	otherBody.Body = "different body"
	assert.Equal(t, Fingerprint(&base), Fingerprint(&otherBody))
}

package config

import "testing"

func TestGormConfigTranslatesDriverErrors(t *testing.T) {
	// Duplicate-key inserts must come back as gorm.ErrDuplicatedKey so the
	// controllers can answer 409 instead of 500.
	if !gormConfig().TranslateError {
		t.Error("expected TranslateError to be enabled")
	}
}
